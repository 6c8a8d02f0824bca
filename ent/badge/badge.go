// Code generated by ent, DO NOT EDIT.

package badge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the badge type in the database.
	Label = "badge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "badge_id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIcon holds the string denoting the icon field in the database.
	FieldIcon = "icon"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldHidden holds the string denoting the hidden field in the database.
	FieldHidden = "hidden"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUserBadges holds the string denoting the user_badges edge name in mutations.
	EdgeUserBadges = "user_badges"
	// EdgeClaimLinks holds the string denoting the claim_links edge name in mutations.
	EdgeClaimLinks = "claim_links"
	// UserBadgeFieldID holds the string denoting the ID field of the UserBadge.
	UserBadgeFieldID = "user_badge_id"
	// BadgeClaimLinkFieldID holds the string denoting the ID field of the BadgeClaimLink.
	BadgeClaimLinkFieldID = "claim_link_id"
	// Table holds the table name of the badge in the database.
	Table = "badges"
	// UserBadgesTable is the table that holds the user_badges relation/edge.
	UserBadgesTable = "user_badges"
	// UserBadgesInverseTable is the table name for the UserBadge entity.
	// It exists in this package in order to avoid circular dependency with the "userbadge" package.
	UserBadgesInverseTable = "user_badges"
	// UserBadgesColumn is the table column denoting the user_badges relation/edge.
	UserBadgesColumn = "badge_id"
	// ClaimLinksTable is the table that holds the claim_links relation/edge.
	ClaimLinksTable = "badge_claim_links"
	// ClaimLinksInverseTable is the table name for the BadgeClaimLink entity.
	// It exists in this package in order to avoid circular dependency with the "badgeclaimlink" package.
	ClaimLinksInverseTable = "badge_claim_links"
	// ClaimLinksColumn is the table column denoting the claim_links relation/edge.
	ClaimLinksColumn = "badge_id"
)

// Columns holds all SQL columns for badge fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldName,
	FieldDescription,
	FieldIcon,
	FieldColor,
	FieldPoints,
	FieldSortOrder,
	FieldHidden,
	FieldGroupID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPoints holds the default value on creation for the "points" field.
	DefaultPoints int
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultHidden holds the default value on creation for the "hidden" field.
	DefaultHidden bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Badge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIcon orders the results by the icon field.
func ByIcon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcon, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByHidden orders the results by the hidden field.
func ByHidden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHidden, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserBadgesCount orders the results by user_badges count.
func ByUserBadgesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUserBadgesStep(), opts...)
	}
}

// ByUserBadges orders the results by user_badges terms.
func ByUserBadges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserBadgesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByClaimLinksCount orders the results by claim_links count.
func ByClaimLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClaimLinksStep(), opts...)
	}
}

// ByClaimLinks orders the results by claim_links terms.
func ByClaimLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserBadgesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserBadgesInverseTable, UserBadgeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UserBadgesTable, UserBadgesColumn),
	)
}
func newClaimLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimLinksInverseTable, BadgeClaimLinkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClaimLinksTable, ClaimLinksColumn),
	)
}
