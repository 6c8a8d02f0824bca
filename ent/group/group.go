// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the group type in the database.
	Label = "group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMemberCount holds the string denoting the member_count field in the database.
	FieldMemberCount = "member_count"
	// FieldPhotoURL holds the string denoting the photo_url field in the database.
	FieldPhotoURL = "photo_url"
	// FieldDisplay holds the string denoting the display field in the database.
	FieldDisplay = "display"
	// FieldFeatured holds the string denoting the featured field in the database.
	FieldFeatured = "featured"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldSocialLinks holds the string denoting the social_links field in the database.
	FieldSocialLinks = "social_links"
	// FieldSyncActive holds the string denoting the sync_active field in the database.
	FieldSyncActive = "sync_active"
	// FieldLastSyncAt holds the string denoting the last_sync_at field in the database.
	FieldLastSyncAt = "last_sync_at"
	// FieldLastSyncError holds the string denoting the last_sync_error field in the database.
	FieldLastSyncError = "last_sync_error"
	// FieldMaxBadges holds the string denoting the max_badges field in the database.
	FieldMaxBadges = "max_badges"
	// FieldMaxBadgePoints holds the string denoting the max_badge_points field in the database.
	FieldMaxBadgePoints = "max_badge_points"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConnections holds the string denoting the connections edge name in mutations.
	EdgeConnections = "connections"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeFavorites holds the string denoting the favorites edge name in mutations.
	EdgeFavorites = "favorites"
	// EdgeSyncLogs holds the string denoting the sync_logs edge name in mutations.
	EdgeSyncLogs = "sync_logs"
	// PlatformConnectionFieldID holds the string denoting the ID field of the PlatformConnection.
	PlatformConnectionFieldID = "connection_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// FavoriteFieldID holds the string denoting the ID field of the Favorite.
	FavoriteFieldID = "favorite_id"
	// SyncLogFieldID holds the string denoting the ID field of the SyncLog.
	SyncLogFieldID = "sync_log_id"
	// Table holds the table name of the group in the database.
	Table = "groups"
	// ConnectionsTable is the table that holds the connections relation/edge.
	ConnectionsTable = "platform_connections"
	// ConnectionsInverseTable is the table name for the PlatformConnection entity.
	// It exists in this package in order to avoid circular dependency with the "platformconnection" package.
	ConnectionsInverseTable = "platform_connections"
	// ConnectionsColumn is the table column denoting the connections relation/edge.
	ConnectionsColumn = "group_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "group_id"
	// FavoritesTable is the table that holds the favorites relation/edge.
	FavoritesTable = "favorites"
	// FavoritesInverseTable is the table name for the Favorite entity.
	// It exists in this package in order to avoid circular dependency with the "favorite" package.
	FavoritesInverseTable = "favorites"
	// FavoritesColumn is the table column denoting the favorites relation/edge.
	FavoritesColumn = "group_id"
	// SyncLogsTable is the table that holds the sync_logs relation/edge.
	SyncLogsTable = "sync_logs"
	// SyncLogsInverseTable is the table name for the SyncLog entity.
	// It exists in this package in order to avoid circular dependency with the "synclog" package.
	SyncLogsInverseTable = "sync_logs"
	// SyncLogsColumn is the table column denoting the sync_logs relation/edge.
	SyncLogsColumn = "group_id"
)

// Columns holds all SQL columns for group fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldName,
	FieldDescription,
	FieldMemberCount,
	FieldPhotoURL,
	FieldDisplay,
	FieldFeatured,
	FieldTags,
	FieldSocialLinks,
	FieldSyncActive,
	FieldLastSyncAt,
	FieldLastSyncError,
	FieldMaxBadges,
	FieldMaxBadgePoints,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultMemberCount holds the default value on creation for the "member_count" field.
	DefaultMemberCount int
	// DefaultDisplay holds the default value on creation for the "display" field.
	DefaultDisplay bool
	// DefaultFeatured holds the default value on creation for the "featured" field.
	DefaultFeatured bool
	// DefaultSyncActive holds the default value on creation for the "sync_active" field.
	DefaultSyncActive bool
	// DefaultMaxBadges holds the default value on creation for the "max_badges" field.
	DefaultMaxBadges int
	// DefaultMaxBadgePoints holds the default value on creation for the "max_badge_points" field.
	DefaultMaxBadgePoints int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Group queries.
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

// ByMemberCount orders the results by the member_count field.
func ByMemberCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberCount, opts...).ToFunc()
}

// ByPhotoURL orders the results by the photo_url field.
func ByPhotoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoURL, opts...).ToFunc()
}

// ByDisplay orders the results by the display field.
func ByDisplay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplay, opts...).ToFunc()
}

// ByFeatured orders the results by the featured field.
func ByFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatured, opts...).ToFunc()
}

// BySyncActive orders the results by the sync_active field.
func BySyncActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncActive, opts...).ToFunc()
}

// ByLastSyncAt orders the results by the last_sync_at field.
func ByLastSyncAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncAt, opts...).ToFunc()
}

// ByLastSyncError orders the results by the last_sync_error field.
func ByLastSyncError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncError, opts...).ToFunc()
}

// ByMaxBadges orders the results by the max_badges field.
func ByMaxBadges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxBadges, opts...).ToFunc()
}

// ByMaxBadgePoints orders the results by the max_badge_points field.
func ByMaxBadgePoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxBadgePoints, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConnectionsCount orders the results by connections count.
func ByConnectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConnectionsStep(), opts...)
	}
}

// ByConnections orders the results by connections terms.
func ByConnections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConnectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFavoritesCount orders the results by favorites count.
func ByFavoritesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFavoritesStep(), opts...)
	}
}

// ByFavorites orders the results by favorites terms.
func ByFavorites(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFavoritesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySyncLogsCount orders the results by sync_logs count.
func BySyncLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSyncLogsStep(), opts...)
	}
}

// BySyncLogs orders the results by sync_logs terms.
func BySyncLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSyncLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConnectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConnectionsInverseTable, PlatformConnectionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConnectionsTable, ConnectionsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newFavoritesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FavoritesInverseTable, FavoriteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FavoritesTable, FavoritesColumn),
	)
}
func newSyncLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SyncLogsInverseTable, SyncLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SyncLogsTable, SyncLogsColumn),
	)
}
