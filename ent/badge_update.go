// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/userbadge"
)

// BadgeUpdate is the builder for updating Badge entities.
type BadgeUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeMutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdate) Where(ps ...predicate.Badge) *BadgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BadgeUpdate) SetSlug(v string) *BadgeUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableSlug(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BadgeUpdate) SetName(v string) *BadgeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableName(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BadgeUpdate) SetDescription(v string) *BadgeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableDescription(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BadgeUpdate) ClearDescription() *BadgeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIcon sets the "icon" field.
func (_u *BadgeUpdate) SetIcon(v string) *BadgeUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableIcon(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *BadgeUpdate) ClearIcon() *BadgeUpdate {
	_u.mutation.ClearIcon()
	return _u
}

// SetColor sets the "color" field.
func (_u *BadgeUpdate) SetColor(v string) *BadgeUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableColor(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *BadgeUpdate) ClearColor() *BadgeUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetPoints sets the "points" field.
func (_u *BadgeUpdate) SetPoints(v int) *BadgeUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillablePoints(v *int) *BadgeUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *BadgeUpdate) AddPoints(v int) *BadgeUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *BadgeUpdate) SetSortOrder(v int) *BadgeUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableSortOrder(v *int) *BadgeUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *BadgeUpdate) AddSortOrder(v int) *BadgeUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *BadgeUpdate) SetHidden(v bool) *BadgeUpdate {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableHidden(v *bool) *BadgeUpdate {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *BadgeUpdate) SetGroupID(v string) *BadgeUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableGroupID(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *BadgeUpdate) ClearGroupID() *BadgeUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// AddUserBadgeIDs adds the "user_badges" edge to the UserBadge entity by IDs.
func (_u *BadgeUpdate) AddUserBadgeIDs(ids ...string) *BadgeUpdate {
	_u.mutation.AddUserBadgeIDs(ids...)
	return _u
}

// AddUserBadges adds the "user_badges" edges to the UserBadge entity.
func (_u *BadgeUpdate) AddUserBadges(v ...*UserBadge) *BadgeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserBadgeIDs(ids...)
}

// AddClaimLinkIDs adds the "claim_links" edge to the BadgeClaimLink entity by IDs.
func (_u *BadgeUpdate) AddClaimLinkIDs(ids ...string) *BadgeUpdate {
	_u.mutation.AddClaimLinkIDs(ids...)
	return _u
}

// AddClaimLinks adds the "claim_links" edges to the BadgeClaimLink entity.
func (_u *BadgeUpdate) AddClaimLinks(v ...*BadgeClaimLink) *BadgeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimLinkIDs(ids...)
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdate) Mutation() *BadgeMutation {
	return _u.mutation
}

// ClearUserBadges clears all "user_badges" edges to the UserBadge entity.
func (_u *BadgeUpdate) ClearUserBadges() *BadgeUpdate {
	_u.mutation.ClearUserBadges()
	return _u
}

// RemoveUserBadgeIDs removes the "user_badges" edge to UserBadge entities by IDs.
func (_u *BadgeUpdate) RemoveUserBadgeIDs(ids ...string) *BadgeUpdate {
	_u.mutation.RemoveUserBadgeIDs(ids...)
	return _u
}

// RemoveUserBadges removes "user_badges" edges to UserBadge entities.
func (_u *BadgeUpdate) RemoveUserBadges(v ...*UserBadge) *BadgeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserBadgeIDs(ids...)
}

// ClearClaimLinks clears all "claim_links" edges to the BadgeClaimLink entity.
func (_u *BadgeUpdate) ClearClaimLinks() *BadgeUpdate {
	_u.mutation.ClearClaimLinks()
	return _u
}

// RemoveClaimLinkIDs removes the "claim_links" edge to BadgeClaimLink entities by IDs.
func (_u *BadgeUpdate) RemoveClaimLinkIDs(ids ...string) *BadgeUpdate {
	_u.mutation.RemoveClaimLinkIDs(ids...)
	return _u
}

// RemoveClaimLinks removes "claim_links" edges to BadgeClaimLink entities.
func (_u *BadgeUpdate) RemoveClaimLinks(v ...*BadgeClaimLink) *BadgeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BadgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(badge.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(badge.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(badge.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(badge.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(badge.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(badge.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(badge.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(badge.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(badge.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(badge.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(badge.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(badge.FieldGroupID, field.TypeString)
	}
	if _u.mutation.UserBadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.UserBadgesTable,
			Columns: []string{badge.UserBadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserBadgesIDs(); len(nodes) > 0 && !_u.mutation.UserBadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.UserBadgesTable,
			Columns: []string{badge.UserBadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserBadgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.UserBadgesTable,
			Columns: []string{badge.UserBadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.ClaimLinksTable,
			Columns: []string{badge.ClaimLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimLinksIDs(); len(nodes) > 0 && !_u.mutation.ClaimLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.ClaimLinksTable,
			Columns: []string{badge.ClaimLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.ClaimLinksTable,
			Columns: []string{badge.ClaimLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeUpdateOne is the builder for updating a single Badge entity.
type BadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeMutation
}

// SetSlug sets the "slug" field.
func (_u *BadgeUpdateOne) SetSlug(v string) *BadgeUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableSlug(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BadgeUpdateOne) SetName(v string) *BadgeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableName(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BadgeUpdateOne) SetDescription(v string) *BadgeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableDescription(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BadgeUpdateOne) ClearDescription() *BadgeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIcon sets the "icon" field.
func (_u *BadgeUpdateOne) SetIcon(v string) *BadgeUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableIcon(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *BadgeUpdateOne) ClearIcon() *BadgeUpdateOne {
	_u.mutation.ClearIcon()
	return _u
}

// SetColor sets the "color" field.
func (_u *BadgeUpdateOne) SetColor(v string) *BadgeUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableColor(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *BadgeUpdateOne) ClearColor() *BadgeUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetPoints sets the "points" field.
func (_u *BadgeUpdateOne) SetPoints(v int) *BadgeUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillablePoints(v *int) *BadgeUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *BadgeUpdateOne) AddPoints(v int) *BadgeUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *BadgeUpdateOne) SetSortOrder(v int) *BadgeUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableSortOrder(v *int) *BadgeUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *BadgeUpdateOne) AddSortOrder(v int) *BadgeUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *BadgeUpdateOne) SetHidden(v bool) *BadgeUpdateOne {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableHidden(v *bool) *BadgeUpdateOne {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *BadgeUpdateOne) SetGroupID(v string) *BadgeUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableGroupID(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *BadgeUpdateOne) ClearGroupID() *BadgeUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// AddUserBadgeIDs adds the "user_badges" edge to the UserBadge entity by IDs.
func (_u *BadgeUpdateOne) AddUserBadgeIDs(ids ...string) *BadgeUpdateOne {
	_u.mutation.AddUserBadgeIDs(ids...)
	return _u
}

// AddUserBadges adds the "user_badges" edges to the UserBadge entity.
func (_u *BadgeUpdateOne) AddUserBadges(v ...*UserBadge) *BadgeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserBadgeIDs(ids...)
}

// AddClaimLinkIDs adds the "claim_links" edge to the BadgeClaimLink entity by IDs.
func (_u *BadgeUpdateOne) AddClaimLinkIDs(ids ...string) *BadgeUpdateOne {
	_u.mutation.AddClaimLinkIDs(ids...)
	return _u
}

// AddClaimLinks adds the "claim_links" edges to the BadgeClaimLink entity.
func (_u *BadgeUpdateOne) AddClaimLinks(v ...*BadgeClaimLink) *BadgeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimLinkIDs(ids...)
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdateOne) Mutation() *BadgeMutation {
	return _u.mutation
}

// ClearUserBadges clears all "user_badges" edges to the UserBadge entity.
func (_u *BadgeUpdateOne) ClearUserBadges() *BadgeUpdateOne {
	_u.mutation.ClearUserBadges()
	return _u
}

// RemoveUserBadgeIDs removes the "user_badges" edge to UserBadge entities by IDs.
func (_u *BadgeUpdateOne) RemoveUserBadgeIDs(ids ...string) *BadgeUpdateOne {
	_u.mutation.RemoveUserBadgeIDs(ids...)
	return _u
}

// RemoveUserBadges removes "user_badges" edges to UserBadge entities.
func (_u *BadgeUpdateOne) RemoveUserBadges(v ...*UserBadge) *BadgeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserBadgeIDs(ids...)
}

// ClearClaimLinks clears all "claim_links" edges to the BadgeClaimLink entity.
func (_u *BadgeUpdateOne) ClearClaimLinks() *BadgeUpdateOne {
	_u.mutation.ClearClaimLinks()
	return _u
}

// RemoveClaimLinkIDs removes the "claim_links" edge to BadgeClaimLink entities by IDs.
func (_u *BadgeUpdateOne) RemoveClaimLinkIDs(ids ...string) *BadgeUpdateOne {
	_u.mutation.RemoveClaimLinkIDs(ids...)
	return _u
}

// RemoveClaimLinks removes "claim_links" edges to BadgeClaimLink entities.
func (_u *BadgeUpdateOne) RemoveClaimLinks(v ...*BadgeClaimLink) *BadgeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimLinkIDs(ids...)
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdateOne) Where(ps ...predicate.Badge) *BadgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeUpdateOne) Select(field string, fields ...string) *BadgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Badge entity.
func (_u *BadgeUpdateOne) Save(ctx context.Context) (*Badge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdateOne) SaveX(ctx context.Context) *Badge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BadgeUpdateOne) sqlSave(ctx context.Context) (_node *Badge, err error) {
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Badge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badge.FieldID)
		for _, f := range fields {
			if !badge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(badge.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(badge.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(badge.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(badge.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(badge.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(badge.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(badge.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(badge.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(badge.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(badge.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(badge.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(badge.FieldGroupID, field.TypeString)
	}
	if _u.mutation.UserBadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.UserBadgesTable,
			Columns: []string{badge.UserBadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserBadgesIDs(); len(nodes) > 0 && !_u.mutation.UserBadgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.UserBadgesTable,
			Columns: []string{badge.UserBadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserBadgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.UserBadgesTable,
			Columns: []string{badge.UserBadgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userbadge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.ClaimLinksTable,
			Columns: []string{badge.ClaimLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimLinksIDs(); len(nodes) > 0 && !_u.mutation.ClaimLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.ClaimLinksTable,
			Columns: []string{badge.ClaimLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.ClaimLinksTable,
			Columns: []string{badge.ClaimLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeclaimlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Badge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
