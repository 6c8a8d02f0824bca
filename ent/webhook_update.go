// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/webhook"
	"github.com/gatherhub/gatherhub/ent/webhookdelivery"
)

// WebhookUpdate is the builder for updating Webhook entities.
type WebhookUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookMutation
}

// Where appends a list predicates to the WebhookUpdate builder.
func (_u *WebhookUpdate) Where(ps ...predicate.Webhook) *WebhookUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookUpdate) SetURL(v string) *WebhookUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableURL(v *string) *WebhookUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSecret sets the "secret" field.
func (_u *WebhookUpdate) SetSecret(v string) *WebhookUpdate {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableSecret(v *string) *WebhookUpdate {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetEventTypes sets the "event_types" field.
func (_u *WebhookUpdate) SetEventTypes(v []string) *WebhookUpdate {
	_u.mutation.SetEventTypes(v)
	return _u
}

// AppendEventTypes appends value to the "event_types" field.
func (_u *WebhookUpdate) AppendEventTypes(v []string) *WebhookUpdate {
	_u.mutation.AppendEventTypes(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookUpdate) SetActive(v bool) *WebhookUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableActive(v *bool) *WebhookUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookUpdate) AddDeliveryIDs(ids ...string) *WebhookUpdate {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdate) AddDeliveries(v ...*WebhookDelivery) *WebhookUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookMutation object of the builder.
func (_u *WebhookUpdate) Mutation() *WebhookMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdate) ClearDeliveries() *WebhookUpdate {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookUpdate) RemoveDeliveryIDs(ids ...string) *WebhookUpdate {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookUpdate) RemoveDeliveries(v ...*WebhookDelivery) *WebhookUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhook.Table, webhook.Columns, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(webhook.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventTypes(); ok {
		_spec.SetField(webhook.FieldEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhook.FieldEventTypes, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookUpdateOne is the builder for updating a single Webhook entity.
type WebhookUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookMutation
}

// SetURL sets the "url" field.
func (_u *WebhookUpdateOne) SetURL(v string) *WebhookUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableURL(v *string) *WebhookUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSecret sets the "secret" field.
func (_u *WebhookUpdateOne) SetSecret(v string) *WebhookUpdateOne {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableSecret(v *string) *WebhookUpdateOne {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetEventTypes sets the "event_types" field.
func (_u *WebhookUpdateOne) SetEventTypes(v []string) *WebhookUpdateOne {
	_u.mutation.SetEventTypes(v)
	return _u
}

// AppendEventTypes appends value to the "event_types" field.
func (_u *WebhookUpdateOne) AppendEventTypes(v []string) *WebhookUpdateOne {
	_u.mutation.AppendEventTypes(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookUpdateOne) SetActive(v bool) *WebhookUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableActive(v *bool) *WebhookUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookUpdateOne) AddDeliveryIDs(ids ...string) *WebhookUpdateOne {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdateOne) AddDeliveries(v ...*WebhookDelivery) *WebhookUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookMutation object of the builder.
func (_u *WebhookUpdateOne) Mutation() *WebhookMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookUpdateOne) ClearDeliveries() *WebhookUpdateOne {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookUpdateOne) RemoveDeliveryIDs(ids ...string) *WebhookUpdateOne {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookUpdateOne) RemoveDeliveries(v ...*WebhookDelivery) *WebhookUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Where appends a list predicates to the WebhookUpdate builder.
func (_u *WebhookUpdateOne) Where(ps ...predicate.Webhook) *WebhookUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookUpdateOne) Select(field string, fields ...string) *WebhookUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Webhook entity.
func (_u *WebhookUpdateOne) Save(ctx context.Context) (*Webhook, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookUpdateOne) SaveX(ctx context.Context) *Webhook {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookUpdateOne) sqlSave(ctx context.Context) (_node *Webhook, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhook.Table, webhook.Columns, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Webhook.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhook.FieldID)
		for _, f := range fields {
			if !webhook.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhook.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(webhook.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventTypes(); ok {
		_spec.SetField(webhook.FieldEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhook.FieldEventTypes, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhook.DeliveriesTable,
			Columns: []string{webhook.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Webhook{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
