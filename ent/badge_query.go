// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/predicate"
	"github.com/gatherhub/gatherhub/ent/userbadge"
)

// BadgeQuery is the builder for querying Badge entities.
type BadgeQuery struct {
	config
	ctx            *QueryContext
	order          []badge.OrderOption
	inters         []Interceptor
	predicates     []predicate.Badge
	withUserBadges *UserBadgeQuery
	withClaimLinks *BadgeClaimLinkQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BadgeQuery builder.
func (_q *BadgeQuery) Where(ps ...predicate.Badge) *BadgeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BadgeQuery) Limit(limit int) *BadgeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BadgeQuery) Offset(offset int) *BadgeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BadgeQuery) Unique(unique bool) *BadgeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BadgeQuery) Order(o ...badge.OrderOption) *BadgeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUserBadges chains the current query on the "user_badges" edge.
func (_q *BadgeQuery) QueryUserBadges() *UserBadgeQuery {
	query := (&UserBadgeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(badge.Table, badge.FieldID, selector),
			sqlgraph.To(userbadge.Table, userbadge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, badge.UserBadgesTable, badge.UserBadgesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryClaimLinks chains the current query on the "claim_links" edge.
func (_q *BadgeQuery) QueryClaimLinks() *BadgeClaimLinkQuery {
	query := (&BadgeClaimLinkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(badge.Table, badge.FieldID, selector),
			sqlgraph.To(badgeclaimlink.Table, badgeclaimlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, badge.ClaimLinksTable, badge.ClaimLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Badge entity from the query.
// Returns a *NotFoundError when no Badge was found.
func (_q *BadgeQuery) First(ctx context.Context) (*Badge, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{badge.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BadgeQuery) FirstX(ctx context.Context) *Badge {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Badge ID from the query.
// Returns a *NotFoundError when no Badge ID was found.
func (_q *BadgeQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{badge.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BadgeQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Badge entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Badge entity is found.
// Returns a *NotFoundError when no Badge entities are found.
func (_q *BadgeQuery) Only(ctx context.Context) (*Badge, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{badge.Label}
	default:
		return nil, &NotSingularError{badge.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BadgeQuery) OnlyX(ctx context.Context) *Badge {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Badge ID in the query.
// Returns a *NotSingularError when more than one Badge ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BadgeQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{badge.Label}
	default:
		err = &NotSingularError{badge.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BadgeQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Badges.
func (_q *BadgeQuery) All(ctx context.Context) ([]*Badge, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Badge, *BadgeQuery]()
	return withInterceptors[[]*Badge](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BadgeQuery) AllX(ctx context.Context) []*Badge {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Badge IDs.
func (_q *BadgeQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(badge.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BadgeQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BadgeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BadgeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BadgeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BadgeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BadgeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BadgeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BadgeQuery) Clone() *BadgeQuery {
	if _q == nil {
		return nil
	}
	return &BadgeQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]badge.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Badge{}, _q.predicates...),
		withUserBadges: _q.withUserBadges.Clone(),
		withClaimLinks: _q.withClaimLinks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUserBadges tells the query-builder to eager-load the nodes that are connected to
// the "user_badges" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BadgeQuery) WithUserBadges(opts ...func(*UserBadgeQuery)) *BadgeQuery {
	query := (&UserBadgeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUserBadges = query
	return _q
}

// WithClaimLinks tells the query-builder to eager-load the nodes that are connected to
// the "claim_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BadgeQuery) WithClaimLinks(opts ...func(*BadgeClaimLinkQuery)) *BadgeQuery {
	query := (&BadgeClaimLinkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClaimLinks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Slug string `json:"slug,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Badge.Query().
//		GroupBy(badge.FieldSlug).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BadgeQuery) GroupBy(field string, fields ...string) *BadgeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BadgeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = badge.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Slug string `json:"slug,omitempty"`
//	}
//
//	client.Badge.Query().
//		Select(badge.FieldSlug).
//		Scan(ctx, &v)
func (_q *BadgeQuery) Select(fields ...string) *BadgeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BadgeSelect{BadgeQuery: _q}
	sbuild.label = badge.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BadgeSelect configured with the given aggregations.
func (_q *BadgeQuery) Aggregate(fns ...AggregateFunc) *BadgeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BadgeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !badge.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *BadgeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Badge, error) {
	var (
		nodes       = []*Badge{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withUserBadges != nil,
			_q.withClaimLinks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Badge).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Badge{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUserBadges; query != nil {
		if err := _q.loadUserBadges(ctx, query, nodes,
			func(n *Badge) { n.Edges.UserBadges = []*UserBadge{} },
			func(n *Badge, e *UserBadge) { n.Edges.UserBadges = append(n.Edges.UserBadges, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withClaimLinks; query != nil {
		if err := _q.loadClaimLinks(ctx, query, nodes,
			func(n *Badge) { n.Edges.ClaimLinks = []*BadgeClaimLink{} },
			func(n *Badge, e *BadgeClaimLink) { n.Edges.ClaimLinks = append(n.Edges.ClaimLinks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BadgeQuery) loadUserBadges(ctx context.Context, query *UserBadgeQuery, nodes []*Badge, init func(*Badge), assign func(*Badge, *UserBadge)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Badge)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(userbadge.FieldBadgeID)
	}
	query.Where(predicate.UserBadge(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(badge.UserBadgesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BadgeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "badge_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BadgeQuery) loadClaimLinks(ctx context.Context, query *BadgeClaimLinkQuery, nodes []*Badge, init func(*Badge), assign func(*Badge, *BadgeClaimLink)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Badge)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(badgeclaimlink.FieldBadgeID)
	}
	query.Where(predicate.BadgeClaimLink(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(badge.ClaimLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BadgeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "badge_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BadgeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BadgeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badge.FieldID)
		for i := range fields {
			if fields[i] != badge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *BadgeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(badge.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = badge.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *BadgeQuery) ForUpdate(opts ...sql.LockOption) *BadgeQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *BadgeQuery) ForShare(opts ...sql.LockOption) *BadgeQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// BadgeGroupBy is the group-by builder for Badge entities.
type BadgeGroupBy struct {
	selector
	build *BadgeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BadgeGroupBy) Aggregate(fns ...AggregateFunc) *BadgeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BadgeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BadgeQuery, *BadgeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BadgeGroupBy) sqlScan(ctx context.Context, root *BadgeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BadgeSelect is the builder for selecting fields of Badge entities.
type BadgeSelect struct {
	*BadgeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BadgeSelect) Aggregate(fns ...AggregateFunc) *BadgeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BadgeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BadgeQuery, *BadgeSelect](ctx, _s.BadgeQuery, _s, _s.inters, v)
}

func (_s *BadgeSelect) sqlScan(ctx context.Context, root *BadgeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
