// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/gatherhub/gatherhub/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gatherhub/gatherhub/ent/achievement"
	"github.com/gatherhub/gatherhub/ent/achievementprogress"
	"github.com/gatherhub/gatherhub/ent/badge"
	"github.com/gatherhub/gatherhub/ent/badgeclaimlink"
	"github.com/gatherhub/gatherhub/ent/checkin"
	"github.com/gatherhub/gatherhub/ent/checkincode"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/ent/favorite"
	"github.com/gatherhub/gatherhub/ent/group"
	"github.com/gatherhub/gatherhub/ent/onboardingstep"
	"github.com/gatherhub/gatherhub/ent/platformconnection"
	"github.com/gatherhub/gatherhub/ent/queuedevent"
	"github.com/gatherhub/gatherhub/ent/rsvp"
	"github.com/gatherhub/gatherhub/ent/synclog"
	"github.com/gatherhub/gatherhub/ent/user"
	"github.com/gatherhub/gatherhub/ent/userbadge"
	"github.com/gatherhub/gatherhub/ent/userentitlement"
	"github.com/gatherhub/gatherhub/ent/useronboardingstep"
	"github.com/gatherhub/gatherhub/ent/venue"
	"github.com/gatherhub/gatherhub/ent/webhook"
	"github.com/gatherhub/gatherhub/ent/webhookdelivery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Achievement is the client for interacting with the Achievement builders.
	Achievement *AchievementClient
	// AchievementProgress is the client for interacting with the AchievementProgress builders.
	AchievementProgress *AchievementProgressClient
	// Badge is the client for interacting with the Badge builders.
	Badge *BadgeClient
	// BadgeClaimLink is the client for interacting with the BadgeClaimLink builders.
	BadgeClaimLink *BadgeClaimLinkClient
	// Checkin is the client for interacting with the Checkin builders.
	Checkin *CheckinClient
	// CheckinCode is the client for interacting with the CheckinCode builders.
	CheckinCode *CheckinCodeClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Favorite is the client for interacting with the Favorite builders.
	Favorite *FavoriteClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// OnboardingStep is the client for interacting with the OnboardingStep builders.
	OnboardingStep *OnboardingStepClient
	// PlatformConnection is the client for interacting with the PlatformConnection builders.
	PlatformConnection *PlatformConnectionClient
	// QueuedEvent is the client for interacting with the QueuedEvent builders.
	QueuedEvent *QueuedEventClient
	// RSVP is the client for interacting with the RSVP builders.
	RSVP *RSVPClient
	// SyncLog is the client for interacting with the SyncLog builders.
	SyncLog *SyncLogClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserBadge is the client for interacting with the UserBadge builders.
	UserBadge *UserBadgeClient
	// UserEntitlement is the client for interacting with the UserEntitlement builders.
	UserEntitlement *UserEntitlementClient
	// UserOnboardingStep is the client for interacting with the UserOnboardingStep builders.
	UserOnboardingStep *UserOnboardingStepClient
	// Venue is the client for interacting with the Venue builders.
	Venue *VenueClient
	// Webhook is the client for interacting with the Webhook builders.
	Webhook *WebhookClient
	// WebhookDelivery is the client for interacting with the WebhookDelivery builders.
	WebhookDelivery *WebhookDeliveryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Achievement = NewAchievementClient(c.config)
	c.AchievementProgress = NewAchievementProgressClient(c.config)
	c.Badge = NewBadgeClient(c.config)
	c.BadgeClaimLink = NewBadgeClaimLinkClient(c.config)
	c.Checkin = NewCheckinClient(c.config)
	c.CheckinCode = NewCheckinCodeClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Favorite = NewFavoriteClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.OnboardingStep = NewOnboardingStepClient(c.config)
	c.PlatformConnection = NewPlatformConnectionClient(c.config)
	c.QueuedEvent = NewQueuedEventClient(c.config)
	c.RSVP = NewRSVPClient(c.config)
	c.SyncLog = NewSyncLogClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserBadge = NewUserBadgeClient(c.config)
	c.UserEntitlement = NewUserEntitlementClient(c.config)
	c.UserOnboardingStep = NewUserOnboardingStepClient(c.config)
	c.Venue = NewVenueClient(c.config)
	c.Webhook = NewWebhookClient(c.config)
	c.WebhookDelivery = NewWebhookDeliveryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Achievement:         NewAchievementClient(cfg),
		AchievementProgress: NewAchievementProgressClient(cfg),
		Badge:               NewBadgeClient(cfg),
		BadgeClaimLink:      NewBadgeClaimLinkClient(cfg),
		Checkin:             NewCheckinClient(cfg),
		CheckinCode:         NewCheckinCodeClient(cfg),
		Event:               NewEventClient(cfg),
		Favorite:            NewFavoriteClient(cfg),
		Group:               NewGroupClient(cfg),
		OnboardingStep:      NewOnboardingStepClient(cfg),
		PlatformConnection:  NewPlatformConnectionClient(cfg),
		QueuedEvent:         NewQueuedEventClient(cfg),
		RSVP:                NewRSVPClient(cfg),
		SyncLog:             NewSyncLogClient(cfg),
		User:                NewUserClient(cfg),
		UserBadge:           NewUserBadgeClient(cfg),
		UserEntitlement:     NewUserEntitlementClient(cfg),
		UserOnboardingStep:  NewUserOnboardingStepClient(cfg),
		Venue:               NewVenueClient(cfg),
		Webhook:             NewWebhookClient(cfg),
		WebhookDelivery:     NewWebhookDeliveryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Achievement:         NewAchievementClient(cfg),
		AchievementProgress: NewAchievementProgressClient(cfg),
		Badge:               NewBadgeClient(cfg),
		BadgeClaimLink:      NewBadgeClaimLinkClient(cfg),
		Checkin:             NewCheckinClient(cfg),
		CheckinCode:         NewCheckinCodeClient(cfg),
		Event:               NewEventClient(cfg),
		Favorite:            NewFavoriteClient(cfg),
		Group:               NewGroupClient(cfg),
		OnboardingStep:      NewOnboardingStepClient(cfg),
		PlatformConnection:  NewPlatformConnectionClient(cfg),
		QueuedEvent:         NewQueuedEventClient(cfg),
		RSVP:                NewRSVPClient(cfg),
		SyncLog:             NewSyncLogClient(cfg),
		User:                NewUserClient(cfg),
		UserBadge:           NewUserBadgeClient(cfg),
		UserEntitlement:     NewUserEntitlementClient(cfg),
		UserOnboardingStep:  NewUserOnboardingStepClient(cfg),
		Venue:               NewVenueClient(cfg),
		Webhook:             NewWebhookClient(cfg),
		WebhookDelivery:     NewWebhookDeliveryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Achievement.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Achievement, c.AchievementProgress, c.Badge, c.BadgeClaimLink, c.Checkin,
		c.CheckinCode, c.Event, c.Favorite, c.Group, c.OnboardingStep,
		c.PlatformConnection, c.QueuedEvent, c.RSVP, c.SyncLog, c.User, c.UserBadge,
		c.UserEntitlement, c.UserOnboardingStep, c.Venue, c.Webhook, c.WebhookDelivery,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Achievement, c.AchievementProgress, c.Badge, c.BadgeClaimLink, c.Checkin,
		c.CheckinCode, c.Event, c.Favorite, c.Group, c.OnboardingStep,
		c.PlatformConnection, c.QueuedEvent, c.RSVP, c.SyncLog, c.User, c.UserBadge,
		c.UserEntitlement, c.UserOnboardingStep, c.Venue, c.Webhook, c.WebhookDelivery,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementMutation:
		return c.Achievement.mutate(ctx, m)
	case *AchievementProgressMutation:
		return c.AchievementProgress.mutate(ctx, m)
	case *BadgeMutation:
		return c.Badge.mutate(ctx, m)
	case *BadgeClaimLinkMutation:
		return c.BadgeClaimLink.mutate(ctx, m)
	case *CheckinMutation:
		return c.Checkin.mutate(ctx, m)
	case *CheckinCodeMutation:
		return c.CheckinCode.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *FavoriteMutation:
		return c.Favorite.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *OnboardingStepMutation:
		return c.OnboardingStep.mutate(ctx, m)
	case *PlatformConnectionMutation:
		return c.PlatformConnection.mutate(ctx, m)
	case *QueuedEventMutation:
		return c.QueuedEvent.mutate(ctx, m)
	case *RSVPMutation:
		return c.RSVP.mutate(ctx, m)
	case *SyncLogMutation:
		return c.SyncLog.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserBadgeMutation:
		return c.UserBadge.mutate(ctx, m)
	case *UserEntitlementMutation:
		return c.UserEntitlement.mutate(ctx, m)
	case *UserOnboardingStepMutation:
		return c.UserOnboardingStep.mutate(ctx, m)
	case *VenueMutation:
		return c.Venue.mutate(ctx, m)
	case *WebhookMutation:
		return c.Webhook.mutate(ctx, m)
	case *WebhookDeliveryMutation:
		return c.WebhookDelivery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementClient is a client for the Achievement schema.
type AchievementClient struct {
	config
}

// NewAchievementClient returns a client for the Achievement from the given config.
func NewAchievementClient(c config) *AchievementClient {
	return &AchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievement.Hooks(f(g(h())))`.
func (c *AchievementClient) Use(hooks ...Hook) {
	c.hooks.Achievement = append(c.hooks.Achievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievement.Intercept(f(g(h())))`.
func (c *AchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Achievement = append(c.inters.Achievement, interceptors...)
}

// Create returns a builder for creating a Achievement entity.
func (c *AchievementClient) Create() *AchievementCreate {
	mutation := newAchievementMutation(c.config, OpCreate)
	return &AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Achievement entities.
func (c *AchievementClient) CreateBulk(builders ...*AchievementCreate) *AchievementCreateBulk {
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementClient) MapCreateBulk(slice any, setFunc func(*AchievementCreate, int)) *AchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementCreateBulk{err: fmt.Errorf("calling to AchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Achievement.
func (c *AchievementClient) Update() *AchievementUpdate {
	mutation := newAchievementMutation(c.config, OpUpdate)
	return &AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementClient) UpdateOne(_m *Achievement) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievement(_m))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementClient) UpdateOneID(id string) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievementID(id))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Achievement.
func (c *AchievementClient) Delete() *AchievementDelete {
	mutation := newAchievementMutation(c.config, OpDelete)
	return &AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementClient) DeleteOne(_m *Achievement) *AchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementClient) DeleteOneID(id string) *AchievementDeleteOne {
	builder := c.Delete().Where(achievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementDeleteOne{builder}
}

// Query returns a query builder for Achievement.
func (c *AchievementClient) Query() *AchievementQuery {
	return &AchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a Achievement entity by its id.
func (c *AchievementClient) Get(ctx context.Context, id string) (*Achievement, error) {
	return c.Query().Where(achievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementClient) GetX(ctx context.Context, id string) *Achievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementClient) Hooks() []Hook {
	return c.hooks.Achievement
}

// Interceptors returns the client interceptors.
func (c *AchievementClient) Interceptors() []Interceptor {
	return c.inters.Achievement
}

func (c *AchievementClient) mutate(ctx context.Context, m *AchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Achievement mutation op: %q", m.Op())
	}
}

// AchievementProgressClient is a client for the AchievementProgress schema.
type AchievementProgressClient struct {
	config
}

// NewAchievementProgressClient returns a client for the AchievementProgress from the given config.
func NewAchievementProgressClient(c config) *AchievementProgressClient {
	return &AchievementProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievementprogress.Hooks(f(g(h())))`.
func (c *AchievementProgressClient) Use(hooks ...Hook) {
	c.hooks.AchievementProgress = append(c.hooks.AchievementProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievementprogress.Intercept(f(g(h())))`.
func (c *AchievementProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.AchievementProgress = append(c.inters.AchievementProgress, interceptors...)
}

// Create returns a builder for creating a AchievementProgress entity.
func (c *AchievementProgressClient) Create() *AchievementProgressCreate {
	mutation := newAchievementProgressMutation(c.config, OpCreate)
	return &AchievementProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AchievementProgress entities.
func (c *AchievementProgressClient) CreateBulk(builders ...*AchievementProgressCreate) *AchievementProgressCreateBulk {
	return &AchievementProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementProgressClient) MapCreateBulk(slice any, setFunc func(*AchievementProgressCreate, int)) *AchievementProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementProgressCreateBulk{err: fmt.Errorf("calling to AchievementProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AchievementProgress.
func (c *AchievementProgressClient) Update() *AchievementProgressUpdate {
	mutation := newAchievementProgressMutation(c.config, OpUpdate)
	return &AchievementProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementProgressClient) UpdateOne(_m *AchievementProgress) *AchievementProgressUpdateOne {
	mutation := newAchievementProgressMutation(c.config, OpUpdateOne, withAchievementProgress(_m))
	return &AchievementProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementProgressClient) UpdateOneID(id string) *AchievementProgressUpdateOne {
	mutation := newAchievementProgressMutation(c.config, OpUpdateOne, withAchievementProgressID(id))
	return &AchievementProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AchievementProgress.
func (c *AchievementProgressClient) Delete() *AchievementProgressDelete {
	mutation := newAchievementProgressMutation(c.config, OpDelete)
	return &AchievementProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementProgressClient) DeleteOne(_m *AchievementProgress) *AchievementProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementProgressClient) DeleteOneID(id string) *AchievementProgressDeleteOne {
	builder := c.Delete().Where(achievementprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementProgressDeleteOne{builder}
}

// Query returns a query builder for AchievementProgress.
func (c *AchievementProgressClient) Query() *AchievementProgressQuery {
	return &AchievementProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievementProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a AchievementProgress entity by its id.
func (c *AchievementProgressClient) Get(ctx context.Context, id string) (*AchievementProgress, error) {
	return c.Query().Where(achievementprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementProgressClient) GetX(ctx context.Context, id string) *AchievementProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementProgressClient) Hooks() []Hook {
	return c.hooks.AchievementProgress
}

// Interceptors returns the client interceptors.
func (c *AchievementProgressClient) Interceptors() []Interceptor {
	return c.inters.AchievementProgress
}

func (c *AchievementProgressClient) mutate(ctx context.Context, m *AchievementProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AchievementProgress mutation op: %q", m.Op())
	}
}

// BadgeClient is a client for the Badge schema.
type BadgeClient struct {
	config
}

// NewBadgeClient returns a client for the Badge from the given config.
func NewBadgeClient(c config) *BadgeClient {
	return &BadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badge.Hooks(f(g(h())))`.
func (c *BadgeClient) Use(hooks ...Hook) {
	c.hooks.Badge = append(c.hooks.Badge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badge.Intercept(f(g(h())))`.
func (c *BadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Badge = append(c.inters.Badge, interceptors...)
}

// Create returns a builder for creating a Badge entity.
func (c *BadgeClient) Create() *BadgeCreate {
	mutation := newBadgeMutation(c.config, OpCreate)
	return &BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Badge entities.
func (c *BadgeClient) CreateBulk(builders ...*BadgeCreate) *BadgeCreateBulk {
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeClient) MapCreateBulk(slice any, setFunc func(*BadgeCreate, int)) *BadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeCreateBulk{err: fmt.Errorf("calling to BadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Badge.
func (c *BadgeClient) Update() *BadgeUpdate {
	mutation := newBadgeMutation(c.config, OpUpdate)
	return &BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeClient) UpdateOne(_m *Badge) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadge(_m))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeClient) UpdateOneID(id string) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadgeID(id))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Badge.
func (c *BadgeClient) Delete() *BadgeDelete {
	mutation := newBadgeMutation(c.config, OpDelete)
	return &BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeClient) DeleteOne(_m *Badge) *BadgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeClient) DeleteOneID(id string) *BadgeDeleteOne {
	builder := c.Delete().Where(badge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeDeleteOne{builder}
}

// Query returns a query builder for Badge.
func (c *BadgeClient) Query() *BadgeQuery {
	return &BadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a Badge entity by its id.
func (c *BadgeClient) Get(ctx context.Context, id string) (*Badge, error) {
	return c.Query().Where(badge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeClient) GetX(ctx context.Context, id string) *Badge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUserBadges queries the user_badges edge of a Badge.
func (c *BadgeClient) QueryUserBadges(_m *Badge) *UserBadgeQuery {
	query := (&UserBadgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(badge.Table, badge.FieldID, id),
			sqlgraph.To(userbadge.Table, userbadge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, badge.UserBadgesTable, badge.UserBadgesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClaimLinks queries the claim_links edge of a Badge.
func (c *BadgeClient) QueryClaimLinks(_m *Badge) *BadgeClaimLinkQuery {
	query := (&BadgeClaimLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(badge.Table, badge.FieldID, id),
			sqlgraph.To(badgeclaimlink.Table, badgeclaimlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, badge.ClaimLinksTable, badge.ClaimLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BadgeClient) Hooks() []Hook {
	return c.hooks.Badge
}

// Interceptors returns the client interceptors.
func (c *BadgeClient) Interceptors() []Interceptor {
	return c.inters.Badge
}

func (c *BadgeClient) mutate(ctx context.Context, m *BadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Badge mutation op: %q", m.Op())
	}
}

// BadgeClaimLinkClient is a client for the BadgeClaimLink schema.
type BadgeClaimLinkClient struct {
	config
}

// NewBadgeClaimLinkClient returns a client for the BadgeClaimLink from the given config.
func NewBadgeClaimLinkClient(c config) *BadgeClaimLinkClient {
	return &BadgeClaimLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badgeclaimlink.Hooks(f(g(h())))`.
func (c *BadgeClaimLinkClient) Use(hooks ...Hook) {
	c.hooks.BadgeClaimLink = append(c.hooks.BadgeClaimLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badgeclaimlink.Intercept(f(g(h())))`.
func (c *BadgeClaimLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.BadgeClaimLink = append(c.inters.BadgeClaimLink, interceptors...)
}

// Create returns a builder for creating a BadgeClaimLink entity.
func (c *BadgeClaimLinkClient) Create() *BadgeClaimLinkCreate {
	mutation := newBadgeClaimLinkMutation(c.config, OpCreate)
	return &BadgeClaimLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BadgeClaimLink entities.
func (c *BadgeClaimLinkClient) CreateBulk(builders ...*BadgeClaimLinkCreate) *BadgeClaimLinkCreateBulk {
	return &BadgeClaimLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeClaimLinkClient) MapCreateBulk(slice any, setFunc func(*BadgeClaimLinkCreate, int)) *BadgeClaimLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeClaimLinkCreateBulk{err: fmt.Errorf("calling to BadgeClaimLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeClaimLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeClaimLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BadgeClaimLink.
func (c *BadgeClaimLinkClient) Update() *BadgeClaimLinkUpdate {
	mutation := newBadgeClaimLinkMutation(c.config, OpUpdate)
	return &BadgeClaimLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeClaimLinkClient) UpdateOne(_m *BadgeClaimLink) *BadgeClaimLinkUpdateOne {
	mutation := newBadgeClaimLinkMutation(c.config, OpUpdateOne, withBadgeClaimLink(_m))
	return &BadgeClaimLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeClaimLinkClient) UpdateOneID(id string) *BadgeClaimLinkUpdateOne {
	mutation := newBadgeClaimLinkMutation(c.config, OpUpdateOne, withBadgeClaimLinkID(id))
	return &BadgeClaimLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BadgeClaimLink.
func (c *BadgeClaimLinkClient) Delete() *BadgeClaimLinkDelete {
	mutation := newBadgeClaimLinkMutation(c.config, OpDelete)
	return &BadgeClaimLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeClaimLinkClient) DeleteOne(_m *BadgeClaimLink) *BadgeClaimLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeClaimLinkClient) DeleteOneID(id string) *BadgeClaimLinkDeleteOne {
	builder := c.Delete().Where(badgeclaimlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeClaimLinkDeleteOne{builder}
}

// Query returns a query builder for BadgeClaimLink.
func (c *BadgeClaimLinkClient) Query() *BadgeClaimLinkQuery {
	return &BadgeClaimLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadgeClaimLink},
		inters: c.Interceptors(),
	}
}

// Get returns a BadgeClaimLink entity by its id.
func (c *BadgeClaimLinkClient) Get(ctx context.Context, id string) (*BadgeClaimLink, error) {
	return c.Query().Where(badgeclaimlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeClaimLinkClient) GetX(ctx context.Context, id string) *BadgeClaimLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBadge queries the badge edge of a BadgeClaimLink.
func (c *BadgeClaimLinkClient) QueryBadge(_m *BadgeClaimLink) *BadgeQuery {
	query := (&BadgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(badgeclaimlink.Table, badgeclaimlink.FieldID, id),
			sqlgraph.To(badge.Table, badge.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, badgeclaimlink.BadgeTable, badgeclaimlink.BadgeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BadgeClaimLinkClient) Hooks() []Hook {
	return c.hooks.BadgeClaimLink
}

// Interceptors returns the client interceptors.
func (c *BadgeClaimLinkClient) Interceptors() []Interceptor {
	return c.inters.BadgeClaimLink
}

func (c *BadgeClaimLinkClient) mutate(ctx context.Context, m *BadgeClaimLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeClaimLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeClaimLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeClaimLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeClaimLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BadgeClaimLink mutation op: %q", m.Op())
	}
}

// CheckinClient is a client for the Checkin schema.
type CheckinClient struct {
	config
}

// NewCheckinClient returns a client for the Checkin from the given config.
func NewCheckinClient(c config) *CheckinClient {
	return &CheckinClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkin.Hooks(f(g(h())))`.
func (c *CheckinClient) Use(hooks ...Hook) {
	c.hooks.Checkin = append(c.hooks.Checkin, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkin.Intercept(f(g(h())))`.
func (c *CheckinClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkin = append(c.inters.Checkin, interceptors...)
}

// Create returns a builder for creating a Checkin entity.
func (c *CheckinClient) Create() *CheckinCreate {
	mutation := newCheckinMutation(c.config, OpCreate)
	return &CheckinCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkin entities.
func (c *CheckinClient) CreateBulk(builders ...*CheckinCreate) *CheckinCreateBulk {
	return &CheckinCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckinClient) MapCreateBulk(slice any, setFunc func(*CheckinCreate, int)) *CheckinCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckinCreateBulk{err: fmt.Errorf("calling to CheckinClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckinCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckinCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkin.
func (c *CheckinClient) Update() *CheckinUpdate {
	mutation := newCheckinMutation(c.config, OpUpdate)
	return &CheckinUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckinClient) UpdateOne(_m *Checkin) *CheckinUpdateOne {
	mutation := newCheckinMutation(c.config, OpUpdateOne, withCheckin(_m))
	return &CheckinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckinClient) UpdateOneID(id string) *CheckinUpdateOne {
	mutation := newCheckinMutation(c.config, OpUpdateOne, withCheckinID(id))
	return &CheckinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkin.
func (c *CheckinClient) Delete() *CheckinDelete {
	mutation := newCheckinMutation(c.config, OpDelete)
	return &CheckinDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckinClient) DeleteOne(_m *Checkin) *CheckinDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckinClient) DeleteOneID(id string) *CheckinDeleteOne {
	builder := c.Delete().Where(checkin.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckinDeleteOne{builder}
}

// Query returns a query builder for Checkin.
func (c *CheckinClient) Query() *CheckinQuery {
	return &CheckinQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckin},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkin entity by its id.
func (c *CheckinClient) Get(ctx context.Context, id string) (*Checkin, error) {
	return c.Query().Where(checkin.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckinClient) GetX(ctx context.Context, id string) *Checkin {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a Checkin.
func (c *CheckinClient) QueryEvent(_m *Checkin) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkin.Table, checkin.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkin.EventTable, checkin.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckinClient) Hooks() []Hook {
	return c.hooks.Checkin
}

// Interceptors returns the client interceptors.
func (c *CheckinClient) Interceptors() []Interceptor {
	return c.inters.Checkin
}

func (c *CheckinClient) mutate(ctx context.Context, m *CheckinMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckinCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckinUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckinDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkin mutation op: %q", m.Op())
	}
}

// CheckinCodeClient is a client for the CheckinCode schema.
type CheckinCodeClient struct {
	config
}

// NewCheckinCodeClient returns a client for the CheckinCode from the given config.
func NewCheckinCodeClient(c config) *CheckinCodeClient {
	return &CheckinCodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkincode.Hooks(f(g(h())))`.
func (c *CheckinCodeClient) Use(hooks ...Hook) {
	c.hooks.CheckinCode = append(c.hooks.CheckinCode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkincode.Intercept(f(g(h())))`.
func (c *CheckinCodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.CheckinCode = append(c.inters.CheckinCode, interceptors...)
}

// Create returns a builder for creating a CheckinCode entity.
func (c *CheckinCodeClient) Create() *CheckinCodeCreate {
	mutation := newCheckinCodeMutation(c.config, OpCreate)
	return &CheckinCodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CheckinCode entities.
func (c *CheckinCodeClient) CreateBulk(builders ...*CheckinCodeCreate) *CheckinCodeCreateBulk {
	return &CheckinCodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckinCodeClient) MapCreateBulk(slice any, setFunc func(*CheckinCodeCreate, int)) *CheckinCodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckinCodeCreateBulk{err: fmt.Errorf("calling to CheckinCodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckinCodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckinCodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CheckinCode.
func (c *CheckinCodeClient) Update() *CheckinCodeUpdate {
	mutation := newCheckinCodeMutation(c.config, OpUpdate)
	return &CheckinCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckinCodeClient) UpdateOne(_m *CheckinCode) *CheckinCodeUpdateOne {
	mutation := newCheckinCodeMutation(c.config, OpUpdateOne, withCheckinCode(_m))
	return &CheckinCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckinCodeClient) UpdateOneID(id string) *CheckinCodeUpdateOne {
	mutation := newCheckinCodeMutation(c.config, OpUpdateOne, withCheckinCodeID(id))
	return &CheckinCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CheckinCode.
func (c *CheckinCodeClient) Delete() *CheckinCodeDelete {
	mutation := newCheckinCodeMutation(c.config, OpDelete)
	return &CheckinCodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckinCodeClient) DeleteOne(_m *CheckinCode) *CheckinCodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckinCodeClient) DeleteOneID(id string) *CheckinCodeDeleteOne {
	builder := c.Delete().Where(checkincode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckinCodeDeleteOne{builder}
}

// Query returns a query builder for CheckinCode.
func (c *CheckinCodeClient) Query() *CheckinCodeQuery {
	return &CheckinCodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckinCode},
		inters: c.Interceptors(),
	}
}

// Get returns a CheckinCode entity by its id.
func (c *CheckinCodeClient) Get(ctx context.Context, id string) (*CheckinCode, error) {
	return c.Query().Where(checkincode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckinCodeClient) GetX(ctx context.Context, id string) *CheckinCode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckinCodeClient) Hooks() []Hook {
	return c.hooks.CheckinCode
}

// Interceptors returns the client interceptors.
func (c *CheckinCodeClient) Interceptors() []Interceptor {
	return c.inters.CheckinCode
}

func (c *CheckinCodeClient) mutate(ctx context.Context, m *CheckinCodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckinCodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckinCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckinCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckinCodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CheckinCode mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a Event.
func (c *EventClient) QueryGroup(_m *Event) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.GroupTable, event.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRsvps queries the rsvps edge of a Event.
func (c *EventClient) QueryRsvps(_m *Event) *RSVPQuery {
	query := (&RSVPClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(rsvp.Table, rsvp.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.RsvpsTable, event.RsvpsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckins queries the checkins edge of a Event.
func (c *EventClient) QueryCheckins(_m *Event) *CheckinQuery {
	query := (&CheckinClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(checkin.Table, checkin.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.CheckinsTable, event.CheckinsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// FavoriteClient is a client for the Favorite schema.
type FavoriteClient struct {
	config
}

// NewFavoriteClient returns a client for the Favorite from the given config.
func NewFavoriteClient(c config) *FavoriteClient {
	return &FavoriteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `favorite.Hooks(f(g(h())))`.
func (c *FavoriteClient) Use(hooks ...Hook) {
	c.hooks.Favorite = append(c.hooks.Favorite, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `favorite.Intercept(f(g(h())))`.
func (c *FavoriteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Favorite = append(c.inters.Favorite, interceptors...)
}

// Create returns a builder for creating a Favorite entity.
func (c *FavoriteClient) Create() *FavoriteCreate {
	mutation := newFavoriteMutation(c.config, OpCreate)
	return &FavoriteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Favorite entities.
func (c *FavoriteClient) CreateBulk(builders ...*FavoriteCreate) *FavoriteCreateBulk {
	return &FavoriteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FavoriteClient) MapCreateBulk(slice any, setFunc func(*FavoriteCreate, int)) *FavoriteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FavoriteCreateBulk{err: fmt.Errorf("calling to FavoriteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FavoriteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FavoriteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Favorite.
func (c *FavoriteClient) Update() *FavoriteUpdate {
	mutation := newFavoriteMutation(c.config, OpUpdate)
	return &FavoriteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FavoriteClient) UpdateOne(_m *Favorite) *FavoriteUpdateOne {
	mutation := newFavoriteMutation(c.config, OpUpdateOne, withFavorite(_m))
	return &FavoriteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FavoriteClient) UpdateOneID(id string) *FavoriteUpdateOne {
	mutation := newFavoriteMutation(c.config, OpUpdateOne, withFavoriteID(id))
	return &FavoriteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Favorite.
func (c *FavoriteClient) Delete() *FavoriteDelete {
	mutation := newFavoriteMutation(c.config, OpDelete)
	return &FavoriteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FavoriteClient) DeleteOne(_m *Favorite) *FavoriteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FavoriteClient) DeleteOneID(id string) *FavoriteDeleteOne {
	builder := c.Delete().Where(favorite.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FavoriteDeleteOne{builder}
}

// Query returns a query builder for Favorite.
func (c *FavoriteClient) Query() *FavoriteQuery {
	return &FavoriteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFavorite},
		inters: c.Interceptors(),
	}
}

// Get returns a Favorite entity by its id.
func (c *FavoriteClient) Get(ctx context.Context, id string) (*Favorite, error) {
	return c.Query().Where(favorite.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FavoriteClient) GetX(ctx context.Context, id string) *Favorite {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a Favorite.
func (c *FavoriteClient) QueryGroup(_m *Favorite) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(favorite.Table, favorite.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, favorite.GroupTable, favorite.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FavoriteClient) Hooks() []Hook {
	return c.hooks.Favorite
}

// Interceptors returns the client interceptors.
func (c *FavoriteClient) Interceptors() []Interceptor {
	return c.inters.Favorite
}

func (c *FavoriteClient) mutate(ctx context.Context, m *FavoriteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FavoriteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FavoriteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FavoriteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FavoriteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Favorite mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id string) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id string) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id string) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id string) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConnections queries the connections edge of a Group.
func (c *GroupClient) QueryConnections(_m *Group) *PlatformConnectionQuery {
	query := (&PlatformConnectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(platformconnection.Table, platformconnection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, group.ConnectionsTable, group.ConnectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Group.
func (c *GroupClient) QueryEvents(_m *Group) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, group.EventsTable, group.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFavorites queries the favorites edge of a Group.
func (c *GroupClient) QueryFavorites(_m *Group) *FavoriteQuery {
	query := (&FavoriteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(favorite.Table, favorite.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, group.FavoritesTable, group.FavoritesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySyncLogs queries the sync_logs edge of a Group.
func (c *GroupClient) QuerySyncLogs(_m *Group) *SyncLogQuery {
	query := (&SyncLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(synclog.Table, synclog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, group.SyncLogsTable, group.SyncLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// OnboardingStepClient is a client for the OnboardingStep schema.
type OnboardingStepClient struct {
	config
}

// NewOnboardingStepClient returns a client for the OnboardingStep from the given config.
func NewOnboardingStepClient(c config) *OnboardingStepClient {
	return &OnboardingStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `onboardingstep.Hooks(f(g(h())))`.
func (c *OnboardingStepClient) Use(hooks ...Hook) {
	c.hooks.OnboardingStep = append(c.hooks.OnboardingStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `onboardingstep.Intercept(f(g(h())))`.
func (c *OnboardingStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.OnboardingStep = append(c.inters.OnboardingStep, interceptors...)
}

// Create returns a builder for creating a OnboardingStep entity.
func (c *OnboardingStepClient) Create() *OnboardingStepCreate {
	mutation := newOnboardingStepMutation(c.config, OpCreate)
	return &OnboardingStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OnboardingStep entities.
func (c *OnboardingStepClient) CreateBulk(builders ...*OnboardingStepCreate) *OnboardingStepCreateBulk {
	return &OnboardingStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OnboardingStepClient) MapCreateBulk(slice any, setFunc func(*OnboardingStepCreate, int)) *OnboardingStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OnboardingStepCreateBulk{err: fmt.Errorf("calling to OnboardingStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OnboardingStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OnboardingStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OnboardingStep.
func (c *OnboardingStepClient) Update() *OnboardingStepUpdate {
	mutation := newOnboardingStepMutation(c.config, OpUpdate)
	return &OnboardingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OnboardingStepClient) UpdateOne(_m *OnboardingStep) *OnboardingStepUpdateOne {
	mutation := newOnboardingStepMutation(c.config, OpUpdateOne, withOnboardingStep(_m))
	return &OnboardingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OnboardingStepClient) UpdateOneID(id string) *OnboardingStepUpdateOne {
	mutation := newOnboardingStepMutation(c.config, OpUpdateOne, withOnboardingStepID(id))
	return &OnboardingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OnboardingStep.
func (c *OnboardingStepClient) Delete() *OnboardingStepDelete {
	mutation := newOnboardingStepMutation(c.config, OpDelete)
	return &OnboardingStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OnboardingStepClient) DeleteOne(_m *OnboardingStep) *OnboardingStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OnboardingStepClient) DeleteOneID(id string) *OnboardingStepDeleteOne {
	builder := c.Delete().Where(onboardingstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OnboardingStepDeleteOne{builder}
}

// Query returns a query builder for OnboardingStep.
func (c *OnboardingStepClient) Query() *OnboardingStepQuery {
	return &OnboardingStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOnboardingStep},
		inters: c.Interceptors(),
	}
}

// Get returns a OnboardingStep entity by its id.
func (c *OnboardingStepClient) Get(ctx context.Context, id string) (*OnboardingStep, error) {
	return c.Query().Where(onboardingstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OnboardingStepClient) GetX(ctx context.Context, id string) *OnboardingStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OnboardingStepClient) Hooks() []Hook {
	return c.hooks.OnboardingStep
}

// Interceptors returns the client interceptors.
func (c *OnboardingStepClient) Interceptors() []Interceptor {
	return c.inters.OnboardingStep
}

func (c *OnboardingStepClient) mutate(ctx context.Context, m *OnboardingStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OnboardingStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OnboardingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OnboardingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OnboardingStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OnboardingStep mutation op: %q", m.Op())
	}
}

// PlatformConnectionClient is a client for the PlatformConnection schema.
type PlatformConnectionClient struct {
	config
}

// NewPlatformConnectionClient returns a client for the PlatformConnection from the given config.
func NewPlatformConnectionClient(c config) *PlatformConnectionClient {
	return &PlatformConnectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `platformconnection.Hooks(f(g(h())))`.
func (c *PlatformConnectionClient) Use(hooks ...Hook) {
	c.hooks.PlatformConnection = append(c.hooks.PlatformConnection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `platformconnection.Intercept(f(g(h())))`.
func (c *PlatformConnectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlatformConnection = append(c.inters.PlatformConnection, interceptors...)
}

// Create returns a builder for creating a PlatformConnection entity.
func (c *PlatformConnectionClient) Create() *PlatformConnectionCreate {
	mutation := newPlatformConnectionMutation(c.config, OpCreate)
	return &PlatformConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlatformConnection entities.
func (c *PlatformConnectionClient) CreateBulk(builders ...*PlatformConnectionCreate) *PlatformConnectionCreateBulk {
	return &PlatformConnectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlatformConnectionClient) MapCreateBulk(slice any, setFunc func(*PlatformConnectionCreate, int)) *PlatformConnectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlatformConnectionCreateBulk{err: fmt.Errorf("calling to PlatformConnectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlatformConnectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlatformConnectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlatformConnection.
func (c *PlatformConnectionClient) Update() *PlatformConnectionUpdate {
	mutation := newPlatformConnectionMutation(c.config, OpUpdate)
	return &PlatformConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlatformConnectionClient) UpdateOne(_m *PlatformConnection) *PlatformConnectionUpdateOne {
	mutation := newPlatformConnectionMutation(c.config, OpUpdateOne, withPlatformConnection(_m))
	return &PlatformConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlatformConnectionClient) UpdateOneID(id string) *PlatformConnectionUpdateOne {
	mutation := newPlatformConnectionMutation(c.config, OpUpdateOne, withPlatformConnectionID(id))
	return &PlatformConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlatformConnection.
func (c *PlatformConnectionClient) Delete() *PlatformConnectionDelete {
	mutation := newPlatformConnectionMutation(c.config, OpDelete)
	return &PlatformConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlatformConnectionClient) DeleteOne(_m *PlatformConnection) *PlatformConnectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlatformConnectionClient) DeleteOneID(id string) *PlatformConnectionDeleteOne {
	builder := c.Delete().Where(platformconnection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlatformConnectionDeleteOne{builder}
}

// Query returns a query builder for PlatformConnection.
func (c *PlatformConnectionClient) Query() *PlatformConnectionQuery {
	return &PlatformConnectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlatformConnection},
		inters: c.Interceptors(),
	}
}

// Get returns a PlatformConnection entity by its id.
func (c *PlatformConnectionClient) Get(ctx context.Context, id string) (*PlatformConnection, error) {
	return c.Query().Where(platformconnection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlatformConnectionClient) GetX(ctx context.Context, id string) *PlatformConnection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a PlatformConnection.
func (c *PlatformConnectionClient) QueryGroup(_m *PlatformConnection) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(platformconnection.Table, platformconnection.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, platformconnection.GroupTable, platformconnection.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlatformConnectionClient) Hooks() []Hook {
	return c.hooks.PlatformConnection
}

// Interceptors returns the client interceptors.
func (c *PlatformConnectionClient) Interceptors() []Interceptor {
	return c.inters.PlatformConnection
}

func (c *PlatformConnectionClient) mutate(ctx context.Context, m *PlatformConnectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlatformConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlatformConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlatformConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlatformConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlatformConnection mutation op: %q", m.Op())
	}
}

// QueuedEventClient is a client for the QueuedEvent schema.
type QueuedEventClient struct {
	config
}

// NewQueuedEventClient returns a client for the QueuedEvent from the given config.
func NewQueuedEventClient(c config) *QueuedEventClient {
	return &QueuedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuedevent.Hooks(f(g(h())))`.
func (c *QueuedEventClient) Use(hooks ...Hook) {
	c.hooks.QueuedEvent = append(c.hooks.QueuedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuedevent.Intercept(f(g(h())))`.
func (c *QueuedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueuedEvent = append(c.inters.QueuedEvent, interceptors...)
}

// Create returns a builder for creating a QueuedEvent entity.
func (c *QueuedEventClient) Create() *QueuedEventCreate {
	mutation := newQueuedEventMutation(c.config, OpCreate)
	return &QueuedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueuedEvent entities.
func (c *QueuedEventClient) CreateBulk(builders ...*QueuedEventCreate) *QueuedEventCreateBulk {
	return &QueuedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueuedEventClient) MapCreateBulk(slice any, setFunc func(*QueuedEventCreate, int)) *QueuedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueuedEventCreateBulk{err: fmt.Errorf("calling to QueuedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueuedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueuedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueuedEvent.
func (c *QueuedEventClient) Update() *QueuedEventUpdate {
	mutation := newQueuedEventMutation(c.config, OpUpdate)
	return &QueuedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueuedEventClient) UpdateOne(_m *QueuedEvent) *QueuedEventUpdateOne {
	mutation := newQueuedEventMutation(c.config, OpUpdateOne, withQueuedEvent(_m))
	return &QueuedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueuedEventClient) UpdateOneID(id int) *QueuedEventUpdateOne {
	mutation := newQueuedEventMutation(c.config, OpUpdateOne, withQueuedEventID(id))
	return &QueuedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueuedEvent.
func (c *QueuedEventClient) Delete() *QueuedEventDelete {
	mutation := newQueuedEventMutation(c.config, OpDelete)
	return &QueuedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueuedEventClient) DeleteOne(_m *QueuedEvent) *QueuedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueuedEventClient) DeleteOneID(id int) *QueuedEventDeleteOne {
	builder := c.Delete().Where(queuedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueuedEventDeleteOne{builder}
}

// Query returns a query builder for QueuedEvent.
func (c *QueuedEventClient) Query() *QueuedEventQuery {
	return &QueuedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueuedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QueuedEvent entity by its id.
func (c *QueuedEventClient) Get(ctx context.Context, id int) (*QueuedEvent, error) {
	return c.Query().Where(queuedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueuedEventClient) GetX(ctx context.Context, id int) *QueuedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueuedEventClient) Hooks() []Hook {
	return c.hooks.QueuedEvent
}

// Interceptors returns the client interceptors.
func (c *QueuedEventClient) Interceptors() []Interceptor {
	return c.inters.QueuedEvent
}

func (c *QueuedEventClient) mutate(ctx context.Context, m *QueuedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueuedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueuedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueuedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueuedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueuedEvent mutation op: %q", m.Op())
	}
}

// RSVPClient is a client for the RSVP schema.
type RSVPClient struct {
	config
}

// NewRSVPClient returns a client for the RSVP from the given config.
func NewRSVPClient(c config) *RSVPClient {
	return &RSVPClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rsvp.Hooks(f(g(h())))`.
func (c *RSVPClient) Use(hooks ...Hook) {
	c.hooks.RSVP = append(c.hooks.RSVP, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rsvp.Intercept(f(g(h())))`.
func (c *RSVPClient) Intercept(interceptors ...Interceptor) {
	c.inters.RSVP = append(c.inters.RSVP, interceptors...)
}

// Create returns a builder for creating a RSVP entity.
func (c *RSVPClient) Create() *RSVPCreate {
	mutation := newRSVPMutation(c.config, OpCreate)
	return &RSVPCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RSVP entities.
func (c *RSVPClient) CreateBulk(builders ...*RSVPCreate) *RSVPCreateBulk {
	return &RSVPCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RSVPClient) MapCreateBulk(slice any, setFunc func(*RSVPCreate, int)) *RSVPCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RSVPCreateBulk{err: fmt.Errorf("calling to RSVPClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RSVPCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RSVPCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RSVP.
func (c *RSVPClient) Update() *RSVPUpdate {
	mutation := newRSVPMutation(c.config, OpUpdate)
	return &RSVPUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RSVPClient) UpdateOne(_m *RSVP) *RSVPUpdateOne {
	mutation := newRSVPMutation(c.config, OpUpdateOne, withRSVP(_m))
	return &RSVPUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RSVPClient) UpdateOneID(id string) *RSVPUpdateOne {
	mutation := newRSVPMutation(c.config, OpUpdateOne, withRSVPID(id))
	return &RSVPUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RSVP.
func (c *RSVPClient) Delete() *RSVPDelete {
	mutation := newRSVPMutation(c.config, OpDelete)
	return &RSVPDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RSVPClient) DeleteOne(_m *RSVP) *RSVPDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RSVPClient) DeleteOneID(id string) *RSVPDeleteOne {
	builder := c.Delete().Where(rsvp.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RSVPDeleteOne{builder}
}

// Query returns a query builder for RSVP.
func (c *RSVPClient) Query() *RSVPQuery {
	return &RSVPQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRSVP},
		inters: c.Interceptors(),
	}
}

// Get returns a RSVP entity by its id.
func (c *RSVPClient) Get(ctx context.Context, id string) (*RSVP, error) {
	return c.Query().Where(rsvp.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RSVPClient) GetX(ctx context.Context, id string) *RSVP {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a RSVP.
func (c *RSVPClient) QueryEvent(_m *RSVP) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rsvp.Table, rsvp.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rsvp.EventTable, rsvp.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RSVPClient) Hooks() []Hook {
	return c.hooks.RSVP
}

// Interceptors returns the client interceptors.
func (c *RSVPClient) Interceptors() []Interceptor {
	return c.inters.RSVP
}

func (c *RSVPClient) mutate(ctx context.Context, m *RSVPMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RSVPCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RSVPUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RSVPUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RSVPDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RSVP mutation op: %q", m.Op())
	}
}

// SyncLogClient is a client for the SyncLog schema.
type SyncLogClient struct {
	config
}

// NewSyncLogClient returns a client for the SyncLog from the given config.
func NewSyncLogClient(c config) *SyncLogClient {
	return &SyncLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `synclog.Hooks(f(g(h())))`.
func (c *SyncLogClient) Use(hooks ...Hook) {
	c.hooks.SyncLog = append(c.hooks.SyncLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `synclog.Intercept(f(g(h())))`.
func (c *SyncLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncLog = append(c.inters.SyncLog, interceptors...)
}

// Create returns a builder for creating a SyncLog entity.
func (c *SyncLogClient) Create() *SyncLogCreate {
	mutation := newSyncLogMutation(c.config, OpCreate)
	return &SyncLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncLog entities.
func (c *SyncLogClient) CreateBulk(builders ...*SyncLogCreate) *SyncLogCreateBulk {
	return &SyncLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncLogClient) MapCreateBulk(slice any, setFunc func(*SyncLogCreate, int)) *SyncLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncLogCreateBulk{err: fmt.Errorf("calling to SyncLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncLog.
func (c *SyncLogClient) Update() *SyncLogUpdate {
	mutation := newSyncLogMutation(c.config, OpUpdate)
	return &SyncLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncLogClient) UpdateOne(_m *SyncLog) *SyncLogUpdateOne {
	mutation := newSyncLogMutation(c.config, OpUpdateOne, withSyncLog(_m))
	return &SyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncLogClient) UpdateOneID(id string) *SyncLogUpdateOne {
	mutation := newSyncLogMutation(c.config, OpUpdateOne, withSyncLogID(id))
	return &SyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncLog.
func (c *SyncLogClient) Delete() *SyncLogDelete {
	mutation := newSyncLogMutation(c.config, OpDelete)
	return &SyncLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncLogClient) DeleteOne(_m *SyncLog) *SyncLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncLogClient) DeleteOneID(id string) *SyncLogDeleteOne {
	builder := c.Delete().Where(synclog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncLogDeleteOne{builder}
}

// Query returns a query builder for SyncLog.
func (c *SyncLogClient) Query() *SyncLogQuery {
	return &SyncLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncLog},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncLog entity by its id.
func (c *SyncLogClient) Get(ctx context.Context, id string) (*SyncLog, error) {
	return c.Query().Where(synclog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncLogClient) GetX(ctx context.Context, id string) *SyncLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a SyncLog.
func (c *SyncLogClient) QueryGroup(_m *SyncLog) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(synclog.Table, synclog.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, synclog.GroupTable, synclog.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SyncLogClient) Hooks() []Hook {
	return c.hooks.SyncLog
}

// Interceptors returns the client interceptors.
func (c *SyncLogClient) Interceptors() []Interceptor {
	return c.inters.SyncLog
}

func (c *SyncLogClient) mutate(ctx context.Context, m *SyncLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncLog mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserBadgeClient is a client for the UserBadge schema.
type UserBadgeClient struct {
	config
}

// NewUserBadgeClient returns a client for the UserBadge from the given config.
func NewUserBadgeClient(c config) *UserBadgeClient {
	return &UserBadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userbadge.Hooks(f(g(h())))`.
func (c *UserBadgeClient) Use(hooks ...Hook) {
	c.hooks.UserBadge = append(c.hooks.UserBadge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userbadge.Intercept(f(g(h())))`.
func (c *UserBadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserBadge = append(c.inters.UserBadge, interceptors...)
}

// Create returns a builder for creating a UserBadge entity.
func (c *UserBadgeClient) Create() *UserBadgeCreate {
	mutation := newUserBadgeMutation(c.config, OpCreate)
	return &UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserBadge entities.
func (c *UserBadgeClient) CreateBulk(builders ...*UserBadgeCreate) *UserBadgeCreateBulk {
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserBadgeClient) MapCreateBulk(slice any, setFunc func(*UserBadgeCreate, int)) *UserBadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserBadgeCreateBulk{err: fmt.Errorf("calling to UserBadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserBadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserBadge.
func (c *UserBadgeClient) Update() *UserBadgeUpdate {
	mutation := newUserBadgeMutation(c.config, OpUpdate)
	return &UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserBadgeClient) UpdateOne(_m *UserBadge) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadge(_m))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserBadgeClient) UpdateOneID(id string) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadgeID(id))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserBadge.
func (c *UserBadgeClient) Delete() *UserBadgeDelete {
	mutation := newUserBadgeMutation(c.config, OpDelete)
	return &UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserBadgeClient) DeleteOne(_m *UserBadge) *UserBadgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserBadgeClient) DeleteOneID(id string) *UserBadgeDeleteOne {
	builder := c.Delete().Where(userbadge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserBadgeDeleteOne{builder}
}

// Query returns a query builder for UserBadge.
func (c *UserBadgeClient) Query() *UserBadgeQuery {
	return &UserBadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a UserBadge entity by its id.
func (c *UserBadgeClient) Get(ctx context.Context, id string) (*UserBadge, error) {
	return c.Query().Where(userbadge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserBadgeClient) GetX(ctx context.Context, id string) *UserBadge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBadge queries the badge edge of a UserBadge.
func (c *UserBadgeClient) QueryBadge(_m *UserBadge) *BadgeQuery {
	query := (&BadgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userbadge.Table, userbadge.FieldID, id),
			sqlgraph.To(badge.Table, badge.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, userbadge.BadgeTable, userbadge.BadgeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserBadgeClient) Hooks() []Hook {
	return c.hooks.UserBadge
}

// Interceptors returns the client interceptors.
func (c *UserBadgeClient) Interceptors() []Interceptor {
	return c.inters.UserBadge
}

func (c *UserBadgeClient) mutate(ctx context.Context, m *UserBadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserBadge mutation op: %q", m.Op())
	}
}

// UserEntitlementClient is a client for the UserEntitlement schema.
type UserEntitlementClient struct {
	config
}

// NewUserEntitlementClient returns a client for the UserEntitlement from the given config.
func NewUserEntitlementClient(c config) *UserEntitlementClient {
	return &UserEntitlementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userentitlement.Hooks(f(g(h())))`.
func (c *UserEntitlementClient) Use(hooks ...Hook) {
	c.hooks.UserEntitlement = append(c.hooks.UserEntitlement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userentitlement.Intercept(f(g(h())))`.
func (c *UserEntitlementClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserEntitlement = append(c.inters.UserEntitlement, interceptors...)
}

// Create returns a builder for creating a UserEntitlement entity.
func (c *UserEntitlementClient) Create() *UserEntitlementCreate {
	mutation := newUserEntitlementMutation(c.config, OpCreate)
	return &UserEntitlementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserEntitlement entities.
func (c *UserEntitlementClient) CreateBulk(builders ...*UserEntitlementCreate) *UserEntitlementCreateBulk {
	return &UserEntitlementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserEntitlementClient) MapCreateBulk(slice any, setFunc func(*UserEntitlementCreate, int)) *UserEntitlementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserEntitlementCreateBulk{err: fmt.Errorf("calling to UserEntitlementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserEntitlementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserEntitlementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserEntitlement.
func (c *UserEntitlementClient) Update() *UserEntitlementUpdate {
	mutation := newUserEntitlementMutation(c.config, OpUpdate)
	return &UserEntitlementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserEntitlementClient) UpdateOne(_m *UserEntitlement) *UserEntitlementUpdateOne {
	mutation := newUserEntitlementMutation(c.config, OpUpdateOne, withUserEntitlement(_m))
	return &UserEntitlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserEntitlementClient) UpdateOneID(id string) *UserEntitlementUpdateOne {
	mutation := newUserEntitlementMutation(c.config, OpUpdateOne, withUserEntitlementID(id))
	return &UserEntitlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserEntitlement.
func (c *UserEntitlementClient) Delete() *UserEntitlementDelete {
	mutation := newUserEntitlementMutation(c.config, OpDelete)
	return &UserEntitlementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserEntitlementClient) DeleteOne(_m *UserEntitlement) *UserEntitlementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserEntitlementClient) DeleteOneID(id string) *UserEntitlementDeleteOne {
	builder := c.Delete().Where(userentitlement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserEntitlementDeleteOne{builder}
}

// Query returns a query builder for UserEntitlement.
func (c *UserEntitlementClient) Query() *UserEntitlementQuery {
	return &UserEntitlementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserEntitlement},
		inters: c.Interceptors(),
	}
}

// Get returns a UserEntitlement entity by its id.
func (c *UserEntitlementClient) Get(ctx context.Context, id string) (*UserEntitlement, error) {
	return c.Query().Where(userentitlement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserEntitlementClient) GetX(ctx context.Context, id string) *UserEntitlement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserEntitlementClient) Hooks() []Hook {
	return c.hooks.UserEntitlement
}

// Interceptors returns the client interceptors.
func (c *UserEntitlementClient) Interceptors() []Interceptor {
	return c.inters.UserEntitlement
}

func (c *UserEntitlementClient) mutate(ctx context.Context, m *UserEntitlementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserEntitlementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserEntitlementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserEntitlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserEntitlementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserEntitlement mutation op: %q", m.Op())
	}
}

// UserOnboardingStepClient is a client for the UserOnboardingStep schema.
type UserOnboardingStepClient struct {
	config
}

// NewUserOnboardingStepClient returns a client for the UserOnboardingStep from the given config.
func NewUserOnboardingStepClient(c config) *UserOnboardingStepClient {
	return &UserOnboardingStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `useronboardingstep.Hooks(f(g(h())))`.
func (c *UserOnboardingStepClient) Use(hooks ...Hook) {
	c.hooks.UserOnboardingStep = append(c.hooks.UserOnboardingStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `useronboardingstep.Intercept(f(g(h())))`.
func (c *UserOnboardingStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserOnboardingStep = append(c.inters.UserOnboardingStep, interceptors...)
}

// Create returns a builder for creating a UserOnboardingStep entity.
func (c *UserOnboardingStepClient) Create() *UserOnboardingStepCreate {
	mutation := newUserOnboardingStepMutation(c.config, OpCreate)
	return &UserOnboardingStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserOnboardingStep entities.
func (c *UserOnboardingStepClient) CreateBulk(builders ...*UserOnboardingStepCreate) *UserOnboardingStepCreateBulk {
	return &UserOnboardingStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserOnboardingStepClient) MapCreateBulk(slice any, setFunc func(*UserOnboardingStepCreate, int)) *UserOnboardingStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserOnboardingStepCreateBulk{err: fmt.Errorf("calling to UserOnboardingStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserOnboardingStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserOnboardingStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserOnboardingStep.
func (c *UserOnboardingStepClient) Update() *UserOnboardingStepUpdate {
	mutation := newUserOnboardingStepMutation(c.config, OpUpdate)
	return &UserOnboardingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserOnboardingStepClient) UpdateOne(_m *UserOnboardingStep) *UserOnboardingStepUpdateOne {
	mutation := newUserOnboardingStepMutation(c.config, OpUpdateOne, withUserOnboardingStep(_m))
	return &UserOnboardingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserOnboardingStepClient) UpdateOneID(id string) *UserOnboardingStepUpdateOne {
	mutation := newUserOnboardingStepMutation(c.config, OpUpdateOne, withUserOnboardingStepID(id))
	return &UserOnboardingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserOnboardingStep.
func (c *UserOnboardingStepClient) Delete() *UserOnboardingStepDelete {
	mutation := newUserOnboardingStepMutation(c.config, OpDelete)
	return &UserOnboardingStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserOnboardingStepClient) DeleteOne(_m *UserOnboardingStep) *UserOnboardingStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserOnboardingStepClient) DeleteOneID(id string) *UserOnboardingStepDeleteOne {
	builder := c.Delete().Where(useronboardingstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserOnboardingStepDeleteOne{builder}
}

// Query returns a query builder for UserOnboardingStep.
func (c *UserOnboardingStepClient) Query() *UserOnboardingStepQuery {
	return &UserOnboardingStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserOnboardingStep},
		inters: c.Interceptors(),
	}
}

// Get returns a UserOnboardingStep entity by its id.
func (c *UserOnboardingStepClient) Get(ctx context.Context, id string) (*UserOnboardingStep, error) {
	return c.Query().Where(useronboardingstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserOnboardingStepClient) GetX(ctx context.Context, id string) *UserOnboardingStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserOnboardingStepClient) Hooks() []Hook {
	return c.hooks.UserOnboardingStep
}

// Interceptors returns the client interceptors.
func (c *UserOnboardingStepClient) Interceptors() []Interceptor {
	return c.inters.UserOnboardingStep
}

func (c *UserOnboardingStepClient) mutate(ctx context.Context, m *UserOnboardingStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserOnboardingStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserOnboardingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserOnboardingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserOnboardingStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserOnboardingStep mutation op: %q", m.Op())
	}
}

// VenueClient is a client for the Venue schema.
type VenueClient struct {
	config
}

// NewVenueClient returns a client for the Venue from the given config.
func NewVenueClient(c config) *VenueClient {
	return &VenueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `venue.Hooks(f(g(h())))`.
func (c *VenueClient) Use(hooks ...Hook) {
	c.hooks.Venue = append(c.hooks.Venue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `venue.Intercept(f(g(h())))`.
func (c *VenueClient) Intercept(interceptors ...Interceptor) {
	c.inters.Venue = append(c.inters.Venue, interceptors...)
}

// Create returns a builder for creating a Venue entity.
func (c *VenueClient) Create() *VenueCreate {
	mutation := newVenueMutation(c.config, OpCreate)
	return &VenueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Venue entities.
func (c *VenueClient) CreateBulk(builders ...*VenueCreate) *VenueCreateBulk {
	return &VenueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VenueClient) MapCreateBulk(slice any, setFunc func(*VenueCreate, int)) *VenueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VenueCreateBulk{err: fmt.Errorf("calling to VenueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VenueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VenueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Venue.
func (c *VenueClient) Update() *VenueUpdate {
	mutation := newVenueMutation(c.config, OpUpdate)
	return &VenueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VenueClient) UpdateOne(_m *Venue) *VenueUpdateOne {
	mutation := newVenueMutation(c.config, OpUpdateOne, withVenue(_m))
	return &VenueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VenueClient) UpdateOneID(id string) *VenueUpdateOne {
	mutation := newVenueMutation(c.config, OpUpdateOne, withVenueID(id))
	return &VenueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Venue.
func (c *VenueClient) Delete() *VenueDelete {
	mutation := newVenueMutation(c.config, OpDelete)
	return &VenueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VenueClient) DeleteOne(_m *Venue) *VenueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VenueClient) DeleteOneID(id string) *VenueDeleteOne {
	builder := c.Delete().Where(venue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VenueDeleteOne{builder}
}

// Query returns a query builder for Venue.
func (c *VenueClient) Query() *VenueQuery {
	return &VenueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVenue},
		inters: c.Interceptors(),
	}
}

// Get returns a Venue entity by its id.
func (c *VenueClient) Get(ctx context.Context, id string) (*Venue, error) {
	return c.Query().Where(venue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VenueClient) GetX(ctx context.Context, id string) *Venue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VenueClient) Hooks() []Hook {
	return c.hooks.Venue
}

// Interceptors returns the client interceptors.
func (c *VenueClient) Interceptors() []Interceptor {
	return c.inters.Venue
}

func (c *VenueClient) mutate(ctx context.Context, m *VenueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VenueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VenueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VenueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VenueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Venue mutation op: %q", m.Op())
	}
}

// WebhookClient is a client for the Webhook schema.
type WebhookClient struct {
	config
}

// NewWebhookClient returns a client for the Webhook from the given config.
func NewWebhookClient(c config) *WebhookClient {
	return &WebhookClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhook.Hooks(f(g(h())))`.
func (c *WebhookClient) Use(hooks ...Hook) {
	c.hooks.Webhook = append(c.hooks.Webhook, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhook.Intercept(f(g(h())))`.
func (c *WebhookClient) Intercept(interceptors ...Interceptor) {
	c.inters.Webhook = append(c.inters.Webhook, interceptors...)
}

// Create returns a builder for creating a Webhook entity.
func (c *WebhookClient) Create() *WebhookCreate {
	mutation := newWebhookMutation(c.config, OpCreate)
	return &WebhookCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Webhook entities.
func (c *WebhookClient) CreateBulk(builders ...*WebhookCreate) *WebhookCreateBulk {
	return &WebhookCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookClient) MapCreateBulk(slice any, setFunc func(*WebhookCreate, int)) *WebhookCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookCreateBulk{err: fmt.Errorf("calling to WebhookClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Webhook.
func (c *WebhookClient) Update() *WebhookUpdate {
	mutation := newWebhookMutation(c.config, OpUpdate)
	return &WebhookUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookClient) UpdateOne(_m *Webhook) *WebhookUpdateOne {
	mutation := newWebhookMutation(c.config, OpUpdateOne, withWebhook(_m))
	return &WebhookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookClient) UpdateOneID(id string) *WebhookUpdateOne {
	mutation := newWebhookMutation(c.config, OpUpdateOne, withWebhookID(id))
	return &WebhookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Webhook.
func (c *WebhookClient) Delete() *WebhookDelete {
	mutation := newWebhookMutation(c.config, OpDelete)
	return &WebhookDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookClient) DeleteOne(_m *Webhook) *WebhookDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookClient) DeleteOneID(id string) *WebhookDeleteOne {
	builder := c.Delete().Where(webhook.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookDeleteOne{builder}
}

// Query returns a query builder for Webhook.
func (c *WebhookClient) Query() *WebhookQuery {
	return &WebhookQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhook},
		inters: c.Interceptors(),
	}
}

// Get returns a Webhook entity by its id.
func (c *WebhookClient) Get(ctx context.Context, id string) (*Webhook, error) {
	return c.Query().Where(webhook.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookClient) GetX(ctx context.Context, id string) *Webhook {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeliveries queries the deliveries edge of a Webhook.
func (c *WebhookClient) QueryDeliveries(_m *Webhook) *WebhookDeliveryQuery {
	query := (&WebhookDeliveryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(webhook.Table, webhook.FieldID, id),
			sqlgraph.To(webhookdelivery.Table, webhookdelivery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, webhook.DeliveriesTable, webhook.DeliveriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WebhookClient) Hooks() []Hook {
	return c.hooks.Webhook
}

// Interceptors returns the client interceptors.
func (c *WebhookClient) Interceptors() []Interceptor {
	return c.inters.Webhook
}

func (c *WebhookClient) mutate(ctx context.Context, m *WebhookMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Webhook mutation op: %q", m.Op())
	}
}

// WebhookDeliveryClient is a client for the WebhookDelivery schema.
type WebhookDeliveryClient struct {
	config
}

// NewWebhookDeliveryClient returns a client for the WebhookDelivery from the given config.
func NewWebhookDeliveryClient(c config) *WebhookDeliveryClient {
	return &WebhookDeliveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookdelivery.Hooks(f(g(h())))`.
func (c *WebhookDeliveryClient) Use(hooks ...Hook) {
	c.hooks.WebhookDelivery = append(c.hooks.WebhookDelivery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookdelivery.Intercept(f(g(h())))`.
func (c *WebhookDeliveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookDelivery = append(c.inters.WebhookDelivery, interceptors...)
}

// Create returns a builder for creating a WebhookDelivery entity.
func (c *WebhookDeliveryClient) Create() *WebhookDeliveryCreate {
	mutation := newWebhookDeliveryMutation(c.config, OpCreate)
	return &WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookDelivery entities.
func (c *WebhookDeliveryClient) CreateBulk(builders ...*WebhookDeliveryCreate) *WebhookDeliveryCreateBulk {
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookDeliveryClient) MapCreateBulk(slice any, setFunc func(*WebhookDeliveryCreate, int)) *WebhookDeliveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookDeliveryCreateBulk{err: fmt.Errorf("calling to WebhookDeliveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookDeliveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Update() *WebhookDeliveryUpdate {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdate)
	return &WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookDeliveryClient) UpdateOne(_m *WebhookDelivery) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDelivery(_m))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookDeliveryClient) UpdateOneID(id string) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDeliveryID(id))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Delete() *WebhookDeliveryDelete {
	mutation := newWebhookDeliveryMutation(c.config, OpDelete)
	return &WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookDeliveryClient) DeleteOne(_m *WebhookDelivery) *WebhookDeliveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookDeliveryClient) DeleteOneID(id string) *WebhookDeliveryDeleteOne {
	builder := c.Delete().Where(webhookdelivery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookDeliveryDeleteOne{builder}
}

// Query returns a query builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Query() *WebhookDeliveryQuery {
	return &WebhookDeliveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookDelivery},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookDelivery entity by its id.
func (c *WebhookDeliveryClient) Get(ctx context.Context, id string) (*WebhookDelivery, error) {
	return c.Query().Where(webhookdelivery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookDeliveryClient) GetX(ctx context.Context, id string) *WebhookDelivery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWebhook queries the webhook edge of a WebhookDelivery.
func (c *WebhookDeliveryClient) QueryWebhook(_m *WebhookDelivery) *WebhookQuery {
	query := (&WebhookClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookdelivery.Table, webhookdelivery.FieldID, id),
			sqlgraph.To(webhook.Table, webhook.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, webhookdelivery.WebhookTable, webhookdelivery.WebhookColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WebhookDeliveryClient) Hooks() []Hook {
	return c.hooks.WebhookDelivery
}

// Interceptors returns the client interceptors.
func (c *WebhookDeliveryClient) Interceptors() []Interceptor {
	return c.inters.WebhookDelivery
}

func (c *WebhookDeliveryClient) mutate(ctx context.Context, m *WebhookDeliveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookDelivery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Achievement, AchievementProgress, Badge, BadgeClaimLink, Checkin, CheckinCode,
		Event, Favorite, Group, OnboardingStep, PlatformConnection, QueuedEvent, RSVP,
		SyncLog, User, UserBadge, UserEntitlement, UserOnboardingStep, Venue, Webhook,
		WebhookDelivery []ent.Hook
	}
	inters struct {
		Achievement, AchievementProgress, Badge, BadgeClaimLink, Checkin, CheckinCode,
		Event, Favorite, Group, OnboardingStep, PlatformConnection, QueuedEvent, RSVP,
		SyncLog, User, UserBadge, UserEntitlement, UserOnboardingStep, Venue, Webhook,
		WebhookDelivery []ent.Interceptor
	}
)
