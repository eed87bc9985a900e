// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/kevinkeet/watershed/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/achievementevent"
	"github.com/kevinkeet/watershed/ent/decisionevent"
	"github.com/kevinkeet/watershed/ent/llmrequestevent"
	"github.com/kevinkeet/watershed/ent/masteryevent"
	"github.com/kevinkeet/watershed/ent/reviewevent"
	"github.com/kevinkeet/watershed/ent/simulationevent"
	"github.com/kevinkeet/watershed/ent/snapshot"
	"github.com/kevinkeet/watershed/ent/xpevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AchievementEvent is the client for interacting with the AchievementEvent builders.
	AchievementEvent *AchievementEventClient
	// DecisionEvent is the client for interacting with the DecisionEvent builders.
	DecisionEvent *DecisionEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MasteryEvent is the client for interacting with the MasteryEvent builders.
	MasteryEvent *MasteryEventClient
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
	// SimulationEvent is the client for interacting with the SimulationEvent builders.
	SimulationEvent *SimulationEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// XPEvent is the client for interacting with the XPEvent builders.
	XPEvent *XPEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AchievementEvent = NewAchievementEventClient(c.config)
	c.DecisionEvent = NewDecisionEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MasteryEvent = NewMasteryEventClient(c.config)
	c.ReviewEvent = NewReviewEventClient(c.config)
	c.SimulationEvent = NewSimulationEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.XPEvent = NewXPEventClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AchievementEvent: NewAchievementEventClient(cfg),
		DecisionEvent:    NewDecisionEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MasteryEvent:     NewMasteryEventClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SimulationEvent:  NewSimulationEventClient(cfg),
		Snapshot:         NewSnapshotClient(cfg),
		XPEvent:          NewXPEventClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AchievementEvent: NewAchievementEventClient(cfg),
		DecisionEvent:    NewDecisionEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MasteryEvent:     NewMasteryEventClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SimulationEvent:  NewSimulationEventClient(cfg),
		Snapshot:         NewSnapshotClient(cfg),
		XPEvent:          NewXPEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AchievementEvent.
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
		c.AchievementEvent, c.DecisionEvent, c.LLMRequestEvent, c.MasteryEvent,
		c.ReviewEvent, c.SimulationEvent, c.Snapshot, c.XPEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AchievementEvent, c.DecisionEvent, c.LLMRequestEvent, c.MasteryEvent,
		c.ReviewEvent, c.SimulationEvent, c.Snapshot, c.XPEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementEventMutation:
		return c.AchievementEvent.mutate(ctx, m)
	case *DecisionEventMutation:
		return c.DecisionEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MasteryEventMutation:
		return c.MasteryEvent.mutate(ctx, m)
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	case *SimulationEventMutation:
		return c.SimulationEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *XPEventMutation:
		return c.XPEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementEventClient is a client for the AchievementEvent schema.
type AchievementEventClient struct {
	config
}

// NewAchievementEventClient returns a client for the AchievementEvent from the given config.
func NewAchievementEventClient(c config) *AchievementEventClient {
	return &AchievementEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievementevent.Hooks(f(g(h())))`.
func (c *AchievementEventClient) Use(hooks ...Hook) {
	c.hooks.AchievementEvent = append(c.hooks.AchievementEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievementevent.Intercept(f(g(h())))`.
func (c *AchievementEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AchievementEvent = append(c.inters.AchievementEvent, interceptors...)
}

// Create returns a builder for creating a AchievementEvent entity.
func (c *AchievementEventClient) Create() *AchievementEventCreate {
	mutation := newAchievementEventMutation(c.config, OpCreate)
	return &AchievementEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AchievementEvent entities.
func (c *AchievementEventClient) CreateBulk(builders ...*AchievementEventCreate) *AchievementEventCreateBulk {
	return &AchievementEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementEventClient) MapCreateBulk(slice any, setFunc func(*AchievementEventCreate, int)) *AchievementEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementEventCreateBulk{err: fmt.Errorf("calling to AchievementEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AchievementEvent.
func (c *AchievementEventClient) Update() *AchievementEventUpdate {
	mutation := newAchievementEventMutation(c.config, OpUpdate)
	return &AchievementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementEventClient) UpdateOne(_m *AchievementEvent) *AchievementEventUpdateOne {
	mutation := newAchievementEventMutation(c.config, OpUpdateOne, withAchievementEvent(_m))
	return &AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementEventClient) UpdateOneID(id int) *AchievementEventUpdateOne {
	mutation := newAchievementEventMutation(c.config, OpUpdateOne, withAchievementEventID(id))
	return &AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AchievementEvent.
func (c *AchievementEventClient) Delete() *AchievementEventDelete {
	mutation := newAchievementEventMutation(c.config, OpDelete)
	return &AchievementEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementEventClient) DeleteOne(_m *AchievementEvent) *AchievementEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementEventClient) DeleteOneID(id int) *AchievementEventDeleteOne {
	builder := c.Delete().Where(achievementevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementEventDeleteOne{builder}
}

// Query returns a query builder for AchievementEvent.
func (c *AchievementEventClient) Query() *AchievementEventQuery {
	return &AchievementEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievementEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AchievementEvent entity by its id.
func (c *AchievementEventClient) Get(ctx context.Context, id int) (*AchievementEvent, error) {
	return c.Query().Where(achievementevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementEventClient) GetX(ctx context.Context, id int) *AchievementEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementEventClient) Hooks() []Hook {
	return c.hooks.AchievementEvent
}

// Interceptors returns the client interceptors.
func (c *AchievementEventClient) Interceptors() []Interceptor {
	return c.inters.AchievementEvent
}

func (c *AchievementEventClient) mutate(ctx context.Context, m *AchievementEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AchievementEvent mutation op: %q", m.Op())
	}
}

// DecisionEventClient is a client for the DecisionEvent schema.
type DecisionEventClient struct {
	config
}

// NewDecisionEventClient returns a client for the DecisionEvent from the given config.
func NewDecisionEventClient(c config) *DecisionEventClient {
	return &DecisionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `decisionevent.Hooks(f(g(h())))`.
func (c *DecisionEventClient) Use(hooks ...Hook) {
	c.hooks.DecisionEvent = append(c.hooks.DecisionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `decisionevent.Intercept(f(g(h())))`.
func (c *DecisionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.DecisionEvent = append(c.inters.DecisionEvent, interceptors...)
}

// Create returns a builder for creating a DecisionEvent entity.
func (c *DecisionEventClient) Create() *DecisionEventCreate {
	mutation := newDecisionEventMutation(c.config, OpCreate)
	return &DecisionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DecisionEvent entities.
func (c *DecisionEventClient) CreateBulk(builders ...*DecisionEventCreate) *DecisionEventCreateBulk {
	return &DecisionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DecisionEventClient) MapCreateBulk(slice any, setFunc func(*DecisionEventCreate, int)) *DecisionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DecisionEventCreateBulk{err: fmt.Errorf("calling to DecisionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DecisionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DecisionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DecisionEvent.
func (c *DecisionEventClient) Update() *DecisionEventUpdate {
	mutation := newDecisionEventMutation(c.config, OpUpdate)
	return &DecisionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DecisionEventClient) UpdateOne(_m *DecisionEvent) *DecisionEventUpdateOne {
	mutation := newDecisionEventMutation(c.config, OpUpdateOne, withDecisionEvent(_m))
	return &DecisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DecisionEventClient) UpdateOneID(id int) *DecisionEventUpdateOne {
	mutation := newDecisionEventMutation(c.config, OpUpdateOne, withDecisionEventID(id))
	return &DecisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DecisionEvent.
func (c *DecisionEventClient) Delete() *DecisionEventDelete {
	mutation := newDecisionEventMutation(c.config, OpDelete)
	return &DecisionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DecisionEventClient) DeleteOne(_m *DecisionEvent) *DecisionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DecisionEventClient) DeleteOneID(id int) *DecisionEventDeleteOne {
	builder := c.Delete().Where(decisionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DecisionEventDeleteOne{builder}
}

// Query returns a query builder for DecisionEvent.
func (c *DecisionEventClient) Query() *DecisionEventQuery {
	return &DecisionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDecisionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a DecisionEvent entity by its id.
func (c *DecisionEventClient) Get(ctx context.Context, id int) (*DecisionEvent, error) {
	return c.Query().Where(decisionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DecisionEventClient) GetX(ctx context.Context, id int) *DecisionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DecisionEventClient) Hooks() []Hook {
	return c.hooks.DecisionEvent
}

// Interceptors returns the client interceptors.
func (c *DecisionEventClient) Interceptors() []Interceptor {
	return c.inters.DecisionEvent
}

func (c *DecisionEventClient) mutate(ctx context.Context, m *DecisionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DecisionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DecisionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DecisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DecisionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DecisionEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MasteryEventClient is a client for the MasteryEvent schema.
type MasteryEventClient struct {
	config
}

// NewMasteryEventClient returns a client for the MasteryEvent from the given config.
func NewMasteryEventClient(c config) *MasteryEventClient {
	return &MasteryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryevent.Hooks(f(g(h())))`.
func (c *MasteryEventClient) Use(hooks ...Hook) {
	c.hooks.MasteryEvent = append(c.hooks.MasteryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryevent.Intercept(f(g(h())))`.
func (c *MasteryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryEvent = append(c.inters.MasteryEvent, interceptors...)
}

// Create returns a builder for creating a MasteryEvent entity.
func (c *MasteryEventClient) Create() *MasteryEventCreate {
	mutation := newMasteryEventMutation(c.config, OpCreate)
	return &MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryEvent entities.
func (c *MasteryEventClient) CreateBulk(builders ...*MasteryEventCreate) *MasteryEventCreateBulk {
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryEventClient) MapCreateBulk(slice any, setFunc func(*MasteryEventCreate, int)) *MasteryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryEventCreateBulk{err: fmt.Errorf("calling to MasteryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryEvent.
func (c *MasteryEventClient) Update() *MasteryEventUpdate {
	mutation := newMasteryEventMutation(c.config, OpUpdate)
	return &MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryEventClient) UpdateOne(_m *MasteryEvent) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEvent(_m))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryEventClient) UpdateOneID(id int) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEventID(id))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryEvent.
func (c *MasteryEventClient) Delete() *MasteryEventDelete {
	mutation := newMasteryEventMutation(c.config, OpDelete)
	return &MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryEventClient) DeleteOne(_m *MasteryEvent) *MasteryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryEventClient) DeleteOneID(id int) *MasteryEventDeleteOne {
	builder := c.Delete().Where(masteryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryEventDeleteOne{builder}
}

// Query returns a query builder for MasteryEvent.
func (c *MasteryEventClient) Query() *MasteryEventQuery {
	return &MasteryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryEvent entity by its id.
func (c *MasteryEventClient) Get(ctx context.Context, id int) (*MasteryEvent, error) {
	return c.Query().Where(masteryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryEventClient) GetX(ctx context.Context, id int) *MasteryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryEventClient) Hooks() []Hook {
	return c.hooks.MasteryEvent
}

// Interceptors returns the client interceptors.
func (c *MasteryEventClient) Interceptors() []Interceptor {
	return c.inters.MasteryEvent
}

func (c *MasteryEventClient) mutate(ctx context.Context, m *MasteryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryEvent mutation op: %q", m.Op())
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// SimulationEventClient is a client for the SimulationEvent schema.
type SimulationEventClient struct {
	config
}

// NewSimulationEventClient returns a client for the SimulationEvent from the given config.
func NewSimulationEventClient(c config) *SimulationEventClient {
	return &SimulationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `simulationevent.Hooks(f(g(h())))`.
func (c *SimulationEventClient) Use(hooks ...Hook) {
	c.hooks.SimulationEvent = append(c.hooks.SimulationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `simulationevent.Intercept(f(g(h())))`.
func (c *SimulationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SimulationEvent = append(c.inters.SimulationEvent, interceptors...)
}

// Create returns a builder for creating a SimulationEvent entity.
func (c *SimulationEventClient) Create() *SimulationEventCreate {
	mutation := newSimulationEventMutation(c.config, OpCreate)
	return &SimulationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SimulationEvent entities.
func (c *SimulationEventClient) CreateBulk(builders ...*SimulationEventCreate) *SimulationEventCreateBulk {
	return &SimulationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SimulationEventClient) MapCreateBulk(slice any, setFunc func(*SimulationEventCreate, int)) *SimulationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SimulationEventCreateBulk{err: fmt.Errorf("calling to SimulationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SimulationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SimulationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SimulationEvent.
func (c *SimulationEventClient) Update() *SimulationEventUpdate {
	mutation := newSimulationEventMutation(c.config, OpUpdate)
	return &SimulationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SimulationEventClient) UpdateOne(_m *SimulationEvent) *SimulationEventUpdateOne {
	mutation := newSimulationEventMutation(c.config, OpUpdateOne, withSimulationEvent(_m))
	return &SimulationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SimulationEventClient) UpdateOneID(id int) *SimulationEventUpdateOne {
	mutation := newSimulationEventMutation(c.config, OpUpdateOne, withSimulationEventID(id))
	return &SimulationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SimulationEvent.
func (c *SimulationEventClient) Delete() *SimulationEventDelete {
	mutation := newSimulationEventMutation(c.config, OpDelete)
	return &SimulationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SimulationEventClient) DeleteOne(_m *SimulationEvent) *SimulationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SimulationEventClient) DeleteOneID(id int) *SimulationEventDeleteOne {
	builder := c.Delete().Where(simulationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SimulationEventDeleteOne{builder}
}

// Query returns a query builder for SimulationEvent.
func (c *SimulationEventClient) Query() *SimulationEventQuery {
	return &SimulationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSimulationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SimulationEvent entity by its id.
func (c *SimulationEventClient) Get(ctx context.Context, id int) (*SimulationEvent, error) {
	return c.Query().Where(simulationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SimulationEventClient) GetX(ctx context.Context, id int) *SimulationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SimulationEventClient) Hooks() []Hook {
	return c.hooks.SimulationEvent
}

// Interceptors returns the client interceptors.
func (c *SimulationEventClient) Interceptors() []Interceptor {
	return c.inters.SimulationEvent
}

func (c *SimulationEventClient) mutate(ctx context.Context, m *SimulationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SimulationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SimulationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SimulationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SimulationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SimulationEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// XPEventClient is a client for the XPEvent schema.
type XPEventClient struct {
	config
}

// NewXPEventClient returns a client for the XPEvent from the given config.
func NewXPEventClient(c config) *XPEventClient {
	return &XPEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `xpevent.Hooks(f(g(h())))`.
func (c *XPEventClient) Use(hooks ...Hook) {
	c.hooks.XPEvent = append(c.hooks.XPEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `xpevent.Intercept(f(g(h())))`.
func (c *XPEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.XPEvent = append(c.inters.XPEvent, interceptors...)
}

// Create returns a builder for creating a XPEvent entity.
func (c *XPEventClient) Create() *XPEventCreate {
	mutation := newXPEventMutation(c.config, OpCreate)
	return &XPEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of XPEvent entities.
func (c *XPEventClient) CreateBulk(builders ...*XPEventCreate) *XPEventCreateBulk {
	return &XPEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *XPEventClient) MapCreateBulk(slice any, setFunc func(*XPEventCreate, int)) *XPEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &XPEventCreateBulk{err: fmt.Errorf("calling to XPEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*XPEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &XPEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for XPEvent.
func (c *XPEventClient) Update() *XPEventUpdate {
	mutation := newXPEventMutation(c.config, OpUpdate)
	return &XPEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *XPEventClient) UpdateOne(_m *XPEvent) *XPEventUpdateOne {
	mutation := newXPEventMutation(c.config, OpUpdateOne, withXPEvent(_m))
	return &XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *XPEventClient) UpdateOneID(id int) *XPEventUpdateOne {
	mutation := newXPEventMutation(c.config, OpUpdateOne, withXPEventID(id))
	return &XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for XPEvent.
func (c *XPEventClient) Delete() *XPEventDelete {
	mutation := newXPEventMutation(c.config, OpDelete)
	return &XPEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *XPEventClient) DeleteOne(_m *XPEvent) *XPEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *XPEventClient) DeleteOneID(id int) *XPEventDeleteOne {
	builder := c.Delete().Where(xpevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &XPEventDeleteOne{builder}
}

// Query returns a query builder for XPEvent.
func (c *XPEventClient) Query() *XPEventQuery {
	return &XPEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeXPEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a XPEvent entity by its id.
func (c *XPEventClient) Get(ctx context.Context, id int) (*XPEvent, error) {
	return c.Query().Where(xpevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *XPEventClient) GetX(ctx context.Context, id int) *XPEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *XPEventClient) Hooks() []Hook {
	return c.hooks.XPEvent
}

// Interceptors returns the client interceptors.
func (c *XPEventClient) Interceptors() []Interceptor {
	return c.inters.XPEvent
}

func (c *XPEventClient) mutate(ctx context.Context, m *XPEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&XPEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&XPEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&XPEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown XPEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AchievementEvent, DecisionEvent, LLMRequestEvent, MasteryEvent, ReviewEvent,
		SimulationEvent, Snapshot, XPEvent []ent.Hook
	}
	inters struct {
		AchievementEvent, DecisionEvent, LLMRequestEvent, MasteryEvent, ReviewEvent,
		SimulationEvent, Snapshot, XPEvent []ent.Interceptor
	}
)
