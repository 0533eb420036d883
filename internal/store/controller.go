// Package store keeps client-side list state for catalog resources in sync
// with the server. The server is the single source of truth: every successful
// mutation is followed by a full reload, never a local patch.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"petshop/catalog/internal/client"
	"petshop/catalog/internal/domain"
	"petshop/catalog/internal/journal"
	"petshop/catalog/internal/validation"
)

const DefaultPageSize = 10

var (
	// ErrStaleResponse is returned by Load when a newer load was issued
	// before this one resolved. The stale response is dropped.
	ErrStaleResponse = errors.New("response superseded by a newer load")

	ErrConfirmationDeclined = errors.New("deletion was not confirmed")
)

// Validator checks a draft before it is submitted.
type Validator interface {
	Validate(draft any) validation.FieldErrors
}

// Recorder receives one event per successful mutation.
type Recorder interface {
	Record(ctx context.Context, event journal.Event) (string, error)
}

type options struct {
	confirmer Confirmer
	recorder  Recorder
	pageSize  int
	query     *domain.ListQuery
}

type Option func(*options)

func WithConfirmer(c Confirmer) Option {
	return func(o *options) { o.confirmer = c }
}

func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithPageSize sets the page size used when a query does not carry one.
func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = n }
}

// WithQuery sets the initial query, e.g. one restored from a previous session.
func WithQuery(q domain.ListQuery) Option {
	return func(o *options) { o.query = &q }
}

// observer delivers snapshots to one subscriber, one at a time and in version
// order. A snapshot older than one already delivered or queued is dropped, and
// only the newest queued snapshot is kept while a delivery is in progress.
type observer[T any] struct {
	id int
	fn func(State[T])

	mu       sync.Mutex
	draining bool
	last     uint64
	pending  *State[T]
	pendingV uint64
}

func (o *observer[T]) deliver(version uint64, snap State[T]) {
	o.mu.Lock()
	if version <= o.last || version <= o.pendingV {
		o.mu.Unlock()
		return
	}
	o.pending, o.pendingV = &snap, version
	if o.draining {
		// The goroutine already delivering picks it up.
		o.mu.Unlock()
		return
	}

	o.draining = true
	for o.pending != nil {
		next := *o.pending
		o.last, o.pending = o.pendingV, nil
		o.mu.Unlock()
		o.fn(next)
		o.mu.Lock()
	}
	o.draining = false
	o.mu.Unlock()
}

// Controller owns the list, busy flag, messages, pagination and filters of
// one resource. It is safe for concurrent use; network calls never hold the
// lock.
type Controller[T any, D any] struct {
	resource  Resource[T, D]
	validator Validator
	confirmer Confirmer
	recorder  Recorder
	pageSize  int

	mu        sync.Mutex
	state     State[T]
	inflight  int
	seq       uint64
	version   uint64
	nextObsID int
	observers []*observer[T]
}

func NewController[T any, D any](resource Resource[T, D], validator Validator, opts ...Option) *Controller[T, D] {
	o := options{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pageSize < 1 {
		o.pageSize = DefaultPageSize
	}

	c := &Controller[T, D]{
		resource:  resource,
		validator: validator,
		confirmer: o.confirmer,
		recorder:  o.recorder,
		pageSize:  o.pageSize,
	}

	query := domain.ListQuery{Page: 1, PageSize: o.pageSize}
	if o.query != nil {
		query = *o.query
	}
	c.state.Query = c.normalize(query)
	c.state.TotalPages = 1

	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller[T, D]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Query returns the current list query.
func (c *Controller[T, D]) Query() domain.ListQuery {
	return c.Snapshot().Query
}

// Subscribe registers fn to receive a snapshot after every state transition.
// The returned function removes the subscription.
func (c *Controller[T, D]) Subscribe(fn func(State[T])) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextObsID++
	id := c.nextObsID
	c.observers = append(c.observers, &observer[T]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// update applies fn under the lock and notifies observers outside it. Each
// snapshot is versioned in the same critical section, so observers never end
// on an older state than the controller holds.
func (c *Controller[T, D]) update(fn func()) {
	c.mu.Lock()
	fn()
	c.state.Loading = c.inflight > 0
	c.version++
	version := c.version
	snap := c.state.clone()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o.deliver(version, snap.clone())
	}
}

// Load fetches the list for the current query. Only the most recently issued
// load may change the list; earlier ones resolve with ErrStaleResponse.
// Failures are stored in the Error field and returned; items are kept.
func (c *Controller[T, D]) Load(ctx context.Context) error {
	var (
		seq   uint64
		query domain.ListQuery
	)
	c.update(func() {
		c.seq++
		seq = c.seq
		query = c.state.Query
		c.inflight++
		c.state.Error = ""
	})

	log.Debugf("Loading %s (#%d) page %d", c.resource.Name(), seq, query.Page)
	res := c.resource.Fetch(ctx, query)

	var err error
	c.update(func() {
		c.inflight--
		if seq != c.seq {
			err = ErrStaleResponse
			return
		}
		err = c.apply(res)
	})

	if errors.Is(err, ErrStaleResponse) {
		log.Debugf("Dropped stale %s response #%d", c.resource.Name(), seq)
	}
	return err
}

// apply replaces the list with a fetched result. Callers hold the lock.
func (c *Controller[T, D]) apply(res client.Result) error {
	if !res.OK() {
		c.state.Error = res.Message
		return errors.New(res.Message)
	}

	var items []T
	if res.HasData() {
		decoded, err := client.Decode[[]T](res)
		if err != nil {
			log.Warnf("Failed to decode %s list: %v", c.resource.Name(), err)
			c.state.Error = fmt.Sprintf("Unable to load %s", c.resource.Name())
			return err
		}
		items = decoded
	}
	if items == nil {
		items = []T{}
	}
	c.resource.Arrange(items)

	meta := domain.Metadata{
		TotalElements: int64(len(items)),
		TotalPages:    1,
		PageSize:      len(items),
	}
	if res.Metadata != nil {
		meta = *res.Metadata
	}

	c.state.Items = items
	c.state.Metadata = meta
	c.state.TotalPages = max(meta.TotalPages, 1)
	return nil
}

func (c *Controller[T, D]) normalize(q domain.ListQuery) domain.ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = c.pageSize
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// SetQuery replaces the whole query and issues one load.
func (c *Controller[T, D]) SetQuery(ctx context.Context, q domain.ListQuery) error {
	c.update(func() {
		c.state.Query = c.normalize(q)
	})
	return c.Load(ctx)
}

func (c *Controller[T, D]) modifyQuery(ctx context.Context, fn func(q *domain.ListQuery)) error {
	c.update(func() {
		q := c.state.Query
		fn(&q)
		c.state.Query = c.normalize(q)
	})
	return c.Load(ctx)
}

// SetPage moves to a 1-based page.
func (c *Controller[T, D]) SetPage(ctx context.Context, page int) error {
	return c.modifyQuery(ctx, func(q *domain.ListQuery) { q.Page = page })
}

func (c *Controller[T, D]) SetPageSize(ctx context.Context, size int) error {
	return c.modifyQuery(ctx, func(q *domain.ListQuery) {
		q.PageSize = size
		q.Page = 1
	})
}

func (c *Controller[T, D]) SetSearch(ctx context.Context, search string) error {
	return c.modifyQuery(ctx, func(q *domain.ListQuery) {
		q.Search = search
		q.Page = 1
	})
}

// SetStatusFilter narrows the list to active (true) or inactive (false)
// entities; nil removes the filter.
func (c *Controller[T, D]) SetStatusFilter(ctx context.Context, status *bool) error {
	return c.modifyQuery(ctx, func(q *domain.ListQuery) {
		q.Status = status
		q.Page = 1
	})
}

func (c *Controller[T, D]) SetUnitFilter(ctx context.Context, unit domain.Unit) error {
	return c.modifyQuery(ctx, func(q *domain.ListQuery) {
		q.Unit = unit
		q.Page = 1
	})
}

// SetActiveOnly switches to the unpaginated active-only view.
func (c *Controller[T, D]) SetActiveOnly(ctx context.Context, activeOnly bool) error {
	return c.modifyQuery(ctx, func(q *domain.ListQuery) {
		q.ActiveOnly = activeOnly
		q.Page = 1
	})
}

// ReportError lets the caller surface a mutation failure in the view.
func (c *Controller[T, D]) ReportError(message string) {
	c.update(func() {
		c.state.Error = message
	})
}

// ClearMessages dismisses the error and success texts.
func (c *Controller[T, D]) ClearMessages() {
	c.update(func() {
		c.state.Error = ""
		c.state.Success = ""
	})
}

func (c *Controller[T, D]) Create(ctx context.Context, draft D) MutationResult[T] {
	if errs := c.validator.Validate(draft); !errs.OK() {
		return invalid[T](errs)
	}
	res := c.mutate(ctx, "create", 0, nil, func(ctx context.Context) client.Result {
		return c.resource.Create(ctx, draft)
	})
	return c.result(res)
}

func (c *Controller[T, D]) Update(ctx context.Context, id domain.ID, draft D) MutationResult[T] {
	if errs := c.validator.Validate(draft); !errs.OK() {
		return invalid[T](errs)
	}
	res := c.mutate(ctx, "update", id, nil, func(ctx context.Context) client.Result {
		return c.resource.Update(ctx, id, draft)
	})
	return c.result(res)
}

// Delete removes an entity after the Confirmer approves. Without a Confirmer
// nothing is deleted.
func (c *Controller[T, D]) Delete(ctx context.Context, id domain.ID) MutationResult[T] {
	prompt := fmt.Sprintf("Delete %s #%s? This cannot be undone.", c.resource.Noun(), id)
	if c.confirmer == nil || !c.confirmer.Confirm(ctx, prompt) {
		log.Infof("Deletion of %s #%s not confirmed", c.resource.Noun(), id)
		return MutationResult[T]{Outcome: OutcomeCancelled, Error: ErrConfirmationDeclined.Error()}
	}

	res := c.mutate(ctx, "delete", id, nil, func(ctx context.Context) client.Result {
		return c.resource.Delete(ctx, id)
	})
	return c.result(res)
}

// ToggleStatus flips an entity between active and inactive.
func (c *Controller[T, D]) ToggleStatus(ctx context.Context, id domain.ID) MutationResult[T] {
	res := c.mutate(ctx, "toggle", id, nil, func(ctx context.Context) client.Result {
		return c.resource.ToggleStatus(ctx, id)
	})
	return c.result(res)
}

// mutate runs one mutating call with the busy flag held. On success it
// reloads exactly once before returning, then records the success text and a
// journal event. Failures leave the state untouched.
func (c *Controller[T, D]) mutate(ctx context.Context, action string, id domain.ID, ids []domain.ID, call func(context.Context) client.Result) client.Result {
	c.update(func() {
		c.inflight++
		c.state.Success = ""
	})
	defer c.update(func() {
		c.inflight--
	})

	res := call(ctx)
	if !res.OK() {
		log.Warnf("Failed to %s %s: %s", action, c.resource.Noun(), res.Message)
		return res
	}

	if err := c.Load(ctx); err != nil && !errors.Is(err, ErrStaleResponse) {
		log.Warnf("Reload of %s after %s failed: %v", c.resource.Name(), action, err)
	}

	message := res.Message
	if message == "" {
		message = fallbackSuccess(c.resource.Noun(), action)
	}
	c.update(func() {
		c.state.Success = message
	})

	c.record(ctx, journal.Event{
		Resource: c.resource.Name(),
		Action:   action,
		EntityID: id,
		IDs:      ids,
		Message:  message,
		At:       time.Now().UTC(),
	})

	res.Message = message
	return res
}

func (c *Controller[T, D]) record(ctx context.Context, event journal.Event) {
	if c.recorder == nil {
		return
	}
	if _, err := c.recorder.Record(ctx, event); err != nil {
		log.Errorf("❌ Failed to journal %s: %v", event.EventType(), err)
	}
}

func (c *Controller[T, D]) result(res client.Result) MutationResult[T] {
	switch res.Kind {
	case client.KindOK:
		out := MutationResult[T]{Outcome: OutcomeOK, Message: res.Message}
		if res.HasData() {
			data, err := client.Decode[T](res)
			if err != nil {
				log.Warnf("Failed to decode %s in mutation response: %v", c.resource.Noun(), err)
			} else {
				out.Data = data
			}
		}
		return out
	case client.KindBusiness:
		return MutationResult[T]{Outcome: OutcomeBusiness, Error: res.Message}
	default:
		return MutationResult[T]{Outcome: OutcomeNetwork, Error: res.Message}
	}
}

func invalid[T any](errs validation.FieldErrors) MutationResult[T] {
	return MutationResult[T]{
		Outcome:     OutcomeInvalid,
		Error:       errs.Error(),
		FieldErrors: errs,
	}
}

// fallbackSuccess is used when the server confirms a mutation without a message.
func fallbackSuccess(noun, action string) string {
	switch action {
	case "create":
		return fmt.Sprintf("Created %s", noun)
	case "update":
		return fmt.Sprintf("Updated %s", noun)
	case "delete":
		return fmt.Sprintf("Deleted %s", noun)
	case "toggle":
		return fmt.Sprintf("Changed %s status", noun)
	case "reorder":
		return fmt.Sprintf("Saved %s order", noun)
	default:
		return "Done"
	}
}
