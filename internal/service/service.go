package service

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"petshop/catalog/internal/client"
	"petshop/catalog/internal/domain"
	"petshop/catalog/internal/journal"
	"petshop/catalog/internal/state"
	"petshop/catalog/internal/store"
)

const (
	ResourceCategories = "categories"
	ResourceSizes      = "sizes"
)

var ErrJournalDisabled = errors.New("mutation journal is disabled, enable redis to use it")

// Service ties the list controllers to the optional Redis-backed view state
// and journal.
type Service struct {
	categoryAPI  *client.CategoryAPI
	sizeAPI      *client.SizeAPI
	validator    store.Validator
	stateManager state.StateManager // nil when redis is disabled
	journal      journal.Journal    // nil when redis is disabled
	pageSize     int

	Categories *store.Controller[domain.Category, domain.CategoryDraft]
	Sizes      *store.SizeController
}

func NewService(
	categoryAPI *client.CategoryAPI,
	sizeAPI *client.SizeAPI,
	validator store.Validator,
	stateManager state.StateManager,
	journal journal.Journal,
	confirmer store.Confirmer,
	pageSize int,
) *Service {
	opts := []store.Option{
		store.WithConfirmer(confirmer),
		store.WithPageSize(pageSize),
	}
	if journal != nil {
		opts = append(opts, store.WithRecorder(journal))
	}

	return &Service{
		categoryAPI:  categoryAPI,
		sizeAPI:      sizeAPI,
		validator:    validator,
		stateManager: stateManager,
		journal:      journal,
		pageSize:     pageSize,
		Categories:   store.NewCategoryController(categoryAPI, validator, opts...),
		Sizes:        store.NewSizeController(sizeAPI, validator, opts...),
	}
}

// LastQuery returns the query the resource was last listed with, or the
// default first page when nothing was saved.
func (s *Service) LastQuery(ctx context.Context, resource string) domain.ListQuery {
	fallback := domain.ListQuery{Page: 1, PageSize: s.pageSize}
	if s.stateManager == nil {
		return fallback
	}

	q, err := s.stateManager.GetLastQuery(ctx, resource)
	if err != nil {
		log.Errorf("❌ Failed to restore %s view: %v", resource, err)
		return fallback
	}
	if q == nil {
		return fallback
	}

	log.Debugf("🔄 Resuming %s from page %d", resource, q.Page)
	return *q
}

// RememberQuery saves q so the next listing resumes from it.
func (s *Service) RememberQuery(ctx context.Context, resource string, q domain.ListQuery) {
	if s.stateManager == nil {
		return
	}
	if err := s.stateManager.SetLastQuery(ctx, resource, q); err != nil {
		log.Errorf("❌ Failed to save %s view: %v", resource, err)
	}
}

// Overview is the pair of active-only lists used by selection widgets.
type Overview struct {
	Categories []domain.Category
	Sizes      []domain.Size
}

// Overview loads the active categories and sizes concurrently, each through
// its own active-only controller.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	active := domain.ListQuery{ActiveOnly: true}
	categories := store.NewCategoryController(s.categoryAPI, s.validator, store.WithQuery(active))
	sizes := store.NewSizeController(s.sizeAPI, s.validator, store.WithQuery(active))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := categories.Load(gctx); err != nil {
			return fmt.Errorf("failed to load active categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := sizes.Load(gctx); err != nil {
			return fmt.Errorf("failed to load active sizes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{
		Categories: categories.Snapshot().Items,
		Sizes:      sizes.Snapshot().Items,
	}, nil
}

func (s *Service) Category(ctx context.Context, id domain.ID) (domain.Category, error) {
	return decode[domain.Category](s.categoryAPI.Get(ctx, id))
}

func (s *Service) CategoryProducts(ctx context.Context, id domain.ID) ([]domain.Product, error) {
	res := s.categoryAPI.Products(ctx, id)
	if res.OK() && !res.HasData() {
		return []domain.Product{}, nil
	}
	return decode[[]domain.Product](res)
}

func (s *Service) Size(ctx context.Context, id domain.ID) (domain.Size, error) {
	return decode[domain.Size](s.sizeAPI.Get(ctx, id))
}

// History returns up to count journal entries, newest first.
func (s *Service) History(ctx context.Context, count int64) ([]journal.Entry, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	return s.journal.Recent(ctx, count)
}

func decode[T any](res client.Result) (T, error) {
	if !res.OK() {
		var zero T
		return zero, errors.New(res.Message)
	}
	return client.Decode[T](res)
}
