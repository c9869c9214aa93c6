package services

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"tiew/internal/models/response_models"
)

// Refresher lets the retry endpoint address feeds without knowing their item type.
type Refresher interface {
	Category() string
	ClearError()
	Refresh(ctx context.Context) error
}

// FeedService is the contract shared by every content category: a trigger that
// re-runs the whole fetch pipeline, a state snapshot and an error reset.
type FeedService[T any] interface {
	Refresher
	Fetch(ctx context.Context) ([]T, error)
	State() response_models.FeedState[T]
}

type loadFunc[T any] func(ctx context.Context) ([]T, error)

// Feed owns the state of one category. Fetch failures keep the previous data.
// When fetches overlap, only the most recently started one writes the state.
type Feed[T any] struct {
	mu       sync.RWMutex
	gen      uint64
	category string
	fallback string
	status   response_models.FeedStatus
	data     []T
	err      *string
	load     loadFunc[T]
	log      *zap.Logger
}

func NewFeed[T any](category, fallback string, load loadFunc[T], log *zap.Logger) *Feed[T] {
	return &Feed[T]{
		category: category,
		fallback: fallback,
		status:   response_models.FeedIdle,
		load:     load,
		log:      log,
	}
}

func (f *Feed[T]) Category() string { return f.category }

func (f *Feed[T]) Fetch(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.err = nil
	f.status = response_models.FeedLoading
	f.mu.Unlock()

	// the fetch outlives a disconnected caller; its result lands in shared state
	data, err := f.load(context.WithoutCancel(ctx))

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		f.log.Debug("superseded feed fetch discarded", zap.String("category", f.category), zap.Error(err))
		return data, err
	}

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = f.fallback
		}
		f.err = &msg
		f.status = response_models.FeedError
		f.log.Warn("feed fetch failed", zap.String("category", f.category), zap.Error(err))
		return nil, err
	}

	f.data = data
	f.status = response_models.FeedSuccess
	return data, nil
}

func (f *Feed[T]) Refresh(ctx context.Context) error {
	_, err := f.Fetch(ctx)
	return err
}

func (f *Feed[T]) State() response_models.FeedState[T] {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data := make([]T, len(f.data))
	copy(data, f.data)

	var errMsg *string
	if f.err != nil {
		msg := *f.err
		errMsg = &msg
	}

	return response_models.FeedState[T]{
		Status:  f.status,
		Data:    data,
		Loading: f.status == response_models.FeedLoading,
		Error:   errMsg,
	}
}

func (f *Feed[T]) ClearError() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != response_models.FeedError {
		return
	}
	f.err = nil
	if f.data != nil {
		f.status = response_models.FeedSuccess
	} else {
		f.status = response_models.FeedIdle
	}
}
