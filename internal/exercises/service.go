package exercises

import (
	"context"
)

// Service serves the exercise catalog through the read-through cache.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService builds a Service instance.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns catalog entries matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Exercise, error) {
	var list []Exercise
	err := s.cache.FetchJSON(ctx, keyList(filter), &list, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Exercise{}
	}
	return list, nil
}

// Get returns one catalog entry by id.
func (s *Service) Get(ctx context.Context, id string) (*Exercise, error) {
	var exercise Exercise
	err := s.cache.FetchJSON(ctx, keyGet(id), &exercise, func(ctx context.Context) (any, error) {
		return s.repo.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}
