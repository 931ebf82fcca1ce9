package video

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Video, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, v Video) (int64, error) {
	return s.repo.Create(ctx, v)
}

func (s *Service) Update(ctx context.Context, v Video) error {
	return s.repo.Update(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
