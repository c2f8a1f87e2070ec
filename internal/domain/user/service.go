package user

import (
	"context"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdatePermissions(ctx context.Context, username string, permissions map[string]string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) Get(ctx context.Context, username string) (User, error) {
	return s.repo.Find(ctx, username)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdatePermissions(ctx context.Context, username string, permissions map[string]string) error {
	err := s.repo.UpdatePermissions(ctx, username, permissions)
	if err != nil {
		s.log.Error("update permissions failed", "username", username, "error", err)
		return err
	}
	s.log.Info("permissions updated", "username", username)
	return nil
}
