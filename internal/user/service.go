package user

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the supplied fields and inserts a new user.
func (s *Service) Create(ctx context.Context, in Input) (User, error) {
	user, err := NewDraft(in).Build()
	if err != nil {
		return User{}, err
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return User{}, err
	}

	s.logger.InfoContext(ctx, "user created", "user_id", created.ID)
	return created, nil
}

// Update merges in over the user with the given id and inserts the result as
// a new row. The existing row is left as it was, so both remain retrievable.
func (s *Service) Update(ctx context.Context, id int, in Input) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.Params == 0 {
		return User{}, ErrInvalidInput
	}

	user, err := Merge(current, in).Build()
	if err != nil {
		return User{}, err
	}

	updated, err := s.repo.Insert(ctx, user)
	if err != nil {
		return User{}, err
	}

	s.logger.InfoContext(ctx, "user updated", "user_id", id, "new_user_id", updated.ID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}
