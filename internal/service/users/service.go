package users

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"mockgraph/internal/domain"
	"mockgraph/internal/model"
	"mockgraph/internal/repository"
)

type Notifier interface {
	Created(ctx context.Context, id int32, record any)
}

type Service struct {
	store    repository.Repository[model.User]
	notifier Notifier
	log      *zap.Logger
}

func NewService(store repository.Repository[model.User], notifier Notifier, logger *zap.Logger) *Service {
	return &Service{store: store, notifier: notifier, log: logger}
}

func (s *Service) GetAll(ctx context.Context, id *int32) ([]model.User, error) {
	all, err := s.list(ctx)
	if err != nil || id == nil {
		return all, err
	}
	return repository.Filter(all, func(u model.User) bool { return u.ID == *id }), nil
}

func (s *Service) FindByID(ctx context.Context, id *int32) (*model.User, error) {
	if id == nil {
		return nil, nil
	}
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return repository.Find(all, func(u model.User) bool { return u.ID == *id }), nil
}

// FindByEmail returns the first user registered with email.
func (s *Service) FindByEmail(ctx context.Context, email *string) (*model.User, error) {
	if email == nil {
		return nil, nil
	}
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return repository.Find(all, func(u model.User) bool { return u.Email != nil && *u.Email == *email }), nil
}

// Create stores the user and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, input model.UserInput) (model.User, error) {
	created, err := s.store.Append(ctx, func(id int32) model.User {
		return model.User{
			ID:        id,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Password:  input.Password,
		}
	})
	if err != nil {
		s.log.Error("store append user failed", zap.Stringp("email", input.Email), zap.Error(err))
		return model.User{}, err
	}
	s.notifier.Created(ctx, created.ID, created)
	return created, nil
}

func (s *Service) HandleCreate(ctx context.Context, body []byte) error {
	var input model.UserInput
	if err := json.Unmarshal(body, &input); err != nil {
		return fmt.Errorf("decode user command: %w: %v", domain.ErrInvalidPayload, err)
	}
	_, err := s.Create(ctx, input)
	return err
}

func (s *Service) list(ctx context.Context) ([]model.User, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		s.log.Error("store list users failed", zap.Error(err))
		return nil, err
	}
	return all, nil
}
