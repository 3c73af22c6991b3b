package cars

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"mockgraph/internal/domain"
	"mockgraph/internal/model"
	"mockgraph/internal/repository"
)

// Notifier is told about every car appended to the store.
type Notifier interface {
	Created(ctx context.Context, id int32, record any)
}

type Service struct {
	store    repository.Repository[model.Car]
	notifier Notifier
	log      *zap.Logger
}

func NewService(store repository.Repository[model.Car], notifier Notifier, logger *zap.Logger) *Service {
	return &Service{store: store, notifier: notifier, log: logger}
}

// GetAll returns every car, or only those carrying id when id is set.
func (s *Service) GetAll(ctx context.Context, id *int32) ([]model.Car, error) {
	all, err := s.list(ctx)
	if err != nil || id == nil {
		return all, err
	}
	return repository.Filter(all, func(c model.Car) bool { return c.ID == *id }), nil
}

func (s *Service) FindByID(ctx context.Context, id *int32) (*model.Car, error) {
	if id == nil {
		return nil, nil
	}
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return repository.Find(all, func(c model.Car) bool { return c.ID == *id }), nil
}

func (s *Service) FindByMake(ctx context.Context, carMake *string) ([]model.Car, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if carMake == nil {
		return []model.Car{}, nil
	}
	return repository.Filter(all, func(c model.Car) bool { return c.Make != nil && *c.Make == *carMake }), nil
}

func (s *Service) FindByModel(ctx context.Context, name *string) (*model.Car, error) {
	if name == nil {
		return nil, nil
	}
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return repository.Find(all, func(c model.Car) bool { return c.Model != nil && *c.Model == *name }), nil
}

func (s *Service) Create(ctx context.Context, input model.CarInput) (model.Car, error) {
	created, err := s.store.Append(ctx, func(id int32) model.Car {
		return model.Car{
			ID:    id,
			Make:  input.Make,
			Model: input.Model,
			Year:  input.Year,
			Color: input.Color,
			Price: input.Price,
		}
	})
	if err != nil {
		s.log.Error("store append car failed",
			zap.Stringp("make", input.Make),
			zap.Stringp("model", input.Model),
			zap.Error(err),
		)
		return model.Car{}, err
	}
	s.notifier.Created(ctx, created.ID, created)
	return created, nil
}

// HandleCreate decodes a create command delivered by the broker.
func (s *Service) HandleCreate(ctx context.Context, body []byte) error {
	var input model.CarInput
	if err := json.Unmarshal(body, &input); err != nil {
		return fmt.Errorf("decode car command: %w: %v", domain.ErrInvalidPayload, err)
	}
	_, err := s.Create(ctx, input)
	return err
}

func (s *Service) list(ctx context.Context) ([]model.Car, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		s.log.Error("store list cars failed", zap.Error(err))
		return nil, err
	}
	return all, nil
}
