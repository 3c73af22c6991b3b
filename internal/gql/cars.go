package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/model"
)

type CarService interface {
	GetAll(ctx context.Context, id *int32) ([]model.Car, error)
	FindByID(ctx context.Context, id *int32) (*model.Car, error)
	FindByMake(ctx context.Context, carMake *string) ([]model.Car, error)
	FindByModel(ctx context.Context, name *string) (*model.Car, error)
	Create(ctx context.Context, input model.CarInput) (model.Car, error)
}

func NewCarSchema(cfg *config.Config, svc CarService, logger *zap.Logger) (*graphql.Schema, error) {
	return parse("cars.graphql", &CarResolver{svc: svc}, cfg, logger)
}

// CarResolver is the root resolver of the cars schema.
type CarResolver struct {
	svc CarService
}

func (r *CarResolver) GetAllCars(ctx context.Context, args struct{ ID *int32 }) ([]*carResolver, error) {
	cars, err := r.svc.GetAll(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	return carList(cars), nil
}

func (r *CarResolver) FindCarByID(ctx context.Context, args struct{ ID *int32 }) (*carResolver, error) {
	car, err := r.svc.FindByID(ctx, args.ID)
	return carOrNil(car), err
}

func (r *CarResolver) FindCarByMake(ctx context.Context, args struct{ Make *string }) ([]*carResolver, error) {
	cars, err := r.svc.FindByMake(ctx, args.Make)
	if err != nil {
		return nil, err
	}
	return carList(cars), nil
}

func (r *CarResolver) FindCarByModel(ctx context.Context, args struct{ Model *string }) (*carResolver, error) {
	car, err := r.svc.FindByModel(ctx, args.Model)
	return carOrNil(car), err
}

func (r *CarResolver) CreateCar(ctx context.Context, args model.CarInput) (*carResolver, error) {
	car, err := r.svc.Create(ctx, args)
	if err != nil {
		return nil, err
	}
	return &carResolver{car: car}, nil
}

type carResolver struct {
	car model.Car
}

func (c *carResolver) ID() int32      { return c.car.ID }
func (c *carResolver) Make() *string  { return c.car.Make }
func (c *carResolver) Model() *string { return c.car.Model }
func (c *carResolver) Year() *int32   { return c.car.Year }
func (c *carResolver) Color() *string { return c.car.Color }
func (c *carResolver) Price() *int32  { return c.car.Price }

func carList(cars []model.Car) []*carResolver {
	result := make([]*carResolver, len(cars))
	for i := range cars {
		result[i] = &carResolver{car: cars[i]}
	}
	return result
}

func carOrNil(car *model.Car) *carResolver {
	if car == nil {
		return nil
	}
	return &carResolver{car: *car}
}
