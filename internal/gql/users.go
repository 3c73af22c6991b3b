package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/model"
)

type UserService interface {
	GetAll(ctx context.Context, id *int32) ([]model.User, error)
	FindByID(ctx context.Context, id *int32) (*model.User, error)
	FindByEmail(ctx context.Context, email *string) (*model.User, error)
	Create(ctx context.Context, input model.UserInput) (model.User, error)
}

func NewUserSchema(cfg *config.Config, svc UserService, logger *zap.Logger) (*graphql.Schema, error) {
	return parse("users.graphql", &UserResolver{svc: svc}, cfg, logger)
}

// UserResolver is the root resolver of the users schema.
type UserResolver struct {
	svc UserService
}

func (r *UserResolver) GetAllUsers(ctx context.Context, args struct{ ID *int32 }) ([]*userResolver, error) {
	users, err := r.svc.GetAll(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	result := make([]*userResolver, len(users))
	for i := range users {
		result[i] = &userResolver{user: users[i]}
	}
	return result, nil
}

func (r *UserResolver) FindUserByID(ctx context.Context, args struct{ ID *int32 }) (*userResolver, error) {
	user, err := r.svc.FindByID(ctx, args.ID)
	if err != nil || user == nil {
		return nil, err
	}
	return &userResolver{user: *user}, nil
}

func (r *UserResolver) FindUserByEmail(ctx context.Context, args struct{ Email *string }) (*userResolver, error) {
	user, err := r.svc.FindByEmail(ctx, args.Email)
	if err != nil || user == nil {
		return nil, err
	}
	return &userResolver{user: *user}, nil
}

func (r *UserResolver) CreateUser(ctx context.Context, args model.UserInput) (*userResolver, error) {
	user, err := r.svc.Create(ctx, args)
	if err != nil {
		return nil, err
	}
	return &userResolver{user: user}, nil
}

type userResolver struct {
	user model.User
}

func (u *userResolver) ID() int32          { return u.user.ID }
func (u *userResolver) FirstName() *string { return u.user.FirstName }
func (u *userResolver) LastName() *string  { return u.user.LastName }
func (u *userResolver) Email() *string     { return u.user.Email }
func (u *userResolver) Password() *string  { return u.user.Password }
