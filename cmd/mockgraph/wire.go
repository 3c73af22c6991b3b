//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"mockgraph/internal/app"
	"mockgraph/internal/config"
	"mockgraph/internal/domain"
	"mockgraph/internal/gql"
	"mockgraph/internal/http"
	"mockgraph/internal/http/controller"
	"mockgraph/internal/logging"
	"mockgraph/internal/metrics"
	"mockgraph/internal/queue"
	"mockgraph/internal/queue/rabbitmq"
	"mockgraph/internal/service/cars"
	"mockgraph/internal/service/notify"
	"mockgraph/internal/service/users"
	"mockgraph/internal/sse"
	"mockgraph/internal/store"
)

var commonSet = wire.NewSet(
	config.New,
	logging.New,
	metrics.New,
	sse.NewHub,
	rabbitmq.NewPublisher,
	notify.NewService,
	controller.NewHandler,
	http.NewRouter,
	rabbitmq.NewConsumer,
	app.NewApp,
)

func InitializeCarsApp(flags config.Flags) (*app.App, error) {
	wire.Build(
		commonSet,
		wire.Value(domain.KindCars),
		store.NewCarRepository,
		cars.NewService,
		wire.Bind(new(cars.Notifier), new(*notify.Service)),
		wire.Bind(new(gql.CarService), new(*cars.Service)),
		wire.Bind(new(queue.CommandHandler), new(*cars.Service)),
		gql.NewCarSchema,
		controller.CarListing,
	)
	return &app.App{}, nil
}

func InitializeUsersApp(flags config.Flags) (*app.App, error) {
	wire.Build(
		commonSet,
		wire.Value(domain.KindUsers),
		store.NewUserRepository,
		users.NewService,
		wire.Bind(new(users.Notifier), new(*notify.Service)),
		wire.Bind(new(gql.UserService), new(*users.Service)),
		wire.Bind(new(queue.CommandHandler), new(*users.Service)),
		gql.NewUserSchema,
		controller.UserListing,
	)
	return &app.App{}, nil
}
