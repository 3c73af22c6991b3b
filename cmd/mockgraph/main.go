package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"mockgraph/internal/app"
	"mockgraph/internal/config"
	"mockgraph/internal/domain"
)

type initializer func(config.Flags) (*app.App, error)

func main() {
	if err := newRootCmd(InitializeCarsApp, InitializeUsersApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(carsApp, usersApp initializer) *cobra.Command {
	root := &cobra.Command{
		Use:           "mockgraph",
		Short:         "Mock GraphQL and REST servers over fixture data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		flags    config.Flags
		graphiql bool
	)
	pf := root.PersistentFlags()
	pf.StringVar(&flags.Addr, "addr", "", "listen address (overrides HTTP_ADDR and PORT)")
	pf.StringVar(&flags.FixturePath, "fixture", "", "JSON fixture file (overrides FIXTURE_PATH)")
	pf.BoolVar(&graphiql, "graphiql", true, "serve the GraphiQL console on browser GET /graphql")

	resolve := func(fs *pflag.FlagSet) config.Flags {
		out := flags
		if fs.Changed("graphiql") {
			v := graphiql
			out.GraphiQL = &v
		}
		return out
	}

	deployments := map[domain.Kind]initializer{
		domain.KindCars:  carsApp,
		domain.KindUsers: usersApp,
	}
	start := func(cmd *cobra.Command, kind domain.Kind) error {
		a, err := deployments[kind](resolve(cmd.Flags()))
		if err != nil {
			return fmt.Errorf("init %s: %w", kind, err)
		}
		return serve(cmd.Context(), a)
	}

	root.AddCommand(
		kindCmd(domain.KindCars, "Serve the car inventory API", start),
		kindCmd(domain.KindUsers, "Serve the user directory API", start),
		&cobra.Command{
			Use:   "serve <cars|users>",
			Short: "Serve the deployment named by the argument",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, err := domain.ParseKind(args[0])
				if err != nil {
					return err
				}
				return start(cmd, kind)
			},
		},
	)
	return root
}

func kindCmd(kind domain.Kind, short string, start func(*cobra.Command, domain.Kind) error) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return start(cmd, kind)
		},
	}
}

func serve(parent context.Context, a *app.App) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := a.Logger()
	defer func() {
		_ = logger.Sync()
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- a.Run(ctx)
		stop()
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	if err := <-runErr; err != nil {
		logger.Error("app stopped", zap.Error(err))
		return err
	}
	return nil
}
