// Package gql binds the query and mutation services to GraphQL schemas.
package gql

import (
	"context"
	"embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
	"mockgraph/internal/config"
)

//go:embed schema/*.graphql
var schemas embed.FS

// panicLogger routes resolver panics to zap instead of the standard logger.
type panicLogger struct {
	log *zap.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error("graphql resolver panic", zap.Any("error", value))
}

// parse validates the SDL in file against resolver. Any mismatch between the
// schema and the resolver methods is reported here, at startup.
func parse(file string, resolver any, cfg *config.Config, logger *zap.Logger) (*graphql.Schema, error) {
	sdl, err := schemas.ReadFile("schema/" + file)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", file, err)
	}
	opts := []graphql.SchemaOpt{
		graphql.Logger(panicLogger{log: logger}),
	}
	if cfg.GraphQLMaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.GraphQLMaxDepth))
	}
	schema, err := graphql.ParseSchema(string(sdl), resolver, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", file, err)
	}
	return schema, nil
}
