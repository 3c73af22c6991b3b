package controller

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/domain"
	"mockgraph/internal/metrics"
	"mockgraph/internal/service/cars"
	"mockgraph/internal/service/users"
	"mockgraph/internal/sse"
)

// Listing is the REST collection of a deployment: GET Path returns List().
type Listing struct {
	Path string
	List func(ctx context.Context) (any, error)
}

func CarListing(svc *cars.Service) Listing {
	return Listing{
		Path: listingPath(domain.KindCars),
		List: func(ctx context.Context) (any, error) { return svc.GetAll(ctx, nil) },
	}
}

func UserListing(svc *users.Service) Listing {
	return Listing{
		Path: listingPath(domain.KindUsers),
		List: func(ctx context.Context) (any, error) { return svc.GetAll(ctx, nil) },
	}
}

// listingPath mirrors the GraphQL list field, e.g. /rest/getAllCars.
func listingPath(kind domain.Kind) string {
	return "/rest/getAll" + kind.Collection()
}

type Handler struct {
	cfg     *config.Config
	schema  *graphql.Schema
	listing Listing
	hub     *sse.Hub
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewHandler(cfg *config.Config, schema *graphql.Schema, listing Listing, hub *sse.Hub, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{cfg: cfg, schema: schema, listing: listing, hub: hub, metrics: m, log: logger}
}

func (h *Handler) ListingPath() string {
	return h.listing.Path
}
