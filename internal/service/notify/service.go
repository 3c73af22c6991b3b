// Package notify fans created records out to SSE subscribers and the event
// publisher.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/metrics"
	"mockgraph/internal/model"
	"mockgraph/internal/queue"
	"mockgraph/internal/sse"
)

type Service struct {
	cfg     *config.Config
	hub     *sse.Hub
	pub     queue.Publisher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewService(cfg *config.Config, hub *sse.Hub, publisher queue.Publisher, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, hub: hub, pub: publisher, metrics: m, log: logger}
}

// Created announces record. Delivery is best effort: failures are logged and
// never reported to the caller, so a mutation is not undone by a broker outage.
func (s *Service) Created(ctx context.Context, id int32, record any) {
	s.metrics.RecordCreated()

	body, err := json.Marshal(record)
	if err != nil {
		s.log.Error("marshal created record failed", zap.Int32("id", id), zap.Error(err))
		return
	}
	event := model.Event{
		ID:        uuid.NewString(),
		Type:      s.cfg.Kind.CreatedEvent(),
		Record:    body,
		CreatedAt: time.Now().UTC(),
	}

	if !s.hub.Broadcast(event) {
		s.log.Warn("sse broadcast queue full, event dropped", zap.String("event_id", event.ID), zap.Int32("id", id))
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("marshal event failed", zap.String("event_id", event.ID), zap.Error(err))
		return
	}
	if err := s.pub.Publish(ctx, payload, s.routingKey()); err != nil {
		s.log.Error("publish created event failed",
			zap.String("event_id", event.ID),
			zap.Int32("id", id),
			zap.Error(err),
		)
	}
}

func (s *Service) routingKey() string {
	prefix := s.cfg.RabbitPublishPrefix
	if prefix == "" {
		prefix = "events"
	}
	return fmt.Sprintf("%s.%s", prefix, s.cfg.Kind.CreatedEvent())
}
