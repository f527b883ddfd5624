package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
	"github.com/mgalihpp/inventory-dashboard/internal/util"
)

type ListResult[T any] struct {
	Items []T
	Total int64
	Meta  util.Meta
}

func newListResult[T any](q transport.ListQuery, total int64, items []T) *ListResult[T] {
	return &ListResult[T]{Items: items, Total: total, Meta: util.NewMeta(q.Page, q.PageSize, total)}
}

func publish(ctx context.Context, p events.Publisher, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", topic, "key", key, "error", err)
	}
}

func missing(fields map[string]string, order ...string) error {
	var names []string
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return validation("Missing required fields: " + strings.Join(names, ", "))
}

func blank(p *string) bool {
	return p != nil && strings.TrimSpace(*p) == ""
}

// parseLookupID treats a malformed id as an unknown record.
func parseLookupID(raw, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound(notFoundMsg)
	}
	return id, nil
}

func parseDeleteID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse id %q: %w", raw, err)
	}
	return id, nil
}
