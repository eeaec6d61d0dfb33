//go:generate mockgen -source ./reader.go -destination=./mocks/reader.go -package=mock_history
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/repository"
)

// ErrInvalidEntityID marks a malformed (non-UUID) entity id; the store is
// never touched for these.
var ErrInvalidEntityID = errors.New("invalid entity id")

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Store interface {
	ListFor(ctx context.Context, kind audit.EntityKind, entityID string, filter repository.HistoryFilter) ([]*repository.ChangeRecordRow, int, error)
}

type ActorSource interface {
	DisplayData(ctx context.Context, actorID string) (audit.Actor, bool)
}

// ChangedBy is the presentation shape of the recorded actor.
type ChangedBy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessLevel string `json:"accessLevel"`
}

type Item struct {
	ID         string          `json:"id"`
	EntityID   string          `json:"entityId"`
	RefID      string          `json:"refId,omitempty"`
	ChangeType string          `json:"changeType"`
	ChangedBy  ChangedBy       `json:"changedBy"`
	OccurredAt string          `json:"occurredAt"`
	Reason     string          `json:"reason"`
	Payload    json.RawMessage `json:"payload"`
}

type Page struct {
	Data       []Item `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

// Reader pages through an entity's change history and reshapes raw records
// for presentation.
type Reader struct {
	store  Store
	actors ActorSource
	logger *zap.Logger
}

func NewReader(store Store, actors ActorSource, logger *zap.Logger) *Reader {
	return &Reader{store: store, actors: actors, logger: logger}
}

// GetHistory returns one page of history for the entity, newest first.
// Malformed entity ids fail with ErrInvalidEntityID before any query.
func (r *Reader) GetHistory(ctx context.Context, kind audit.EntityKind, entityID string, page, pageSize int, refID string) (*Page, error) {
	if _, err := uuid.Parse(entityID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntityID, entityID)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	rows, total, err := r.store.ListFor(ctx, kind, entityID, repository.HistoryFilter{
		RefID:    refID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read history for %s %s: %w", kind, entityID, err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, r.toItem(ctx, row))
	}

	return &Page{
		Data:       items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

func (r *Reader) toItem(ctx context.Context, row *repository.ChangeRecordRow) Item {
	changedBy := ChangedBy{
		ID:          row.ActorID,
		Name:        row.ActorName,
		Email:       row.ActorEmail,
		AccessLevel: row.ActorAccessLevel,
	}

	// The denormalized copy wins; the live account only fills gaps.
	if r.actors != nil && (changedBy.Name == "" || changedBy.Email == "") {
		if actor, ok := r.actors.DisplayData(ctx, row.ActorID); ok {
			if changedBy.Name == "" {
				changedBy.Name = actor.Name
			}
			if changedBy.Email == "" {
				changedBy.Email = actor.Email
			}
			if changedBy.AccessLevel == "" {
				changedBy.AccessLevel = actor.AccessLevel
			}
		}
	}

	occurredAt := ""
	if !row.OccurredAt.IsZero() {
		occurredAt = row.OccurredAt.UTC().Format(time.RFC3339)
	}

	refID := ""
	if row.RefID != nil {
		refID = *row.RefID
	}

	return Item{
		ID:         row.ID.String(),
		EntityID:   row.EntityID,
		RefID:      refID,
		ChangeType: row.ChangeType,
		ChangedBy:  changedBy,
		OccurredAt: occurredAt,
		Reason:     row.Reason,
		Payload:    row.Payload,
	}
}
