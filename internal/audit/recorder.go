//go:generate mockgen -source ./recorder.go -destination=./mocks/recorder.go -package=mock_audit
package audit

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/metrics"
)

// HistoryStore is the append-only persistence boundary for change records.
type HistoryStore interface {
	Append(ctx context.Context, record *ChangeRecord) error
	AppendTx(ctx context.Context, tx db.Tx, record *ChangeRecord) error
}

// SystemActor is recorded when the caller supplies no usable identity.
// Audit writes are never blocked by incomplete caller context.
var SystemActor = Actor{
	ID:          "system",
	Name:        "system",
	AccessLevel: "system",
}

// Recorder assembles and persists change records. It is best-effort:
// persistence failures are logged and counted, never propagated, so an
// audit write can never abort the caller's business operation.
type Recorder struct {
	store  HistoryStore
	logger *zap.Logger
}

func NewRecorder(store HistoryStore, logger *zap.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// RecordOption tweaks a record before it is appended.
type RecordOption func(*ChangeRecord)

// WithRef attaches a secondary reference id, e.g. the specific warning
// within a company's warning history.
func WithRef(refID string) RecordOption {
	return func(record *ChangeRecord) {
		record.RefID = refID
	}
}

// Record builds a change record for the given mutation and appends it.
// Returns the record that was written, or nil when the write failed or the
// kind is unknown.
func (r *Recorder) Record(ctx context.Context, kind EntityKind, entityID string, actor Actor, changeType ChangeType, oldData, newData Snapshot, reason string, opts ...RecordOption) *ChangeRecord {
	record, ok := r.build(kind, entityID, actor, changeType, oldData, newData, reason, opts...)
	if !ok {
		return nil
	}

	if err := r.store.Append(ctx, record); err != nil {
		r.logger.Error("failed to append change record",
			zap.String("entity_kind", string(kind)),
			zap.String("entity_id", entityID),
			zap.String("change_type", string(record.ChangeType)),
			zap.Error(err))
		metrics.ChangeRecordWriteFailuresTotal.WithLabelValues(string(kind)).Inc()
		return nil
	}

	metrics.ChangeRecordsWrittenTotal.WithLabelValues(string(kind)).Inc()
	return record
}

// RecordTx appends within the caller's transaction. Unlike Record, the
// error is returned: a caller that shares its transaction has opted into
// atomicity between the business mutation and its audit entry.
func (r *Recorder) RecordTx(ctx context.Context, tx db.Tx, kind EntityKind, entityID string, actor Actor, changeType ChangeType, oldData, newData Snapshot, reason string, opts ...RecordOption) (*ChangeRecord, error) {
	record, ok := r.build(kind, entityID, actor, changeType, oldData, newData, reason, opts...)
	if !ok {
		return nil, nil
	}

	if err := r.store.AppendTx(ctx, tx, record); err != nil {
		metrics.ChangeRecordWriteFailuresTotal.WithLabelValues(string(kind)).Inc()
		return nil, err
	}

	metrics.ChangeRecordsWrittenTotal.WithLabelValues(string(kind)).Inc()
	return record, nil
}

func (r *Recorder) build(kind EntityKind, entityID string, actor Actor, changeType ChangeType, oldData, newData Snapshot, reason string, opts ...RecordOption) (*ChangeRecord, bool) {
	cfg, ok := ConfigFor(kind)
	if !ok {
		r.logger.Error("unknown entity kind for change record", zap.String("entity_kind", string(kind)))
		return nil, false
	}

	if actor.ID == "" {
		actor = SystemActor
	}

	ct := Classify(cfg, changeType, oldData, newData)
	diff := ComputeDiff(oldData, newData, cfg.TrackedFields, cfg.NestedFields)
	if reason == "" {
		reason = DefaultReason(cfg, ct, oldData, newData, diff)
	}

	record := &ChangeRecord{
		ID:         uuid.New(),
		EntityID:   entityID,
		EntityKind: kind,
		ChangeType: ct,
		Actor:      actor,
		Payload:    diff,
		Reason:     reason,
	}
	for _, opt := range opts {
		opt(record)
	}
	return record, true
}
