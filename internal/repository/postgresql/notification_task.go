package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/repository"
)

// NotificationTaskRepo persists the SMS outbox. Tasks are written in the
// same transaction as the business mutation that triggers them and drained
// by the background publisher.
type NotificationTaskRepo struct {
}

func NewNotificationTaskRepo() *NotificationTaskRepo {
	return &NotificationTaskRepo{}
}

func (r *NotificationTaskRepo) CreateTx(ctx context.Context, tx db.Tx, task *repository.NotificationTask) error {
	query := `
        INSERT INTO notification_tasks (id, order_id, phone, message, topic, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now().UTC()
	_, err := tx.Exec(ctx, query,
		task.ID,
		task.OrderID,
		task.Phone,
		task.Message,
		task.Topic,
		repository.TaskStatusCreated,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification task: %w", err)
	}
	return nil
}

func (r *NotificationTaskRepo) GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.NotificationTask, error) {
	query := `
        SELECT id, order_id, phone, message, topic, status, attempts, last_error, created_at, updated_at, completed_at
        FROM notification_tasks
        WHERE status = $1 OR (status = $2 AND attempts < $3)
        ORDER BY updated_at ASC
        LIMIT $4
        FOR UPDATE SKIP LOCKED
    `
	maxAttempts := 5

	var tasks []*repository.NotificationTask
	err := db.Select(ctx, &tasks, query, repository.TaskStatusCreated, repository.TaskStatusFailed, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get processable notification tasks: %w", err)
	}
	return tasks, nil
}

func (r *NotificationTaskRepo) updateTaskStatusInternal(ctx context.Context, executor interface{}, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	query := `
        UPDATE notification_tasks
        SET
            status = $2,
            attempts = $3,
            last_error = $4,
            completed_at = $5,
            updated_at = now()
        WHERE id = $1
    `

	var cmdTag pgconn.CommandTag
	var err error

	switch exec := executor.(type) {
	case db.Tx:
		cmdTag, err = exec.Exec(ctx, query, id, status, attempts, lastError, completedAt)
	case db.DB:
		cmdTag, err = exec.Exec(ctx, query, id, status, attempts, lastError, completedAt)
	default:
		return fmt.Errorf("unsupported executor type: %T", executor)
	}

	if err != nil {
		return fmt.Errorf("failed to update notification task status for id %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *NotificationTaskRepo) UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	return r.updateTaskStatusInternal(ctx, tx, id, status, attempts, lastError, completedAt)
}

func (r *NotificationTaskRepo) UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	return r.updateTaskStatusInternal(ctx, db, id, status, attempts, lastError, completedAt)
}
