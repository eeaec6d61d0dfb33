package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("not found")

// Order flow statuses as the dispatch board shows them.
const (
	OrderStatusAwaitingDispatch = "배차대기"
	OrderStatusDispatched       = "배차완료"
	OrderStatusInTransit        = "운송중"
	OrderStatusDelivered        = "운송완료"
	OrderStatusCancelled        = "취소"
)

type Order struct {
	ID               string          `db:"id"`
	CompanyID        string          `db:"company_id"`
	CargoName        string          `db:"cargo_name"`
	CargoWeight      float64         `db:"cargo_weight"`
	FlowStatus       string          `db:"flow_status"`
	PriceSales       int64           `db:"price_sales"`
	PricePurchase    int64           `db:"price_purchase"`
	DriverID         *string         `db:"driver_id"`
	VehicleNumber    *string         `db:"vehicle_number"`
	LoadingAddress   string          `db:"loading_address"`
	UnloadingAddress string          `db:"unloading_address"`
	Metadata         json.RawMessage `db:"metadata"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type Company struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	BusinessNumber string    `db:"business_number"`
	CompanyType    string    `db:"company_type"`
	Status         string    `db:"status"`
	Phone          string    `db:"phone"`
	Representative string    `db:"representative"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Driver struct {
	ID            string    `db:"id"`
	CompanyID     *string   `db:"company_id"`
	Name          string    `db:"name"`
	Phone         string    `db:"phone"`
	VehicleNumber string    `db:"vehicle_number"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type User struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Password    string    `db:"password"`
	AccessLevel string    `db:"access_level"`
	Role        string    `db:"role"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Address struct {
	ID            string          `db:"id"`
	CompanyID     string          `db:"company_id"`
	Alias         string          `db:"alias"`
	RoadAddress   string          `db:"road_address"`
	DetailAddress string          `db:"detail_address"`
	Metadata      json.RawMessage `db:"metadata"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Warning struct {
	ID        string    `db:"id"`
	CompanyID string    `db:"company_id"`
	Content   string    `db:"content"`
	Severity  string    `db:"severity"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ChangeRecordRow is the persisted shape of an audit entry. One table per
// entity kind, all sharing this layout; the payload column is JSONB.
type ChangeRecordRow struct {
	ID               uuid.UUID       `db:"id"`
	EntityID         string          `db:"entity_id"`
	RefID            *string         `db:"ref_id"`
	ActorID          string          `db:"actor_id"`
	ActorName        string          `db:"actor_name"`
	ActorEmail       string          `db:"actor_email"`
	ActorAccessLevel string          `db:"actor_access_level"`
	ActorRole        string          `db:"actor_role"`
	ChangeType       string          `db:"change_type"`
	Payload          json.RawMessage `db:"payload"`
	Reason           string          `db:"reason"`
	OccurredAt       time.Time       `db:"occurred_at"`
}

// HistoryFilter narrows and pages a history read. Page is 1-based; RefID
// optionally filters by the secondary reference id.
type HistoryFilter struct {
	RefID    string
	Page     int
	PageSize int
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusFailed     TaskStatus = "FAILED"
)

// NotificationTask is one row of the SMS outbox: a notification payload
// waiting to be handed to the broker.
type NotificationTask struct {
	ID          uuid.UUID  `db:"id"`
	OrderID     string     `db:"order_id"`
	Phone       string     `db:"phone"`
	Message     string     `db:"message"`
	Topic       string     `db:"topic"`
	Status      TaskStatus `db:"status"`
	Attempts    int        `db:"attempts"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	CompletedAt *time.Time `db:"completed_at"`
}
