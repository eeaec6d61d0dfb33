package audit

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind names one of the audited business object families. Each kind
// owns its own append-only history table.
type EntityKind string

const (
	KindOrder   EntityKind = "order"
	KindCompany EntityKind = "company"
	KindDriver  EntityKind = "driver"
	KindUser    EntityKind = "user"
	KindAddress EntityKind = "address"
	KindWarning EntityKind = "warning"
)

// ChangeType is a closed-set tag classifying the nature of a mutation.
// The order kind uses the full set; the other kinds use the subset
// create/update/updateStatus/delete.
type ChangeType string

const (
	ChangeCreate              ChangeType = "create"
	ChangeUpdate              ChangeType = "update"
	ChangeUpdateStatus        ChangeType = "updateStatus"
	ChangeUpdatePrice         ChangeType = "updatePrice"
	ChangeUpdatePriceSales    ChangeType = "updatePriceSales"
	ChangeUpdatePricePurchase ChangeType = "updatePricePurchase"
	ChangeUpdateDispatch      ChangeType = "updateDispatch"
	ChangeCancelDispatch      ChangeType = "cancelDispatch"
	ChangeCancel              ChangeType = "cancel"
	ChangeDelete              ChangeType = "delete"
)

// Actor is a denormalized copy of whoever performed a change, captured at
// write time so history stays readable after the account changes or is
// removed.
type Actor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessLevel string `json:"accessLevel"`
	Role        string `json:"role,omitempty"`
}

// Snapshot is a point-in-time copy of an entity's field values.
type Snapshot map[string]interface{}

// Change holds the before/after pair for a single field path.
type Change struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

// Diff maps field paths (dotted for nested sub-fields) to their
// before/after pairs. Pure creations and deletions collapse into a single
// entry under AllFieldsKey.
type Diff map[string]Change

// AllFieldsKey is the aggregate diff key used for pure creations and
// deletions, pairing the whole present snapshot with null on the missing
// side.
const AllFieldsKey = "all"

// ChangeRecord is one immutable audit entry. OccurredAt is assigned by the
// history store at insert time.
type ChangeRecord struct {
	ID         uuid.UUID  `json:"id"`
	EntityID   string     `json:"entityId"`
	RefID      string     `json:"refId,omitempty"`
	EntityKind EntityKind `json:"entityKind"`
	ChangeType ChangeType `json:"changeType"`
	Actor      Actor      `json:"actor"`
	OccurredAt time.Time  `json:"occurredAt"`
	Payload    Diff       `json:"payload"`
	Reason     string     `json:"reason,omitempty"`
}
