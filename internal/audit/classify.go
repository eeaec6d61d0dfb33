package audit

import (
	"fmt"
	"sort"
	"strings"
)

// Classify selects the change-type tag for a mutation. Missing snapshots
// decide creations and deletions outright; otherwise the caller's declared
// intent wins as long as it is a member of the kind's allowed set, falling
// back to plain update.
func Classify(cfg KindConfig, declared ChangeType, oldSnap, newSnap Snapshot) ChangeType {
	if oldSnap == nil && newSnap != nil {
		return ChangeCreate
	}
	if newSnap == nil && oldSnap != nil {
		return ChangeDelete
	}
	if declared != "" && cfg.Allows(declared) {
		return declared
	}
	return ChangeUpdate
}

var genericReasons = map[ChangeType]string{
	ChangeCreate:              "신규 등록",
	ChangeUpdate:              "정보 수정",
	ChangeUpdatePrice:         "운임 변경",
	ChangeUpdatePriceSales:    "매출 운임 변경",
	ChangeUpdatePricePurchase: "매입 운임 변경",
	ChangeCancelDispatch:      "배차 취소",
	ChangeCancel:              "운송 취소",
	ChangeDelete:              "삭제",
}

// DefaultReason synthesizes the human-readable justification recorded when
// the caller supplies none.
func DefaultReason(cfg KindConfig, ct ChangeType, oldSnap, newSnap Snapshot, diff Diff) string {
	switch ct {
	case ChangeUpdateStatus:
		var oldStatus, newStatus interface{}
		if oldSnap != nil {
			oldStatus = oldSnap[cfg.StatusField]
		}
		if newSnap != nil {
			newStatus = newSnap[cfg.StatusField]
		}
		return fmt.Sprintf("상태 변경: %v → %v", oldStatus, newStatus)
	case ChangeUpdateDispatch:
		return "배차 정보 변경: " + strings.Join(changedFields(diff), ", ")
	default:
		if reason, ok := genericReasons[ct]; ok {
			return reason
		}
		return string(ct)
	}
}

func changedFields(diff Diff) []string {
	fields := make([]string, 0, len(diff))
	for field := range diff {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
