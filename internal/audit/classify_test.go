package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	orderCfg, ok := ConfigFor(KindOrder)
	require.True(t, ok)
	companyCfg, ok := ConfigFor(KindCompany)
	require.True(t, ok)

	snap := Snapshot{"flowStatus": "배차대기"}

	t.Run("Missing Old Snapshot Means Create", func(t *testing.T) {
		ct := Classify(orderCfg, ChangeUpdate, nil, snap)
		assert.Equal(t, ChangeCreate, ct)
	})

	t.Run("Missing New Snapshot Means Delete", func(t *testing.T) {
		ct := Classify(orderCfg, ChangeUpdate, snap, nil)
		assert.Equal(t, ChangeDelete, ct)
	})

	t.Run("Declared Intent Wins When Allowed", func(t *testing.T) {
		ct := Classify(orderCfg, ChangeUpdateDispatch, snap, snap)
		assert.Equal(t, ChangeUpdateDispatch, ct)
	})

	t.Run("Disallowed Intent Falls Back To Update", func(t *testing.T) {
		// Companies have no dispatch lifecycle.
		ct := Classify(companyCfg, ChangeUpdateDispatch, snap, snap)
		assert.Equal(t, ChangeUpdate, ct)
	})

	t.Run("Empty Intent Falls Back To Update", func(t *testing.T) {
		ct := Classify(orderCfg, "", snap, snap)
		assert.Equal(t, ChangeUpdate, ct)
	})
}

func TestDefaultReason(t *testing.T) {
	cfg, ok := ConfigFor(KindOrder)
	require.True(t, ok)

	t.Run("Status Change", func(t *testing.T) {
		oldSnap := Snapshot{"flowStatus": "배차대기"}
		newSnap := Snapshot{"flowStatus": "배차완료"}

		reason := DefaultReason(cfg, ChangeUpdateStatus, oldSnap, newSnap, Diff{})
		assert.Equal(t, "상태 변경: 배차대기 → 배차완료", reason)
	})

	t.Run("Status Change With Missing Old", func(t *testing.T) {
		newSnap := Snapshot{"flowStatus": "배차대기"}

		reason := DefaultReason(cfg, ChangeUpdateStatus, nil, newSnap, Diff{})
		assert.Equal(t, "상태 변경: <nil> → 배차대기", reason)
	})

	t.Run("Dispatch Change Lists Fields Sorted", func(t *testing.T) {
		diff := Diff{
			"vehicleNumber": {Old: nil, New: "12가3456"},
			"driverId":      {Old: nil, New: "drv-1"},
			"flowStatus":    {Old: "배차대기", New: "배차완료"},
		}

		reason := DefaultReason(cfg, ChangeUpdateDispatch, Snapshot{}, Snapshot{}, diff)
		assert.Equal(t, "배차 정보 변경: driverId, flowStatus, vehicleNumber", reason)
	})

	t.Run("Generic Reasons", func(t *testing.T) {
		cases := map[ChangeType]string{
			ChangeCreate:              "신규 등록",
			ChangeUpdate:              "정보 수정",
			ChangeUpdatePrice:         "운임 변경",
			ChangeUpdatePriceSales:    "매출 운임 변경",
			ChangeUpdatePricePurchase: "매입 운임 변경",
			ChangeCancelDispatch:      "배차 취소",
			ChangeCancel:              "운송 취소",
			ChangeDelete:              "삭제",
		}
		for ct, want := range cases {
			assert.Equal(t, want, DefaultReason(cfg, ct, nil, nil, Diff{}))
		}
	})

	t.Run("Unknown Type Falls Back To Tag", func(t *testing.T) {
		reason := DefaultReason(cfg, ChangeType("migrate"), nil, nil, Diff{})
		assert.Equal(t, "migrate", reason)
	})
}

func TestKindConfig_Allows(t *testing.T) {
	cfg, ok := ConfigFor(KindWarning)
	require.True(t, ok)

	assert.True(t, cfg.Allows(ChangeCreate))
	assert.True(t, cfg.Allows(ChangeUpdate))
	assert.False(t, cfg.Allows(ChangeUpdateDispatch))
	assert.False(t, cfg.Allows(ChangeUpdatePrice))
}

func TestConfigFor_UnknownKind(t *testing.T) {
	_, ok := ConfigFor(EntityKind("settlement"))
	assert.False(t, ok)
}
