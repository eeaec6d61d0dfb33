package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logibee/backoffice/internal/audit"
	mock_database "github.com/logibee/backoffice/internal/db/mocks"
	"github.com/logibee/backoffice/internal/repository"
)

func sampleRecord() *audit.ChangeRecord {
	return &audit.ChangeRecord{
		ID:         uuid.New(),
		EntityID:   "ord-1",
		EntityKind: audit.KindOrder,
		ChangeType: audit.ChangeUpdateStatus,
		Actor:      audit.Actor{ID: "usr-1", Name: "김철수", Email: "kim@logibee.io", AccessLevel: "manager"},
		Payload:    audit.Diff{"flowStatus": {Old: "배차대기", New: "배차완료"}},
		Reason:     "상태 변경: 배차대기 → 배차완료",
	}
}

func TestChangeLogRepo_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)
		record := sampleRecord()

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(),
				gomock.Eq(record.ID),
				gomock.Eq(record.EntityID),
				gomock.Nil(),
				gomock.Eq(record.Actor.ID),
				gomock.Eq(record.Actor.Name),
				gomock.Eq(record.Actor.Email),
				gomock.Eq(record.Actor.AccessLevel),
				gomock.Eq(record.Actor.Role),
				gomock.Eq(string(record.ChangeType)),
				gomock.Any(),
				gomock.Eq(record.Reason),
				gomock.Any()).
			Return(nil, nil)

		err := repo.Append(ctx, record)
		assert.NoError(t, err)
		assert.False(t, record.OccurredAt.IsZero())
	})

	t.Run("Ref ID Passed When Set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)
		record := sampleRecord()
		record.EntityKind = audit.KindWarning
		record.RefID = "warn-1"

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq(&record.RefID),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := repo.Append(ctx, record)
		assert.NoError(t, err)
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)
		record := sampleRecord()
		record.EntityKind = audit.EntityKind("settlement")

		err := repo.Append(ctx, record)
		assert.Error(t, err)
	})

	t.Run("DB Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)
		dbErr := errors.New("database error")

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dbErr)

		err := repo.Append(ctx, sampleRecord())
		assert.Error(t, err)
		assert.Equal(t, dbErr, err)
	})
}

func TestChangeLogRepo_AppendTx(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewChangeLogRepo(mockDB)
		record := sampleRecord()

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := repo.AppendTx(ctx, mockTx, record)
		assert.NoError(t, err)
	})

	t.Run("Tx Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewChangeLogRepo(mockDB)
		txErr := errors.New("transaction error")

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, txErr)

		err := repo.AppendTx(ctx, mockTx, sampleRecord())
		assert.Error(t, err)
		assert.Equal(t, txErr, err)
	})
}

func TestChangeLogRepo_ListFor(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)

		filter := repository.HistoryFilter{Page: 2, PageSize: 10}

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("ord-1")).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*int) = 23
				return nil
			})
		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq("ord-1"), gomock.Eq(10), gomock.Eq(10)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*[]*repository.ChangeRecordRow) = []*repository.ChangeRecordRow{
					{EntityID: "ord-1", ChangeType: "updateStatus"},
				}
				return nil
			})

		rows, total, err := repo.ListFor(ctx, audit.KindOrder, "ord-1", filter)
		require.NoError(t, err)
		assert.Equal(t, 23, total)
		require.Len(t, rows, 1)
		assert.Equal(t, "ord-1", rows[0].EntityID)
	})

	t.Run("Ref Filter Adds Condition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)

		filter := repository.HistoryFilter{RefID: "warn-1", Page: 1, PageSize: 10}

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq("cmp-1"), gomock.Eq("warn-1")).
			Return(nil)
		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq("cmp-1"), gomock.Eq("warn-1"), gomock.Eq(10), gomock.Eq(0)).
			Return(nil)

		_, _, err := repo.ListFor(ctx, audit.KindWarning, "cmp-1", filter)
		assert.NoError(t, err)
	})

	t.Run("Count Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		rows, total, err := repo.ListFor(ctx, audit.KindOrder, "ord-1", repository.HistoryFilter{Page: 1, PageSize: 10})
		assert.Error(t, err)
		assert.Zero(t, total)
		assert.Nil(t, rows)
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewChangeLogRepo(mockDB)

		_, _, err := repo.ListFor(ctx, audit.EntityKind("settlement"), "x", repository.HistoryFilter{Page: 1, PageSize: 10})
		assert.Error(t, err)
	})
}
