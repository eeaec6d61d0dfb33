package history_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/history"
	mock_history "github.com/logibee/backoffice/internal/history/mocks"
	"github.com/logibee/backoffice/internal/repository"
)

func TestReader_GetHistory(t *testing.T) {
	ctx := context.Background()
	entityID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_history.NewMockStore(ctrl)
		reader := history.NewReader(store, nil, zap.NewNop())

		occurred, err := time.Parse(time.RFC3339, "2026-03-01T09:30:00Z")
		require.NoError(t, err)

		rows := []*repository.ChangeRecordRow{
			{
				ID:               uuid.New(),
				EntityID:         entityID,
				ActorID:          "usr-1",
				ActorName:        "김철수",
				ActorEmail:       "kim@logibee.io",
				ActorAccessLevel: "manager",
				ChangeType:       "updateStatus",
				Payload:          json.RawMessage(`{"flowStatus":{"old":"배차대기","new":"배차완료"}}`),
				Reason:           "상태 변경: 배차대기 → 배차완료",
				OccurredAt:       occurred,
			},
		}

		store.EXPECT().
			ListFor(gomock.Any(), audit.KindOrder, entityID,
				repository.HistoryFilter{Page: 1, PageSize: 10}).
			Return(rows, 23, nil)

		page, err := reader.GetHistory(ctx, audit.KindOrder, entityID, 1, 10, "")
		require.NoError(t, err)

		assert.Equal(t, 23, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, 3, page.TotalPages)
		require.Len(t, page.Data, 1)

		item := page.Data[0]
		assert.Equal(t, "updateStatus", item.ChangeType)
		assert.Equal(t, "김철수", item.ChangedBy.Name)
		assert.Equal(t, "2026-03-01T09:30:00Z", item.OccurredAt)
		assert.Equal(t, "상태 변경: 배차대기 → 배차완료", item.Reason)
	})

	t.Run("Total Pages Rounds Up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_history.NewMockStore(ctrl)
		reader := history.NewReader(store, nil, zap.NewNop())

		cases := []struct {
			total, pageSize, want int
		}{
			{0, 10, 0},
			{1, 10, 1},
			{10, 10, 1},
			{11, 10, 2},
			{95, 10, 10},
		}
		for _, tc := range cases {
			store.EXPECT().
				ListFor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.total, nil)

			page, err := reader.GetHistory(ctx, audit.KindOrder, entityID, 1, tc.pageSize, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, page.TotalPages, "total=%d pageSize=%d", tc.total, tc.pageSize)
		}
	})

	t.Run("Paging Defaults And Limits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_history.NewMockStore(ctrl)
		reader := history.NewReader(store, nil, zap.NewNop())

		store.EXPECT().
			ListFor(gomock.Any(), gomock.Any(), gomock.Any(),
				repository.HistoryFilter{Page: 1, PageSize: history.DefaultPageSize}).
			Return(nil, 0, nil)

		page, err := reader.GetHistory(ctx, audit.KindOrder, entityID, 0, 0, "")
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, history.DefaultPageSize, page.PageSize)

		store.EXPECT().
			ListFor(gomock.Any(), gomock.Any(), gomock.Any(),
				repository.HistoryFilter{Page: 1, PageSize: history.MaxPageSize}).
			Return(nil, 0, nil)

		page, err = reader.GetHistory(ctx, audit.KindOrder, entityID, 1, 5000, "")
		require.NoError(t, err)
		assert.Equal(t, history.MaxPageSize, page.PageSize)
	})

	t.Run("Invalid Entity ID Skips Store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_history.NewMockStore(ctrl)
		reader := history.NewReader(store, nil, zap.NewNop())

		page, err := reader.GetHistory(ctx, audit.KindOrder, "invalid-id", 1, 10, "")
		assert.ErrorIs(t, err, history.ErrInvalidEntityID)
		assert.Nil(t, page)
	})

	t.Run("Ref Filter Forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_history.NewMockStore(ctrl)
		reader := history.NewReader(store, nil, zap.NewNop())

		store.EXPECT().
			ListFor(gomock.Any(), audit.KindWarning, entityID,
				repository.HistoryFilter{RefID: "warn-1", Page: 1, PageSize: 10}).
			Return(nil, 0, nil)

		_, err := reader.GetHistory(ctx, audit.KindWarning, entityID, 1, 10, "warn-1")
		assert.NoError(t, err)
	})

	t.Run("Actor Source Fills Gaps Only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_history.NewMockStore(ctrl)
		actors := mock_history.NewMockActorSource(ctrl)
		reader := history.NewReader(store, actors, zap.NewNop())

		rows := []*repository.ChangeRecordRow{
			{ID: uuid.New(), EntityID: entityID, ActorID: "usr-1", ActorName: "김철수"},
		}

		store.EXPECT().
			ListFor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rows, 1, nil)
		actors.EXPECT().
			DisplayData(gomock.Any(), "usr-1").
			Return(audit.Actor{ID: "usr-1", Name: "다른 이름", Email: "kim@logibee.io", AccessLevel: "manager"}, true)

		page, err := reader.GetHistory(ctx, audit.KindOrder, entityID, 1, 10, "")
		require.NoError(t, err)
		require.Len(t, page.Data, 1)

		// Denormalized name wins; missing fields taken from the account.
		assert.Equal(t, "김철수", page.Data[0].ChangedBy.Name)
		assert.Equal(t, "kim@logibee.io", page.Data[0].ChangedBy.Email)
		assert.Equal(t, "manager", page.Data[0].ChangedBy.AccessLevel)
	})

	t.Run("Store Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_history.NewMockStore(ctrl)
		reader := history.NewReader(store, nil, zap.NewNop())

		store.EXPECT().
			ListFor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, 0, errors.New("database error"))

		page, err := reader.GetHistory(ctx, audit.KindOrder, entityID, 1, 10, "")
		assert.Error(t, err)
		assert.Nil(t, page)
	})
}
