package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/repository"
)

func TestHandleReorderWarnings(t *testing.T) {
	companyID := uuid.New().String()
	warnA := uuid.New().String()
	warnB := uuid.New().String()

	currentWarnings := func() []*repository.Warning {
		return []*repository.Warning{
			{ID: warnA, CompanyID: companyID, Content: "상차 지연 빈번", SortOrder: 0},
			{ID: warnB, CompanyID: companyID, Content: "야간 하차 불가", SortOrder: 1},
		}
	}

	t.Run("successful reorder commits audit entry atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		m.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(&repository.Company{ID: companyID}, nil)
		m.warnings.EXPECT().ListByCompany(gomock.Any(), companyID).Return(currentWarnings(), nil)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.warnings.EXPECT().UpdateSortOrderTx(gomock.Any(), m.tx, warnB, 0).Return(nil)
		m.warnings.EXPECT().UpdateSortOrderTx(gomock.Any(), m.tx, warnA, 1).Return(nil)
		m.recorder.EXPECT().
			RecordTx(gomock.Any(), m.tx, audit.KindWarning, companyID, gomock.Any(),
				audit.ChangeUpdate,
				audit.Snapshot{"sortOrder": []string{warnA, warnB}},
				audit.Snapshot{"sortOrder": []string{warnB, warnA}},
				gomock.Any()).
			Return(&audit.ChangeRecord{}, nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		req := jsonRequest(t, http.MethodPut, "/companies/"+companyID+"/warnings/order",
			map[string]interface{}{"warningIds": []string{warnB, warnA}},
			map[string]string{"id": companyID})
		rr := httptest.NewRecorder()

		srv.handleReorderWarnings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"주의사항 순서가 변경되었습니다"}`, rr.Body.String())
	})

	t.Run("audit failure aborts the reorder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		m.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(&repository.Company{ID: companyID}, nil)
		m.warnings.EXPECT().ListByCompany(gomock.Any(), companyID).Return(currentWarnings(), nil)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.warnings.EXPECT().UpdateSortOrderTx(gomock.Any(), m.tx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.recorder.EXPECT().
			RecordTx(gomock.Any(), m.tx, audit.KindWarning, companyID, gomock.Any(),
				audit.ChangeUpdate, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		req := jsonRequest(t, http.MethodPut, "/companies/"+companyID+"/warnings/order",
			map[string]interface{}{"warningIds": []string{warnB, warnA}},
			map[string]string{"id": companyID})
		rr := httptest.NewRecorder()

		srv.handleReorderWarnings(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("unknown warning id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		m.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(&repository.Company{ID: companyID}, nil)
		m.warnings.EXPECT().ListByCompany(gomock.Any(), companyID).Return(currentWarnings(), nil)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.warnings.EXPECT().
			UpdateSortOrderTx(gomock.Any(), m.tx, gomock.Any(), gomock.Any()).
			Return(repository.ErrObjectNotFound)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		req := jsonRequest(t, http.MethodPut, "/companies/"+companyID+"/warnings/order",
			map[string]interface{}{"warningIds": []string{uuid.New().String()}},
			map[string]string{"id": companyID})
		rr := httptest.NewRecorder()

		srv.handleReorderWarnings(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("empty id list rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, _ := newTestServer(ctrl)

		req := jsonRequest(t, http.MethodPut, "/companies/"+companyID+"/warnings/order",
			map[string]interface{}{"warningIds": []string{}},
			map[string]string{"id": companyID})
		rr := httptest.NewRecorder()

		srv.handleReorderWarnings(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleCreateWarning(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("successful creation records against the company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		m.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(&repository.Company{ID: companyID}, nil)
		m.warnings.EXPECT().ListByCompany(gomock.Any(), companyID).Return([]*repository.Warning{{}, {}}, nil)
		m.warnings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, warning *repository.Warning) error {
				assert.Equal(t, companyID, warning.CompanyID)
				assert.Equal(t, 2, warning.SortOrder)
				return nil
			})
		m.recorder.EXPECT().
			Record(gomock.Any(), audit.KindWarning, companyID, gomock.Any(),
				audit.ChangeCreate, gomock.Nil(), gomock.Any(), gomock.Eq(""), gomock.Any()).
			Return(&audit.ChangeRecord{})

		req := jsonRequest(t, http.MethodPost, "/companies/"+companyID+"/warnings",
			map[string]interface{}{"content": "상차 지연 빈번", "severity": "high"},
			map[string]string{"id": companyID})
		rr := httptest.NewRecorder()

		srv.handleCreateWarning(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("company not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		m.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(nil, repository.ErrObjectNotFound)

		req := jsonRequest(t, http.MethodPost, "/companies/"+companyID+"/warnings",
			map[string]interface{}{"content": "상차 지연 빈번"},
			map[string]string{"id": companyID})
		rr := httptest.NewRecorder()

		srv.handleCreateWarning(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
