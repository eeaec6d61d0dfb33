package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/logibee/backoffice/internal/audit"
	mock_database "github.com/logibee/backoffice/internal/db/mocks"
	"github.com/logibee/backoffice/internal/repository"
	mock_server "github.com/logibee/backoffice/internal/server/mocks"
)

type serverMocks struct {
	db        *mock_database.MockDB
	tx        *mock_database.MockTx
	orders    *mock_server.MockOrderStorage
	companies *mock_server.MockCompanyStorage
	drivers   *mock_server.MockDriverStorage
	users     *mock_server.MockUserStorage
	addresses *mock_server.MockAddressStorage
	warnings  *mock_server.MockWarningStorage
	outbox    *mock_server.MockNotificationOutbox
	recorder  *mock_server.MockRecorder
	history   *mock_server.MockHistoryReader
}

func newTestServer(ctrl *gomock.Controller) (*Server, *serverMocks) {
	m := &serverMocks{
		db:        mock_database.NewMockDB(ctrl),
		tx:        mock_database.NewMockTx(ctrl),
		orders:    mock_server.NewMockOrderStorage(ctrl),
		companies: mock_server.NewMockCompanyStorage(ctrl),
		drivers:   mock_server.NewMockDriverStorage(ctrl),
		users:     mock_server.NewMockUserStorage(ctrl),
		addresses: mock_server.NewMockAddressStorage(ctrl),
		warnings:  mock_server.NewMockWarningStorage(ctrl),
		outbox:    mock_server.NewMockNotificationOutbox(ctrl),
		recorder:  mock_server.NewMockRecorder(ctrl),
		history:   mock_server.NewMockHistoryReader(ctrl),
	}
	srv := New(Deps{
		DB:        m.db,
		Orders:    m.orders,
		Companies: m.companies,
		Drivers:   m.drivers,
		Users:     m.users,
		Addresses: m.addresses,
		Warnings:  m.warnings,
		Outbox:    m.outbox,
		Recorder:  m.recorder,
		History:   m.history,
		Logger:    zap.NewNop(),
	})
	return srv, m
}

func testOrder(id string) *repository.Order {
	return &repository.Order{
		ID:               id,
		CompanyID:        uuid.New().String(),
		CargoName:        "철강 코일",
		CargoWeight:      24.5,
		FlowStatus:       repository.OrderStatusAwaitingDispatch,
		PriceSales:       450000,
		PricePurchase:    400000,
		LoadingAddress:   "포항시 남구",
		UnloadingAddress: "인천시 서구",
	}
}

func jsonRequest(t *testing.T, method, target string, body interface{}, vars map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestHandleCreateOrder(t *testing.T) {
	companyID := uuid.New().String()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(m *serverMocks)
		expectedStatus int
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"companyId":   companyID,
				"cargoName":   "철강 코일",
				"cargoWeight": 24.5,
				"priceSales":  450000,
			},
			setupMocks: func(m *serverMocks) {
				m.orders.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *repository.Order) error {
						assert.Equal(t, companyID, order.CompanyID)
						assert.Equal(t, "철강 코일", order.CargoName)
						assert.Equal(t, repository.OrderStatusAwaitingDispatch, order.FlowStatus)
						return nil
					})
				m.recorder.EXPECT().
					Record(gomock.Any(), audit.KindOrder, gomock.Any(), gomock.Any(),
						audit.ChangeCreate, gomock.Nil(), gomock.Any(), gomock.Eq("")).
					Return(&audit.ChangeRecord{})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing required fields",
			requestBody:    map[string]interface{}{"cargoWeight": 24.5},
			setupMocks:     func(m *serverMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage error",
			requestBody: map[string]interface{}{
				"companyId": companyID,
				"cargoName": "철강 코일",
			},
			setupMocks: func(m *serverMocks) {
				m.orders.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "audit write failure does not fail the request",
			requestBody: map[string]interface{}{
				"companyId": companyID,
				"cargoName": "철강 코일",
			},
			setupMocks: func(m *serverMocks) {
				m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.recorder.EXPECT().
					Record(gomock.Any(), audit.KindOrder, gomock.Any(), gomock.Any(),
						audit.ChangeCreate, gomock.Nil(), gomock.Any(), gomock.Eq("")).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv, m := newTestServer(ctrl)
			tc.setupMocks(m)

			req := jsonRequest(t, http.MethodPost, "/orders", tc.requestBody, nil)
			rr := httptest.NewRecorder()

			srv.handleCreateOrder(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleUpdateOrderStatus(t *testing.T) {
	orderID := uuid.New().String()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(m *serverMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "successful status change",
			requestBody: map[string]interface{}{"status": repository.OrderStatusInTransit},
			setupMocks: func(m *serverMocks) {
				m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(orderID), nil)
				m.orders.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *repository.Order) error {
						assert.Equal(t, repository.OrderStatusInTransit, order.FlowStatus)
						return nil
					})
				m.recorder.EXPECT().
					Record(gomock.Any(), audit.KindOrder, orderID, gomock.Any(),
						audit.ChangeUpdateStatus, gomock.Any(), gomock.Any(), gomock.Eq("")).
					DoAndReturn(func(_ context.Context, _ audit.EntityKind, _ string, _ audit.Actor, _ audit.ChangeType, oldData, newData audit.Snapshot, _ string, _ ...audit.RecordOption) *audit.ChangeRecord {
						assert.Equal(t, repository.OrderStatusAwaitingDispatch, oldData["flowStatus"])
						assert.Equal(t, repository.OrderStatusInTransit, newData["flowStatus"])
						return &audit.ChangeRecord{}
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"상태가 변경되었습니다"}`,
		},
		{
			name:           "unsupported status",
			requestBody:    map[string]interface{}{"status": "검수중"},
			setupMocks:     func(m *serverMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"지원하지 않는 상태입니다"}`,
		},
		{
			name:        "order not found",
			requestBody: map[string]interface{}{"status": repository.OrderStatusInTransit},
			setupMocks: func(m *serverMocks) {
				m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, repository.ErrObjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"대상을 찾을 수 없습니다"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv, m := newTestServer(ctrl)
			tc.setupMocks(m)

			req := jsonRequest(t, http.MethodPut, "/orders/"+orderID+"/status", tc.requestBody,
				map[string]string{"id": orderID})
			rr := httptest.NewRecorder()

			srv.handleUpdateOrderStatus(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestHandleUpdateOrderPrice(t *testing.T) {
	orderID := uuid.New().String()

	tests := []struct {
		name         string
		requestBody  map[string]interface{}
		expectedType audit.ChangeType
	}{
		{
			name:         "both prices",
			requestBody:  map[string]interface{}{"priceSales": 500000, "pricePurchase": 420000},
			expectedType: audit.ChangeUpdatePrice,
		},
		{
			name:         "sales only",
			requestBody:  map[string]interface{}{"priceSales": 500000},
			expectedType: audit.ChangeUpdatePriceSales,
		},
		{
			name:         "purchase only",
			requestBody:  map[string]interface{}{"pricePurchase": 420000},
			expectedType: audit.ChangeUpdatePricePurchase,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv, m := newTestServer(ctrl)

			m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(orderID), nil)
			m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			m.recorder.EXPECT().
				Record(gomock.Any(), audit.KindOrder, orderID, gomock.Any(),
					tc.expectedType, gomock.Any(), gomock.Any(), gomock.Eq("")).
				Return(&audit.ChangeRecord{})

			req := jsonRequest(t, http.MethodPut, "/orders/"+orderID+"/price", tc.requestBody,
				map[string]string{"id": orderID})
			rr := httptest.NewRecorder()

			srv.handleUpdateOrderPrice(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}

	t.Run("no price supplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, _ := newTestServer(ctrl)

		req := jsonRequest(t, http.MethodPut, "/orders/"+orderID+"/price",
			map[string]interface{}{"reason": "x"}, map[string]string{"id": orderID})
		rr := httptest.NewRecorder()

		srv.handleUpdateOrderPrice(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleUpdateDispatch(t *testing.T) {
	orderID := uuid.New().String()
	driverID := uuid.New().String()

	t.Run("successful dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		driver := &repository.Driver{ID: driverID, Name: "박기사", Phone: "010-1234-5678", VehicleNumber: "12가3456"}

		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(orderID), nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), driverID).Return(driver, nil)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orders.EXPECT().
			UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, order *repository.Order) error {
				require.NotNil(t, order.DriverID)
				assert.Equal(t, driverID, *order.DriverID)
				assert.Equal(t, repository.OrderStatusDispatched, order.FlowStatus)
				return nil
			})
		m.outbox.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.NotificationTask) error {
				assert.Equal(t, orderID, task.OrderID)
				assert.Equal(t, "010-1234-5678", task.Phone)
				assert.Equal(t, "sms_notifications", task.Topic)
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
		m.recorder.EXPECT().
			Record(gomock.Any(), audit.KindOrder, orderID, gomock.Any(),
				audit.ChangeUpdateDispatch, gomock.Any(), gomock.Any(), gomock.Eq("")).
			Return(&audit.ChangeRecord{})

		req := jsonRequest(t, http.MethodPut, "/orders/"+orderID+"/dispatch",
			map[string]interface{}{"driverId": driverID}, map[string]string{"id": orderID})
		rr := httptest.NewRecorder()

		srv.handleUpdateDispatch(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"배차가 완료되었습니다"}`, rr.Body.String())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		driver := &repository.Driver{ID: driverID, Phone: "010-1234-5678", VehicleNumber: "12가3456"}

		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(orderID), nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), driverID).Return(driver, nil)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.orders.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(errors.New("database error"))
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		req := jsonRequest(t, http.MethodPut, "/orders/"+orderID+"/dispatch",
			map[string]interface{}{"driverId": driverID}, map[string]string{"id": orderID})
		rr := httptest.NewRecorder()

		srv.handleUpdateDispatch(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("missing driver id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, _ := newTestServer(ctrl)

		req := jsonRequest(t, http.MethodPut, "/orders/"+orderID+"/dispatch",
			map[string]interface{}{}, map[string]string{"id": orderID})
		rr := httptest.NewRecorder()

		srv.handleUpdateDispatch(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleDeleteOrder(t *testing.T) {
	orderID := uuid.New().String()

	t.Run("successful deletion records old snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(testOrder(orderID), nil)
		m.orders.EXPECT().Delete(gomock.Any(), orderID).Return(nil)
		m.recorder.EXPECT().
			Record(gomock.Any(), audit.KindOrder, orderID, gomock.Any(),
				audit.ChangeDelete, gomock.Any(), gomock.Nil(), gomock.Eq("")).
			DoAndReturn(func(_ context.Context, _ audit.EntityKind, _ string, _ audit.Actor, _ audit.ChangeType, oldData, newData audit.Snapshot, _ string, _ ...audit.RecordOption) *audit.ChangeRecord {
				assert.Equal(t, "철강 코일", oldData["cargoName"])
				assert.Nil(t, newData)
				return &audit.ChangeRecord{}
			})

		req := jsonRequest(t, http.MethodDelete, "/orders/"+orderID, nil, map[string]string{"id": orderID})
		rr := httptest.NewRecorder()

		srv.handleDeleteOrder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, m := newTestServer(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, repository.ErrObjectNotFound)

		req := jsonRequest(t, http.MethodDelete, "/orders/"+orderID, nil, map[string]string{"id": orderID})
		rr := httptest.NewRecorder()

		srv.handleDeleteOrder(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
