//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/history"
	"github.com/logibee/backoffice/internal/metrics"
	"github.com/logibee/backoffice/internal/repository"
)

type OrderStorage interface {
	Create(ctx context.Context, order *repository.Order) error
	GetByID(ctx context.Context, id string) (*repository.Order, error)
	Update(ctx context.Context, order *repository.Order) error
	UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*repository.Order, error)
}

type CompanyStorage interface {
	Create(ctx context.Context, company *repository.Company) error
	GetByID(ctx context.Context, id string) (*repository.Company, error)
	Update(ctx context.Context, company *repository.Company) error
	Delete(ctx context.Context, id string) error
}

type DriverStorage interface {
	Create(ctx context.Context, driver *repository.Driver) error
	GetByID(ctx context.Context, id string) (*repository.Driver, error)
	Update(ctx context.Context, driver *repository.Driver) error
	Delete(ctx context.Context, id string) error
}

type UserStorage interface {
	Create(ctx context.Context, user *repository.User) error
	GetByID(ctx context.Context, id string) (*repository.User, error)
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	Update(ctx context.Context, user *repository.User) error
	Delete(ctx context.Context, id string) error
	ValidateUser(ctx context.Context, email, password string) (bool, error)
}

type AddressStorage interface {
	Create(ctx context.Context, address *repository.Address) error
	GetByID(ctx context.Context, id string) (*repository.Address, error)
	Update(ctx context.Context, address *repository.Address) error
	Delete(ctx context.Context, id string) error
}

type WarningStorage interface {
	Create(ctx context.Context, warning *repository.Warning) error
	GetByID(ctx context.Context, id string) (*repository.Warning, error)
	ListByCompany(ctx context.Context, companyID string) ([]*repository.Warning, error)
	Update(ctx context.Context, warning *repository.Warning) error
	UpdateSortOrderTx(ctx context.Context, tx db.Tx, id string, sortOrder int) error
	Delete(ctx context.Context, id string) error
}

type NotificationOutbox interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.NotificationTask) error
}

// Recorder is the audit boundary the handlers fire into. Record is
// best-effort and never returns an error.
type Recorder interface {
	Record(ctx context.Context, kind audit.EntityKind, entityID string, actor audit.Actor, changeType audit.ChangeType, oldData, newData audit.Snapshot, reason string, opts ...audit.RecordOption) *audit.ChangeRecord
	RecordTx(ctx context.Context, tx db.Tx, kind audit.EntityKind, entityID string, actor audit.Actor, changeType audit.ChangeType, oldData, newData audit.Snapshot, reason string, opts ...audit.RecordOption) (*audit.ChangeRecord, error)
}

type HistoryReader interface {
	GetHistory(ctx context.Context, kind audit.EntityKind, entityID string, page, pageSize int, refID string) (*history.Page, error)
}

type Server struct {
	db        db.DB
	orders    OrderStorage
	companies CompanyStorage
	drivers   DriverStorage
	users     UserStorage
	addresses AddressStorage
	warnings  WarningStorage
	outbox    NotificationOutbox
	recorder  Recorder
	history   HistoryReader
	logger    *zap.Logger
	server    *http.Server
}

type Deps struct {
	DB        db.DB
	Orders    OrderStorage
	Companies CompanyStorage
	Drivers   DriverStorage
	Users     UserStorage
	Addresses AddressStorage
	Warnings  WarningStorage
	Outbox    NotificationOutbox
	Recorder  Recorder
	History   HistoryReader
	Logger    *zap.Logger
}

func New(deps Deps) *Server {
	return &Server{
		db:        deps.DB,
		orders:    deps.Orders,
		companies: deps.Companies,
		drivers:   deps.Drivers,
		users:     deps.Users,
		addresses: deps.Addresses,
		warnings:  deps.Warnings,
		outbox:    deps.Outbox,
		recorder:  deps.Recorder,
		history:   deps.History,
		logger:    deps.Logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLogMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/").Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.handleUpdateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/status", s.handleUpdateOrderStatus).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/price", s.handleUpdateOrderPrice).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/dispatch", s.handleUpdateDispatch).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/dispatch", s.handleCancelDispatch).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id}/cancel", s.handleCancelOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", s.handleDeleteOrder).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id}/history", s.handleOrderHistory).Methods(http.MethodGet)

	api.HandleFunc("/companies", s.handleCreateCompany).Methods(http.MethodPost)
	api.HandleFunc("/companies/{id}", s.handleGetCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id}", s.handleUpdateCompany).Methods(http.MethodPut)
	api.HandleFunc("/companies/{id}/status", s.handleUpdateCompanyStatus).Methods(http.MethodPut)
	api.HandleFunc("/companies/{id}", s.handleDeleteCompany).Methods(http.MethodDelete)
	api.HandleFunc("/companies/{id}/history", s.handleCompanyHistory).Methods(http.MethodGet)

	api.HandleFunc("/drivers", s.handleCreateDriver).Methods(http.MethodPost)
	api.HandleFunc("/drivers/{id}", s.handleGetDriver).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{id}", s.handleUpdateDriver).Methods(http.MethodPut)
	api.HandleFunc("/drivers/{id}", s.handleDeleteDriver).Methods(http.MethodDelete)
	api.HandleFunc("/drivers/{id}/history", s.handleDriverHistory).Methods(http.MethodGet)

	api.HandleFunc("/users", s.handleCreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", s.handleUpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", s.handleDeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/history", s.handleUserHistory).Methods(http.MethodGet)

	api.HandleFunc("/addresses", s.handleCreateAddress).Methods(http.MethodPost)
	api.HandleFunc("/addresses/{id}", s.handleGetAddress).Methods(http.MethodGet)
	api.HandleFunc("/addresses/{id}", s.handleUpdateAddress).Methods(http.MethodPut)
	api.HandleFunc("/addresses/{id}", s.handleDeleteAddress).Methods(http.MethodDelete)
	api.HandleFunc("/addresses/{id}/history", s.handleAddressHistory).Methods(http.MethodGet)

	api.HandleFunc("/companies/{id}/warnings", s.handleCreateWarning).Methods(http.MethodPost)
	api.HandleFunc("/companies/{id}/warnings", s.handleListWarnings).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id}/warnings/order", s.handleReorderWarnings).Methods(http.MethodPut)
	api.HandleFunc("/companies/{id}/warnings/history", s.handleWarningHistory).Methods(http.MethodGet)
	api.HandleFunc("/warnings/{id}", s.handleUpdateWarning).Methods(http.MethodPut)
	api.HandleFunc("/warnings/{id}", s.handleDeleteWarning).Methods(http.MethodDelete)

	return r
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

const (
	msgInvalidBody   = "잘못된 요청입니다"
	msgInvalidID     = "잘못된 ID 형식입니다"
	msgNotFound      = "대상을 찾을 수 없습니다"
	msgInternalError = "서버 오류가 발생했습니다"
)

// respondStorageError maps repository failures onto the HTTP error
// taxonomy; details go to the server log only.
func (s *Server) respondStorageError(w http.ResponseWriter, operation string, err error) {
	if errors.Is(err, repository.ErrObjectNotFound) {
		respondError(w, http.StatusNotFound, msgNotFound)
		return
	}
	s.logger.Error("storage operation failed", zap.String("operation", operation), zap.Error(err))
	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
	respondError(w, http.StatusInternalServerError, msgInternalError)
}
