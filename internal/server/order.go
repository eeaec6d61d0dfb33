package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/metrics"
	"github.com/logibee/backoffice/internal/repository"
)

var orderStatuses = map[string]struct{}{
	repository.OrderStatusAwaitingDispatch: {},
	repository.OrderStatusDispatched:       {},
	repository.OrderStatusInTransit:        {},
	repository.OrderStatusDelivered:        {},
	repository.OrderStatusCancelled:        {},
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyID        string                 `json:"companyId"`
		CargoName        string                 `json:"cargoName"`
		CargoWeight      float64                `json:"cargoWeight"`
		PriceSales       int64                  `json:"priceSales"`
		PricePurchase    int64                  `json:"pricePurchase"`
		LoadingAddress   string                 `json:"loadingAddress"`
		UnloadingAddress string                 `json:"unloadingAddress"`
		Metadata         map[string]interface{} `json:"metadata"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.CompanyID == "" || req.CargoName == "" {
		respondError(w, http.StatusBadRequest, "화주와 화물명은 필수입니다")
		return
	}

	var metadata json.RawMessage
	if req.Metadata != nil {
		metadata, _ = json.Marshal(req.Metadata)
	}

	now := time.Now().UTC()
	order := &repository.Order{
		ID:               uuid.New().String(),
		CompanyID:        req.CompanyID,
		CargoName:        req.CargoName,
		CargoWeight:      req.CargoWeight,
		FlowStatus:       repository.OrderStatusAwaitingDispatch,
		PriceSales:       req.PriceSales,
		PricePurchase:    req.PricePurchase,
		LoadingAddress:   req.LoadingAddress,
		UnloadingAddress: req.UnloadingAddress,
		Metadata:         metadata,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.orders.Create(r.Context(), order); err != nil {
		s.respondStorageError(w, "create_order", err)
		return
	}

	metrics.OrdersCreatedTotal.Inc()
	s.recorder.Record(r.Context(), audit.KindOrder, order.ID, actorFrom(r.Context()),
		audit.ChangeCreate, nil, orderSnapshot(order), "")

	respondJSON(w, http.StatusCreated, map[string]string{"id": order.ID})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.orders.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondStorageError(w, "get_order", err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		CargoName        *string                `json:"cargoName"`
		CargoWeight      *float64               `json:"cargoWeight"`
		LoadingAddress   *string                `json:"loadingAddress"`
		UnloadingAddress *string                `json:"unloadingAddress"`
		Metadata         map[string]interface{} `json:"metadata"`
		Reason           string                 `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.respondStorageError(w, "update_order", err)
		return
	}

	oldSnap := orderSnapshot(existing)

	updated := *existing
	if req.CargoName != nil {
		updated.CargoName = *req.CargoName
	}
	if req.CargoWeight != nil {
		updated.CargoWeight = *req.CargoWeight
	}
	if req.LoadingAddress != nil {
		updated.LoadingAddress = *req.LoadingAddress
	}
	if req.UnloadingAddress != nil {
		updated.UnloadingAddress = *req.UnloadingAddress
	}
	if req.Metadata != nil {
		updated.Metadata, _ = json.Marshal(req.Metadata)
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_order", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindOrder, orderID, actorFrom(r.Context()),
		audit.ChangeUpdate, oldSnap, orderSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "화물 정보가 수정되었습니다"})
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if _, ok := orderStatuses[req.Status]; !ok {
		respondError(w, http.StatusBadRequest, "지원하지 않는 상태입니다")
		return
	}

	existing, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.respondStorageError(w, "update_order_status", err)
		return
	}

	oldSnap := orderSnapshot(existing)

	updated := *existing
	updated.FlowStatus = req.Status
	updated.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_order_status", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindOrder, orderID, actorFrom(r.Context()),
		audit.ChangeUpdateStatus, oldSnap, orderSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "상태가 변경되었습니다"})
}

func (s *Server) handleUpdateOrderPrice(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		PriceSales    *int64 `json:"priceSales"`
		PricePurchase *int64 `json:"pricePurchase"`
		Reason        string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.PriceSales == nil && req.PricePurchase == nil {
		respondError(w, http.StatusBadRequest, "변경할 운임이 없습니다")
		return
	}

	existing, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.respondStorageError(w, "update_order_price", err)
		return
	}

	oldSnap := orderSnapshot(existing)

	changeType := audit.ChangeUpdatePrice
	updated := *existing
	switch {
	case req.PriceSales != nil && req.PricePurchase != nil:
		updated.PriceSales = *req.PriceSales
		updated.PricePurchase = *req.PricePurchase
	case req.PriceSales != nil:
		updated.PriceSales = *req.PriceSales
		changeType = audit.ChangeUpdatePriceSales
	default:
		updated.PricePurchase = *req.PricePurchase
		changeType = audit.ChangeUpdatePricePurchase
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_order_price", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindOrder, orderID, actorFrom(r.Context()),
		changeType, oldSnap, orderSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "운임이 변경되었습니다"})
}

func (s *Server) handleUpdateDispatch(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		DriverID string `json:"driverId"`
		Reason   string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DriverID == "" {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.respondStorageError(w, "update_dispatch", err)
		return
	}

	driver, err := s.drivers.GetByID(r.Context(), req.DriverID)
	if err != nil {
		s.respondStorageError(w, "update_dispatch", err)
		return
	}

	oldSnap := orderSnapshot(existing)

	updated := *existing
	updated.DriverID = &driver.ID
	updated.VehicleNumber = &driver.VehicleNumber
	updated.FlowStatus = repository.OrderStatusDispatched
	updated.UpdatedAt = time.Now().UTC()

	// The order update and the driver's SMS notification share one
	// transaction so a dispatched order always has its outbox entry.
	tx, err := s.db.BeginTx(r.Context())
	if err != nil {
		s.respondStorageError(w, "update_dispatch", err)
		return
	}
	defer func() {
		_ = tx.Rollback(r.Context())
	}()

	if err := s.orders.UpdateTx(r.Context(), tx, &updated); err != nil {
		s.respondStorageError(w, "update_dispatch", err)
		return
	}

	task := &repository.NotificationTask{
		OrderID: orderID,
		Phone:   driver.Phone,
		Message: "배차가 완료되었습니다: " + updated.CargoName,
		Topic:   "sms_notifications",
	}
	if err := s.outbox.CreateTx(r.Context(), tx, task); err != nil {
		s.respondStorageError(w, "update_dispatch", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		s.respondStorageError(w, "update_dispatch", err)
		return
	}

	metrics.DispatchesCompletedTotal.Inc()
	metrics.SmsTasksEnqueuedTotal.Inc()
	s.recorder.Record(r.Context(), audit.KindOrder, orderID, actorFrom(r.Context()),
		audit.ChangeUpdateDispatch, oldSnap, orderSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "배차가 완료되었습니다"})
}

func (s *Server) handleCancelDispatch(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	existing, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.respondStorageError(w, "cancel_dispatch", err)
		return
	}

	oldSnap := orderSnapshot(existing)

	updated := *existing
	updated.DriverID = nil
	updated.VehicleNumber = nil
	updated.FlowStatus = repository.OrderStatusAwaitingDispatch
	updated.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "cancel_dispatch", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindOrder, orderID, actorFrom(r.Context()),
		audit.ChangeCancelDispatch, oldSnap, orderSnapshot(&updated), "")

	respondJSON(w, http.StatusOK, map[string]string{"message": "배차가 취소되었습니다"})
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		Reason string `json:"reason"`
	}
	// An empty body is acceptable here.
	_ = json.NewDecoder(r.Body).Decode(&req)

	existing, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.respondStorageError(w, "cancel_order", err)
		return
	}

	oldSnap := orderSnapshot(existing)

	updated := *existing
	updated.FlowStatus = repository.OrderStatusCancelled
	updated.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "cancel_order", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindOrder, orderID, actorFrom(r.Context()),
		audit.ChangeCancel, oldSnap, orderSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "운송이 취소되었습니다"})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	existing, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.respondStorageError(w, "delete_order", err)
		return
	}

	if err := s.orders.Delete(r.Context(), orderID); err != nil {
		s.respondStorageError(w, "delete_order", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindOrder, orderID, actorFrom(r.Context()),
		audit.ChangeDelete, orderSnapshot(existing), nil, "")

	respondJSON(w, http.StatusOK, map[string]string{"message": "화물이 삭제되었습니다"})
}
