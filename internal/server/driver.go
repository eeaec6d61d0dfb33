package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/repository"
)

func (s *Server) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyID     *string `json:"companyId"`
		Name          string  `json:"name"`
		Phone         string  `json:"phone"`
		VehicleNumber string  `json:"vehicleNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Name == "" || req.Phone == "" {
		respondError(w, http.StatusBadRequest, "기사명과 연락처는 필수입니다")
		return
	}

	now := time.Now().UTC()
	driver := &repository.Driver{
		ID:            uuid.New().String(),
		CompanyID:     req.CompanyID,
		Name:          req.Name,
		Phone:         req.Phone,
		VehicleNumber: req.VehicleNumber,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.drivers.Create(r.Context(), driver); err != nil {
		s.respondStorageError(w, "create_driver", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindDriver, driver.ID, actorFrom(r.Context()),
		audit.ChangeCreate, nil, driverSnapshot(driver), "")

	respondJSON(w, http.StatusCreated, map[string]string{"id": driver.ID})
}

func (s *Server) handleGetDriver(w http.ResponseWriter, r *http.Request) {
	driver, err := s.drivers.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondStorageError(w, "get_driver", err)
		return
	}
	respondJSON(w, http.StatusOK, driver)
}

func (s *Server) handleUpdateDriver(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	var req struct {
		CompanyID     *string `json:"companyId"`
		Name          *string `json:"name"`
		Phone         *string `json:"phone"`
		VehicleNumber *string `json:"vehicleNumber"`
		Status        *string `json:"status"`
		Reason        string  `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.drivers.GetByID(r.Context(), driverID)
	if err != nil {
		s.respondStorageError(w, "update_driver", err)
		return
	}

	oldSnap := driverSnapshot(existing)

	updated := *existing
	if req.CompanyID != nil {
		updated.CompanyID = req.CompanyID
	}
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.VehicleNumber != nil {
		updated.VehicleNumber = *req.VehicleNumber
	}
	changeType := audit.ChangeUpdate
	if req.Status != nil {
		updated.Status = *req.Status
		changeType = audit.ChangeUpdateStatus
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.drivers.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_driver", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindDriver, driverID, actorFrom(r.Context()),
		changeType, oldSnap, driverSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "기사 정보가 수정되었습니다"})
}

func (s *Server) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	existing, err := s.drivers.GetByID(r.Context(), driverID)
	if err != nil {
		s.respondStorageError(w, "delete_driver", err)
		return
	}

	if err := s.drivers.Delete(r.Context(), driverID); err != nil {
		s.respondStorageError(w, "delete_driver", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindDriver, driverID, actorFrom(r.Context()),
		audit.ChangeDelete, driverSnapshot(existing), nil, "")

	respondJSON(w, http.StatusOK, map[string]string{"message": "기사가 삭제되었습니다"})
}
