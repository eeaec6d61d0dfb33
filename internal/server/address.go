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

func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyID     string                 `json:"companyId"`
		Alias         string                 `json:"alias"`
		RoadAddress   string                 `json:"roadAddress"`
		DetailAddress string                 `json:"detailAddress"`
		Metadata      map[string]interface{} `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.CompanyID == "" || req.RoadAddress == "" {
		respondError(w, http.StatusBadRequest, "업체와 도로명 주소는 필수입니다")
		return
	}

	var metadata json.RawMessage
	if req.Metadata != nil {
		metadata, _ = json.Marshal(req.Metadata)
	}

	now := time.Now().UTC()
	address := &repository.Address{
		ID:            uuid.New().String(),
		CompanyID:     req.CompanyID,
		Alias:         req.Alias,
		RoadAddress:   req.RoadAddress,
		DetailAddress: req.DetailAddress,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.addresses.Create(r.Context(), address); err != nil {
		s.respondStorageError(w, "create_address", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindAddress, address.ID, actorFrom(r.Context()),
		audit.ChangeCreate, nil, addressSnapshot(address), "")

	respondJSON(w, http.StatusCreated, map[string]string{"id": address.ID})
}

func (s *Server) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	address, err := s.addresses.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondStorageError(w, "get_address", err)
		return
	}
	respondJSON(w, http.StatusOK, address)
}

func (s *Server) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	addressID := mux.Vars(r)["id"]

	var req struct {
		Alias         *string                `json:"alias"`
		RoadAddress   *string                `json:"roadAddress"`
		DetailAddress *string                `json:"detailAddress"`
		Metadata      map[string]interface{} `json:"metadata"`
		Reason        string                 `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.addresses.GetByID(r.Context(), addressID)
	if err != nil {
		s.respondStorageError(w, "update_address", err)
		return
	}

	oldSnap := addressSnapshot(existing)

	updated := *existing
	if req.Alias != nil {
		updated.Alias = *req.Alias
	}
	if req.RoadAddress != nil {
		updated.RoadAddress = *req.RoadAddress
	}
	if req.DetailAddress != nil {
		updated.DetailAddress = *req.DetailAddress
	}
	if req.Metadata != nil {
		updated.Metadata, _ = json.Marshal(req.Metadata)
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.addresses.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_address", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindAddress, addressID, actorFrom(r.Context()),
		audit.ChangeUpdate, oldSnap, addressSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "주소가 수정되었습니다"})
}

func (s *Server) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID := mux.Vars(r)["id"]

	existing, err := s.addresses.GetByID(r.Context(), addressID)
	if err != nil {
		s.respondStorageError(w, "delete_address", err)
		return
	}

	if err := s.addresses.Delete(r.Context(), addressID); err != nil {
		s.respondStorageError(w, "delete_address", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindAddress, addressID, actorFrom(r.Context()),
		audit.ChangeDelete, addressSnapshot(existing), nil, "")

	respondJSON(w, http.StatusOK, map[string]string{"message": "주소가 삭제되었습니다"})
}
