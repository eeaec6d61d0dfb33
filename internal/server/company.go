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

func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name"`
		BusinessNumber string `json:"businessNumber"`
		CompanyType    string `json:"companyType"`
		Phone          string `json:"phone"`
		Representative string `json:"representative"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Name == "" || req.BusinessNumber == "" {
		respondError(w, http.StatusBadRequest, "업체명과 사업자번호는 필수입니다")
		return
	}

	now := time.Now().UTC()
	company := &repository.Company{
		ID:             uuid.New().String(),
		Name:           req.Name,
		BusinessNumber: req.BusinessNumber,
		CompanyType:    req.CompanyType,
		Status:         "active",
		Phone:          req.Phone,
		Representative: req.Representative,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.companies.Create(r.Context(), company); err != nil {
		s.respondStorageError(w, "create_company", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindCompany, company.ID, actorFrom(r.Context()),
		audit.ChangeCreate, nil, companySnapshot(company), "")

	respondJSON(w, http.StatusCreated, map[string]string{"id": company.ID})
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := s.companies.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondStorageError(w, "get_company", err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["id"]

	var req struct {
		Name           *string `json:"name"`
		BusinessNumber *string `json:"businessNumber"`
		CompanyType    *string `json:"companyType"`
		Phone          *string `json:"phone"`
		Representative *string `json:"representative"`
		Reason         string  `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.companies.GetByID(r.Context(), companyID)
	if err != nil {
		s.respondStorageError(w, "update_company", err)
		return
	}

	oldSnap := companySnapshot(existing)

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.BusinessNumber != nil {
		updated.BusinessNumber = *req.BusinessNumber
	}
	if req.CompanyType != nil {
		updated.CompanyType = *req.CompanyType
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.Representative != nil {
		updated.Representative = *req.Representative
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.companies.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_company", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindCompany, companyID, actorFrom(r.Context()),
		audit.ChangeUpdate, oldSnap, companySnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "업체 정보가 수정되었습니다"})
}

func (s *Server) handleUpdateCompanyStatus(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.companies.GetByID(r.Context(), companyID)
	if err != nil {
		s.respondStorageError(w, "update_company_status", err)
		return
	}

	oldSnap := companySnapshot(existing)

	updated := *existing
	updated.Status = req.Status
	updated.UpdatedAt = time.Now().UTC()

	if err := s.companies.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_company_status", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindCompany, companyID, actorFrom(r.Context()),
		audit.ChangeUpdateStatus, oldSnap, companySnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "상태가 변경되었습니다"})
}

func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["id"]

	existing, err := s.companies.GetByID(r.Context(), companyID)
	if err != nil {
		s.respondStorageError(w, "delete_company", err)
		return
	}

	if err := s.companies.Delete(r.Context(), companyID); err != nil {
		s.respondStorageError(w, "delete_company", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindCompany, companyID, actorFrom(r.Context()),
		audit.ChangeDelete, companySnapshot(existing), nil, "")

	respondJSON(w, http.StatusOK, map[string]string{"message": "업체가 삭제되었습니다"})
}
