package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/repository"
)

// Warning history hangs off the owning company: records carry the company
// as entity id and the warning itself as the secondary ref id.

func (s *Server) handleCreateWarning(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["id"]

	var req struct {
		Content  string `json:"content"`
		Severity string `json:"severity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if _, err := s.companies.GetByID(r.Context(), companyID); err != nil {
		s.respondStorageError(w, "create_warning", err)
		return
	}

	existing, err := s.warnings.ListByCompany(r.Context(), companyID)
	if err != nil {
		s.respondStorageError(w, "create_warning", err)
		return
	}

	now := time.Now().UTC()
	warning := &repository.Warning{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Content:   req.Content,
		Severity:  req.Severity,
		SortOrder: len(existing),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.warnings.Create(r.Context(), warning); err != nil {
		s.respondStorageError(w, "create_warning", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindWarning, companyID, actorFrom(r.Context()),
		audit.ChangeCreate, nil, warningSnapshot(warning), "", audit.WithRef(warning.ID))

	respondJSON(w, http.StatusCreated, map[string]string{"id": warning.ID})
}

func (s *Server) handleListWarnings(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["id"]

	if _, err := s.companies.GetByID(r.Context(), companyID); err != nil {
		s.respondStorageError(w, "list_warnings", err)
		return
	}

	warnings, err := s.warnings.ListByCompany(r.Context(), companyID)
	if err != nil {
		s.respondStorageError(w, "list_warnings", err)
		return
	}
	respondJSON(w, http.StatusOK, warnings)
}

func (s *Server) handleUpdateWarning(w http.ResponseWriter, r *http.Request) {
	warningID := mux.Vars(r)["id"]

	var req struct {
		Content  *string `json:"content"`
		Severity *string `json:"severity"`
		Reason   string  `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.warnings.GetByID(r.Context(), warningID)
	if err != nil {
		s.respondStorageError(w, "update_warning", err)
		return
	}

	oldSnap := warningSnapshot(existing)

	updated := *existing
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Severity != nil {
		updated.Severity = *req.Severity
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.warnings.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_warning", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindWarning, existing.CompanyID, actorFrom(r.Context()),
		audit.ChangeUpdate, oldSnap, warningSnapshot(&updated), req.Reason, audit.WithRef(warningID))

	respondJSON(w, http.StatusOK, map[string]string{"message": "주의사항이 수정되었습니다"})
}

func (s *Server) handleDeleteWarning(w http.ResponseWriter, r *http.Request) {
	warningID := mux.Vars(r)["id"]

	existing, err := s.warnings.GetByID(r.Context(), warningID)
	if err != nil {
		s.respondStorageError(w, "delete_warning", err)
		return
	}

	if err := s.warnings.Delete(r.Context(), warningID); err != nil {
		s.respondStorageError(w, "delete_warning", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindWarning, existing.CompanyID, actorFrom(r.Context()),
		audit.ChangeDelete, warningSnapshot(existing), nil, "", audit.WithRef(warningID))

	respondJSON(w, http.StatusOK, map[string]string{"message": "주의사항이 삭제되었습니다"})
}

// handleReorderWarnings applies a full new ordering for a company's
// warnings. The sort-order updates and the audit entry commit atomically:
// this is the one call site that opts into sharing a transaction with the
// recorder.
func (s *Server) handleReorderWarnings(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["id"]

	var req struct {
		WarningIDs []string `json:"warningIds"`
		Reason     string   `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.WarningIDs) == 0 {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if _, err := s.companies.GetByID(r.Context(), companyID); err != nil {
		s.respondStorageError(w, "reorder_warnings", err)
		return
	}

	current, err := s.warnings.ListByCompany(r.Context(), companyID)
	if err != nil {
		s.respondStorageError(w, "reorder_warnings", err)
		return
	}

	oldOrder := make([]string, len(current))
	for i, warning := range current {
		oldOrder[i] = warning.ID
	}

	tx, err := s.db.BeginTx(r.Context())
	if err != nil {
		s.respondStorageError(w, "reorder_warnings", err)
		return
	}
	defer func() {
		_ = tx.Rollback(r.Context())
	}()

	for position, warningID := range req.WarningIDs {
		if err := s.warnings.UpdateSortOrderTx(r.Context(), tx, warningID, position); err != nil {
			s.respondStorageError(w, "reorder_warnings", err)
			return
		}
	}

	reason := req.Reason
	if reason == "" {
		reason = fmt.Sprintf("순서 변경: %s", strings.Join(req.WarningIDs, ", "))
	}

	_, err = s.recorder.RecordTx(r.Context(), tx, audit.KindWarning, companyID, actorFrom(r.Context()),
		audit.ChangeUpdate,
		audit.Snapshot{"sortOrder": oldOrder},
		audit.Snapshot{"sortOrder": req.WarningIDs},
		reason)
	if err != nil {
		s.respondStorageError(w, "reorder_warnings", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		s.respondStorageError(w, "reorder_warnings", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "주의사항 순서가 변경되었습니다"})
}
