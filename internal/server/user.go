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

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		AccessLevel string `json:"accessLevel"`
		Role        string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "이메일과 비밀번호는 필수입니다")
		return
	}

	now := time.Now().UTC()
	user := &repository.User{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		AccessLevel: req.AccessLevel,
		Role:        req.Role,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.users.Create(r.Context(), user); err != nil {
		s.respondStorageError(w, "create_user", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindUser, user.ID, actorFrom(r.Context()),
		audit.ChangeCreate, nil, userSnapshot(user), "")

	respondJSON(w, http.StatusCreated, map[string]string{"id": user.ID})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondStorageError(w, "get_user", err)
		return
	}
	// Hashes stay server-side.
	user.Password = ""
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var req struct {
		Name        *string `json:"name"`
		Email       *string `json:"email"`
		AccessLevel *string `json:"accessLevel"`
		Role        *string `json:"role"`
		Status      *string `json:"status"`
		Reason      string  `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	existing, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		s.respondStorageError(w, "update_user", err)
		return
	}

	oldSnap := userSnapshot(existing)

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.AccessLevel != nil {
		updated.AccessLevel = *req.AccessLevel
	}
	if req.Role != nil {
		updated.Role = *req.Role
	}
	changeType := audit.ChangeUpdate
	if req.Status != nil {
		updated.Status = *req.Status
		changeType = audit.ChangeUpdateStatus
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(r.Context(), &updated); err != nil {
		s.respondStorageError(w, "update_user", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindUser, userID, actorFrom(r.Context()),
		changeType, oldSnap, userSnapshot(&updated), req.Reason)

	respondJSON(w, http.StatusOK, map[string]string{"message": "사용자 정보가 수정되었습니다"})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	existing, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		s.respondStorageError(w, "delete_user", err)
		return
	}

	if err := s.users.Delete(r.Context(), userID); err != nil {
		s.respondStorageError(w, "delete_user", err)
		return
	}

	s.recorder.Record(r.Context(), audit.KindUser, userID, actorFrom(r.Context()),
		audit.ChangeDelete, userSnapshot(existing), nil, "")

	respondJSON(w, http.StatusOK, map[string]string{"message": "사용자가 삭제되었습니다"})
}
