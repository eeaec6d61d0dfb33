package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/history"
)

func parsePaging(w http.ResponseWriter, r *http.Request) (page, pageSize int, ok bool) {
	page = 1
	pageSize = history.DefaultPageSize

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			respondError(w, http.StatusBadRequest, "page 파라미터가 올바르지 않습니다")
			return 0, 0, false
		}
	}

	if sizeStr := r.URL.Query().Get("pageSize"); sizeStr != "" {
		var err error
		pageSize, err = strconv.Atoi(sizeStr)
		if err != nil || pageSize <= 0 {
			respondError(w, http.StatusBadRequest, "pageSize 파라미터가 올바르지 않습니다")
			return 0, 0, false
		}
	}

	return page, pageSize, true
}

// serveHistory is the shared read path: well-formed id, owning entity
// exists, then one page from the history store.
func (s *Server) serveHistory(w http.ResponseWriter, r *http.Request, kind audit.EntityKind, exists func(context.Context, string) error, refID string) {
	entityID := mux.Vars(r)["id"]

	if _, err := uuid.Parse(entityID); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	page, pageSize, ok := parsePaging(w, r)
	if !ok {
		return
	}

	if err := exists(r.Context(), entityID); err != nil {
		s.respondStorageError(w, "history_"+string(kind), err)
		return
	}

	result, err := s.history.GetHistory(r.Context(), kind, entityID, page, pageSize, refID)
	if err != nil {
		s.respondStorageError(w, "history_"+string(kind), err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	s.serveHistory(w, r, audit.KindOrder, func(ctx context.Context, id string) error {
		_, err := s.orders.GetByID(ctx, id)
		return err
	}, "")
}

func (s *Server) handleCompanyHistory(w http.ResponseWriter, r *http.Request) {
	s.serveHistory(w, r, audit.KindCompany, func(ctx context.Context, id string) error {
		_, err := s.companies.GetByID(ctx, id)
		return err
	}, "")
}

func (s *Server) handleDriverHistory(w http.ResponseWriter, r *http.Request) {
	s.serveHistory(w, r, audit.KindDriver, func(ctx context.Context, id string) error {
		_, err := s.drivers.GetByID(ctx, id)
		return err
	}, "")
}

func (s *Server) handleUserHistory(w http.ResponseWriter, r *http.Request) {
	s.serveHistory(w, r, audit.KindUser, func(ctx context.Context, id string) error {
		_, err := s.users.GetByID(ctx, id)
		return err
	}, "")
}

func (s *Server) handleAddressHistory(w http.ResponseWriter, r *http.Request) {
	s.serveHistory(w, r, audit.KindAddress, func(ctx context.Context, id string) error {
		_, err := s.addresses.GetByID(ctx, id)
		return err
	}, "")
}

// handleWarningHistory serves a company's warning history, optionally
// narrowed to a single warning via the warningId query parameter.
func (s *Server) handleWarningHistory(w http.ResponseWriter, r *http.Request) {
	refID := r.URL.Query().Get("warningId")
	s.serveHistory(w, r, audit.KindWarning, func(ctx context.Context, id string) error {
		_, err := s.companies.GetByID(ctx, id)
		return err
	}, refID)
}
