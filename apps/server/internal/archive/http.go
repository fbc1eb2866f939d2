package archive

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clocktower-lite/apps/server/internal/auth"
	"clocktower-lite/record"
)

type HTTPHandler struct {
	auth    auth.Service
	archive Service
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(authService auth.Service, archiveService Service) *HTTPHandler {
	return &HTTPHandler{
		auth:    authService,
		archive: archiveService,
	}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/archive/recent", h.handleRecent)
	mux.HandleFunc("/api/archive/records/", h.handleRecord)
}

func (h *HTTPHandler) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	userID, ok := h.resolveUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid session token")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	items, err := h.archive.ListRecent(ctx, userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query recent setups failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *HTTPHandler) handleRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	userID, ok := h.resolveUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid session token")
		return
	}

	id := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/api/archive/records/"))
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	rec, err := h.archive.Get(ctx, userID, id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query record failed")
		return
	}

	writeJSON(w, http.StatusOK, record.ToWireRecord(rec))
}

func (h *HTTPHandler) resolveUserID(r *http.Request) (uint64, bool) {
	userID, _, ok := h.auth.ResolveSession(auth.BearerToken(r))
	return userID, ok
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
