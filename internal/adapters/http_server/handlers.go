// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aadhira_hotel/internal/app"
	"aadhira_hotel/internal/catalog"
	"aadhira_hotel/internal/domain"
)

const maxUtterance = 2000

type Handlers struct {
	Resolver   *app.Resolver
	Ledger     domain.RequestLedger
	Catalog    *catalog.Catalog
	CallNumber string
	Timeout    time.Duration
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type sessionRequest struct {
	Utterance string `json:"utterance"`
}

type sessionResponse struct {
	SessionID string       `json:"session_id"`
	Greeting  domain.Reply `json:"greeting"`
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

type quickRequest struct {
	Kind        domain.RequestKind `json:"kind"`
	Description string             `json:"description"`
}

type quickResponse struct {
	Request domain.ServiceRequest `json:"request"`
	Message string                `json:"message"`
}

type requestCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

type requestsResponse struct {
	Requests []domain.ServiceRequest `json:"requests"`
	Counts   requestCounts           `json:"counts"`
}

type menuSection struct {
	Category domain.Category      `json:"category"`
	Items    []domain.ServiceItem `json:"items"`
}

func (s *Server) MountHandlers(h *Handlers) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Group(func(r chi.Router) {
		r.Use(Timeout(timeout))
		r.Use(MaxBody(64 << 10))
		r.Post("/v1/sessions", h.createSession)
		r.Delete("/v1/sessions/{id}", h.endSession)
		r.Post("/v1/chat", h.chat)
		r.Get("/v1/requests", h.listRequests)
		r.Post("/v1/requests", h.submitRequest)
		r.Get("/v1/menu", h.menu)
	})
	s.mux.Get("/v1/call", h.call)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

// decode reads a JSON body; an empty body leaves dst untouched when optional.
func decode(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		writeProblem(w, http.StatusRequestEntityTooLarge, "Body Too Large", "request body exceeds limit")
		return false
	}
	writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
	return false
}

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) {
	var in sessionRequest
	if !decode(w, r, &in, true) {
		return
	}
	id := uuid.NewString()
	greeting := h.Resolver.Greet(r.Context(), id, in.Utterance)
	noteTurn(r, id, greeting)
	w.Header().Set("Content-Language", greeting.Language)
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id, Greeting: greeting})
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var in chatRequest
	if !decode(w, r, &in, false) {
		return
	}
	if strings.TrimSpace(in.SessionID) == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Session", "session_id is required")
		return
	}
	if len(in.Text) > maxUtterance {
		writeProblem(w, http.StatusBadRequest, "Utterance Too Long", "text must be at most 2000 bytes")
		return
	}
	reply := h.Resolver.Resolve(r.Context(), in.SessionID, in.Text)
	noteTurn(r, in.SessionID, reply)
	w.Header().Set("Content-Language", reply.Language)
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) endSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Resolver.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Session Store Unavailable", "could not end session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listRequests(w http.ResponseWriter, r *http.Request) {
	all := h.Ledger.All()
	s := h.Ledger.Summary()
	writeCached(w, r, requestsResponse{
		Requests: all,
		Counts: requestCounts{
			Pending:    len(s.Pending),
			InProgress: len(s.InProgress),
			Completed:  len(s.Completed),
			Total:      s.Total(),
		},
	})
}

func (h *Handlers) submitRequest(w http.ResponseWriter, r *http.Request) {
	var in quickRequest
	if !decode(w, r, &in, false) {
		return
	}
	if !in.Kind.Valid() {
		writeProblem(w, http.StatusBadRequest, "Invalid Kind", "kind must be room-service, housekeeping or maintenance")
		return
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Description", "description is required")
		return
	}
	req, msg := h.Resolver.Router().QuickRequest(in.Kind, desc)
	writeJSON(w, http.StatusCreated, quickResponse{Request: req, Message: msg})
}

// menu lists orderable items by category; ?all=true also lists the
// unavailable ones with their available flag.
func (h *Handlers) menu(w http.ResponseWriter, r *http.Request) {
	all := r.URL.Query().Get("all") == "true"
	byCat := make(map[domain.Category][]domain.ServiceItem, len(domain.Categories))
	for _, it := range h.Catalog.Items() {
		if all || it.Available {
			byCat[it.Category] = append(byCat[it.Category], it)
		}
	}
	sections := make([]menuSection, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		if items := byCat[cat]; len(items) > 0 {
			sections = append(sections, menuSection{Category: cat, Items: items})
		}
	}
	writeCached(w, r, sections)
}
