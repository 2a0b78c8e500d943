package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-strings/pkg/simplestrings"
)

// CreateStringRequest is the request body for creating a string
type CreateStringRequest struct {
	Value string `json:"value"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// StringsHandler handles HTTP requests for analyzed strings
type StringsHandler struct {
	service simplestrings.Service
}

// NewStringsHandler creates a new strings handler
func NewStringsHandler(service simplestrings.Service) *StringsHandler {
	return &StringsHandler{service: service}
}

// Routes returns the routes for strings
func (h *StringsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateString)
	r.Get("/", h.ListStrings)
	r.Get("/filter-by-natural-language", h.FilterByNaturalLanguage)
	r.Get("/{value}", h.GetString)
	r.Delete("/{value}", h.DeleteString)

	return r
}

// CreateString analyzes and stores the posted value
func (h *StringsHandler) CreateString(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := decodeBody(r.Body, &body); err != nil {
		slog.Error("Invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	raw, ok := body["value"]
	if !ok {
		writeError(w, r, http.StatusUnprocessableEntity, `Missing required field "value"`)
		return
	}
	var req CreateStringRequest
	if err := json.Unmarshal(raw, &req.Value); err != nil || string(raw) == "null" {
		writeError(w, r, http.StatusUnprocessableEntity, `Field "value" must be a string`)
		return
	}

	record, err := h.service.CreateString(r.Context(), req.Value)
	if err != nil {
		if errors.Is(err, simplestrings.ErrInvalidInput) {
			writeError(w, r, http.StatusUnprocessableEntity, `Field "value" must be a non-empty string`)
			return
		}
		h.handleError(w, r, "Failed to create string", err)
		return
	}

	slog.Info("String created", "id", record.ID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, record)
}

// GetString retrieves a string by its literal value
func (h *StringsHandler) GetString(w http.ResponseWriter, r *http.Request) {
	value, err := pathValue(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid string in path")
		return
	}

	record, err := h.service.GetString(r.Context(), value)
	if err != nil {
		h.handleError(w, r, "Failed to get string", err)
		return
	}

	render.JSON(w, r, record)
}

// ListStrings lists strings matching the query-parameter filters
func (h *StringsHandler) ListStrings(w http.ResponseWriter, r *http.Request) {
	filters, err := simplestrings.ParseFilterSet(r.URL.Query())
	if err != nil {
		h.handleError(w, r, "Invalid filters", err)
		return
	}

	result, err := h.service.ListStrings(r.Context(), filters)
	if err != nil {
		h.handleError(w, r, "Failed to list strings", err)
		return
	}

	render.JSON(w, r, result)
}

// FilterByNaturalLanguage lists strings matching a free-text query
func (h *StringsHandler) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, r, http.StatusBadRequest, `Missing required parameter "query"`)
		return
	}

	result, err := h.service.QueryNaturalLanguage(r.Context(), query)
	if err != nil {
		h.handleError(w, r, "Failed to interpret query", err)
		return
	}

	render.JSON(w, r, result)
}

// DeleteString removes a string by its literal value
func (h *StringsHandler) DeleteString(w http.ResponseWriter, r *http.Request) {
	value, err := pathValue(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid string in path")
		return
	}

	if err := h.service.DeleteString(r.Context(), value); err != nil {
		h.handleError(w, r, "Failed to delete string", err)
		return
	}

	slog.Info("String deleted", "id", simplestrings.Digest(value))
	w.WriteHeader(http.StatusNoContent)
}

// handleError maps service errors to status codes
func (h *StringsHandler) handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, simplestrings.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, simplestrings.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, "String already exists in the system")
	case errors.Is(err, simplestrings.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "String does not exist in the system")
	case errors.Is(err, simplestrings.ErrUnparseableQuery):
		writeError(w, r, http.StatusBadRequest, "Unable to parse natural language query")
	case errors.Is(err, simplestrings.ErrConflictingFilters):
		writeError(w, r, http.StatusUnprocessableEntity, "Query parsed but resulted in conflicting filters")
	default:
		slog.Error(msg, "error", err)
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// pathValue returns the decoded {value} URL parameter. chi matches on the raw
// path when one is present, leaving the parameter escaped.
// decodeBody decodes exactly one JSON value and rejects anything after it.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func pathValue(r *http.Request) (string, error) {
	value := chi.URLParam(r, "value")
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: msg})
}
