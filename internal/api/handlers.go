// Package api exposes HTTP handlers for the habit service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Marjona6/sproutish/internal/auth"
	"github.com/Marjona6/sproutish/internal/catalog"
	"github.com/Marjona6/sproutish/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
	catalog *catalog.Catalog
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, cat *catalog.Catalog) *Handler {
	return &Handler{service: service, catalog: cat}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/habits/today", h.todaysHabit)
	mux.HandleFunc("/v1/habits/progress", h.progress)
	mux.HandleFunc("/v1/habits/blocked", h.blockHabit)
	mux.HandleFunc("/v1/habits/", h.assignmentAction)
	mux.HandleFunc("/v1/catalog", h.listCatalog)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) todaysHabit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	claims, ok := readClaims(w, r)
	if !ok {
		return
	}

	categories := parseCategories(r.URL.Query().Get("categories"))

	result, err := h.service.GetTodaysHabit(r.Context(), claims.Subject, categories)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TodaysHabitResponse{
		Assignment: toAssignmentView(result.Assignment),
		Habit:      toHabitView(result.Habit),
		Mode:       string(result.Mode),
		Ephemeral:  result.Ephemeral,
	})
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	claims, ok := readClaims(w, r)
	if !ok {
		return
	}

	progress := h.service.GetProgress(r.Context(), claims.Subject)
	writeJSON(w, http.StatusOK, ProgressResponse{
		TotalHabits:     progress.TotalHabits,
		CompletedHabits: progress.CompletedHabits,
		CurrentStreak:   progress.CurrentStreak,
		LongestStreak:   progress.LongestStreak,
		CompletionRate:  progress.CompletionRate,
	})
}

// assignmentAction handles POST /v1/habits/{id}/complete and /{id}/skip.
func (h *Handler) assignmentAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/habits/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing assignment id")
		return
	}
	assignmentID, action := parts[0], parts[1]

	claims, ok := writeClaims(w, r)
	if !ok {
		return
	}

	var err error
	switch action {
	case "complete":
		err = h.service.MarkComplete(r.Context(), assignmentID, claims.Subject)
	case "skip":
		err = h.service.SkipToday(r.Context(), assignmentID, claims.Subject)
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown action")
		return
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AssignmentActionResponse{AssignmentID: assignmentID, Action: action})
}

func (h *Handler) blockHabit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	claims, ok := writeClaims(w, r)
	if !ok {
		return
	}

	var req BlockHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.service.BlockHabit(r.Context(), req.HabitID, claims.Subject); err != nil {
		// The id came from the client here, so an unknown habit is their
		// mistake rather than a data integrity failure.
		if errors.Is(err, domain.ErrHabitNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "unknown habit id")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BlockHabitResponse{HabitID: req.HabitID, Blocked: true})
}

func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	if _, ok := readClaims(w, r); !ok {
		return
	}

	var habits []domain.Habit
	if raw := r.URL.Query().Get("category"); raw != "" {
		habits = h.catalog.ByCategory(domain.Category(raw))
	} else {
		habits = h.catalog.All()
	}

	items := make([]HabitView, 0, len(habits))
	for _, habit := range habits {
		items = append(items, toHabitView(habit))
	}
	writeJSON(w, http.StatusOK, CatalogResponse{Items: items})
}

// readClaims authorizes read endpoints: either scope is acceptable.
func readClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if !claims.HasScope(auth.ScopeHabitsRead) && !claims.HasScope(auth.ScopeHabitsWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope habits:read required")
		return nil, false
	}
	return claims, true
}

// writeClaims authorizes mutation endpoints.
func writeClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if !claims.HasScope(auth.ScopeHabitsWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope habits:write required")
		return nil, false
	}
	return claims, true
}

// parseCategories splits the comma-separated filter; an absent filter means
// every category.
func parseCategories(raw string) []domain.Category {
	if strings.TrimSpace(raw) == "" {
		return domain.Categories()
	}
	parts := strings.Split(raw, ",")
	out := make([]domain.Category, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, domain.Category(trimmed))
		}
	}
	return out
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoMatchingHabit):
		writeError(w, http.StatusConflict, "no_matching_habit", "no habits remain in the selected categories; broaden categories or unblock habits")
	case errors.Is(err, domain.ErrAssignmentNotFound):
		writeError(w, http.StatusNotFound, "not_found", "daily assignment not found")
	case errors.Is(err, domain.ErrHabitNotFound):
		writeError(w, http.StatusInternalServerError, "data_integrity", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// TodaysHabitResponse pairs the resolved assignment with its definition.
type TodaysHabitResponse struct {
	Assignment AssignmentView `json:"assignment"`
	Habit      HabitView      `json:"habit"`
	Mode       string         `json:"mode"`
	Ephemeral  bool           `json:"ephemeral,omitempty"`
}

// AssignmentView exposes one daily assignment.
type AssignmentView struct {
	AssignmentID string     `json:"assignment_id"`
	HabitID      string     `json:"habit_id"`
	Date         string     `json:"date"`
	UserID       string     `json:"user_id"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Skipped      bool       `json:"skipped,omitempty"`
	SkippedAt    *time.Time `json:"skipped_at,omitempty"`
}

// HabitView exposes one catalog definition.
type HabitView struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	EstimatedTime string   `json:"estimated_time"`
	Tips          []string `json:"tips"`
	Benefits      []string `json:"benefits"`
	Icon          string   `json:"icon"`
	Color         string   `json:"color"`
}

// ProgressResponse reports completion statistics.
type ProgressResponse struct {
	TotalHabits     int     `json:"total_habits"`
	CompletedHabits int     `json:"completed_habits"`
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	CompletionRate  float64 `json:"completion_rate"`
}

// AssignmentActionResponse acknowledges a complete/skip mutation.
type AssignmentActionResponse struct {
	AssignmentID string `json:"assignment_id"`
	Action       string `json:"action"`
}

// BlockHabitRequest is the payload for POST /v1/habits/blocked.
type BlockHabitRequest struct {
	HabitID string `json:"habit_id"`
}

// Validate ensures request correctness.
func (r BlockHabitRequest) Validate() error {
	if strings.TrimSpace(r.HabitID) == "" {
		return errors.New("habit_id is required")
	}
	return nil
}

// BlockHabitResponse acknowledges a block mutation.
type BlockHabitResponse struct {
	HabitID string `json:"habit_id"`
	Blocked bool   `json:"blocked"`
}

// CatalogResponse packages catalog listings.
type CatalogResponse struct {
	Items []HabitView `json:"items"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toAssignmentView(a domain.DailyAssignment) AssignmentView {
	return AssignmentView{
		AssignmentID: a.ID,
		HabitID:      a.HabitID,
		Date:         a.Date,
		UserID:       a.UserID,
		Completed:    a.Completed,
		CompletedAt:  a.CompletedAt,
		Skipped:      a.Skipped,
		SkippedAt:    a.SkippedAt,
	}
}

func toHabitView(h domain.Habit) HabitView {
	return HabitView{
		ID:            h.ID,
		Title:         h.Title,
		Description:   h.Description,
		Category:      string(h.Category),
		Difficulty:    string(h.Difficulty),
		EstimatedTime: h.EstimatedTime,
		Tips:          h.Tips,
		Benefits:      h.Benefits,
		Icon:          h.Icon,
		Color:         h.Color,
	}
}
