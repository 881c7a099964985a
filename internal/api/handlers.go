// Package api exposes HTTP handlers for the exercise tracker.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"example.com/exercisetracker/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", index)
	mux.HandleFunc("/api/users", h.users)
	mux.HandleFunc("/api/users/", h.userSubresource)
	mux.HandleFunc("/healthz", healthz)
}

// index serves the embedded landing page at the root path only.
func index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createUser(w, r)
	case http.MethodGet:
		h.listUsers(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// userSubresource dispatches /api/users/{id}/exercises and
// /api/users/{id}/logs.
func (h *Handler) userSubresource(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/users/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}

	userID := parts[0]
	switch parts[1] {
	case "exercises":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.addExercise(w, r, userID)
	case "logs":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.getLog(w, r, userID)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CreateUser(r.Context(), r.FormValue("username"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toUserView(*user))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request, userID string) {
	description := r.FormValue("description")
	if strings.TrimSpace(description) == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	duration, err := parseDuration(r.FormValue("duration"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var date time.Time
	if raw := r.FormValue("date"); raw != "" {
		date, err = parseDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	user, exercise, err := h.service.AddExercise(r.Context(), domain.AddExerciseInput{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExerciseView{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
	})
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request, userID string) {
	query := r.URL.Query()

	var filter domain.LogFilter
	if raw := query.Get("from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter.To = &to
	}
	filter.Limit = parseLimit(query.Get("limit"))

	user, exercises, err := h.service.GetLog(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	entries := make([]LogEntryView, 0, len(exercises))
	for _, exercise := range exercises {
		entries = append(entries, LogEntryView{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.DateString(),
		})
	}

	writeJSON(w, http.StatusOK, LogView{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	})
}

// UserView is the projection returned by the user endpoints.
type UserView struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// ExerciseView is the response body for a logged exercise, combining
// the owning user with the stored record. The date is the fixed
// calendar string, not a machine timestamp.
type ExerciseView struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntryView is a single projected exercise inside a log response.
type LogEntryView struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogView packages a user's filtered exercise log.
type LogView struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Count    int            `json:"count"`
	Log      []LogEntryView `json:"log"`
}

func toUserView(user domain.User) UserView {
	return UserView{Username: user.Username, ID: user.ID}
}

// writeServiceError maps domain errors to the two HTTP error shapes:
// 404 plain text for an unresolved user, 500 with the raw error text
// for storage failures.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUserNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
