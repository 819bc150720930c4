package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/service"
)

type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

type eventRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Organizer    string `json:"organizer"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	MaxAttendees int    `json:"max_attendees"`
}

func (req *eventRequest) toDomain() (*domain.Event, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Event{
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Time:         req.Time,
		Location:     req.Location,
		Organizer:    req.Organizer,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		MaxAttendees: req.MaxAttendees,
	}, nil
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	event, err := req.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be yyyy-mm-dd"})
		return
	}
	if err := h.eventSvc.CreateEvent(r.Context(), event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	event, err := req.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be yyyy-mm-dd"})
		return
	}
	event.ID = mux.Vars(r)["id"]
	if err := h.eventSvc.UpdateEvent(r.Context(), event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.eventSvc.DeleteEvent(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventSvc.GetEvent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// ListEvents lists upcoming events, or a single month when ?year=&month=
// is given (the calendar view).
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("year") != "" || q.Get("month") != "" {
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "year must be numeric"})
			return
		}
		month, err := strconv.Atoi(q.Get("month"))
		if err != nil || month < 1 || month > 12 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "month must be 1-12"})
			return
		}
		events, err := h.eventSvc.ListEventsForMonth(r.Context(), year, time.Month(month))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
		return
	}

	page, pageSize := pagination(r)
	events, err := h.eventSvc.ListEvents(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}
