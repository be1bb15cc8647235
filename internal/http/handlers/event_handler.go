package handlers

import (
	"net/http"
	"strconv"

	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/http/middleware"
	"github.com/planventura/eventos-api/internal/http/response"
	"github.com/planventura/eventos-api/internal/logger"
)

// The event form arrives as multipart/form-data because it may carry an
// image. 10 MiB covers the form plus any poster the frontend accepts.
const maxEventFormSize = 10 << 20

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	if events == nil {
		events = []domain.EventDetail{}
	}
	response.WriteJSON(w, http.StatusOK, events)
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid event id")
		return
	}

	event, err := h.events.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, event)
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	if err := r.ParseMultipartForm(maxEventFormSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req, ok := h.eventRequestFromForm(w, r)
	if !ok {
		return
	}

	event, err := h.events.Create(r.Context(), claims.Sub, req)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, event)
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid event id")
		return
	}

	if err := r.ParseMultipartForm(maxEventFormSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := &domain.UpdateEventRequest{
		EventName:         formString(r, "event_name"),
		Description:       formString(r, "description"),
		EventDate:         formString(r, "event_date"),
		StartTime:         formString(r, "start_time"),
		EndTime:           formString(r, "end_time"),
		Preference1:       formString(r, "preference_1"),
		Preference2:       formString(r, "preference_2"),
		Preference3:       formString(r, "preference_3"),
		WeatherPreference: formString(r, "weather_preference"),
	}

	var ok2 bool
	if req.Price, ok2 = formFloat(w, r, "price"); !ok2 {
		return
	}
	if req.Lat, ok2 = formFloat(w, r, "lat"); !ok2 {
		return
	}
	if req.Lng, ok2 = formFloat(w, r, "lng"); !ok2 {
		return
	}
	if req.Availability, ok2 = formInt(w, r, "availability"); !ok2 {
		return
	}
	if req.LocationID, ok2 = formInt64(w, r, "location_id"); !ok2 {
		return
	}

	image, ok2 := h.saveFormImage(w, r)
	if !ok2 {
		return
	}
	if image != nil {
		req.Image = image
	}

	event, err := h.events.Update(r.Context(), id, claims.Sub, req)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, event)
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid event id")
		return
	}

	if err := h.events.Delete(r.Context(), id, claims.Sub); err != nil {
		response.DomainError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ListOrganizerEvents returns the authenticated organizer's own events,
// newest first.
func (h *Handlers) ListOrganizerEvents(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionClaims(r)

	events, err := h.events.ListByOrganizer(r.Context(), claims.Sub)
	if err != nil {
		response.DomainError(w, r, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

func (h *Handlers) eventRequestFromForm(w http.ResponseWriter, r *http.Request) (*domain.CreateEventRequest, bool) {
	req := &domain.CreateEventRequest{
		EventName:         r.FormValue("event_name"),
		Description:       r.FormValue("description"),
		EventDate:         r.FormValue("event_date"),
		StartTime:         r.FormValue("start_time"),
		EndTime:           r.FormValue("end_time"),
		Preference1:       formString(r, "preference_1"),
		Preference2:       formString(r, "preference_2"),
		Preference3:       formString(r, "preference_3"),
		WeatherPreference: formString(r, "weather_preference"),
	}

	var errs domain.ValidationErrors
	var err error
	if v := r.FormValue("price"); v != "" {
		if req.Price, err = strconv.ParseFloat(v, 64); err != nil {
			errs = append(errs, domain.ValidationError{Field: "price", Message: "must be a number"})
		}
	}
	if v := r.FormValue("availability"); v != "" {
		if req.Availability, err = strconv.Atoi(v); err != nil {
			errs = append(errs, domain.ValidationError{Field: "availability", Message: "must be a number"})
		}
	}
	if v := r.FormValue("lat"); v != "" {
		if req.Lat, err = strconv.ParseFloat(v, 64); err != nil {
			errs = append(errs, domain.ValidationError{Field: "lat", Message: "must be a number"})
		}
	}
	if v := r.FormValue("lng"); v != "" {
		if req.Lng, err = strconv.ParseFloat(v, 64); err != nil {
			errs = append(errs, domain.ValidationError{Field: "lng", Message: "must be a number"})
		}
	}
	if v := r.FormValue("location_id"); v != "" {
		if req.LocationID, err = strconv.ParseInt(v, 10, 64); err != nil {
			errs = append(errs, domain.ValidationError{Field: "location_id", Message: "must be a number"})
		}
	}
	if len(errs) > 0 {
		response.ValidationFailed(w, errs)
		return nil, false
	}

	image, ok := h.saveFormImage(w, r)
	if !ok {
		return nil, false
	}
	req.Image = image

	return req, true
}

// saveFormImage stores the uploaded "image" part, if any, and returns the
// public path the event row will record. No file part is not an error.
func (h *Handlers) saveFormImage(w http.ResponseWriter, r *http.Request) (*string, bool) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, true
	}
	if err != nil {
		response.BadRequest(w, "Invalid image upload")
		return nil, false
	}
	defer file.Close()

	path, err := h.blobs.Save(r.Context(), header.Filename, file)
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to store image", "error", err)
		response.InternalError(w)
		return nil, false
	}
	return &path, true
}

func formString(r *http.Request, name string) *string {
	if vs, ok := r.MultipartForm.Value[name]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

func formFloat(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	s := formString(r, name)
	if s == nil {
		return nil, true
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		response.ValidationFailed(w, domain.ValidationErrors{{Field: name, Message: "must be a number"}})
		return nil, false
	}
	return &f, true
}

func formInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	s := formString(r, name)
	if s == nil {
		return nil, true
	}
	i, err := strconv.Atoi(*s)
	if err != nil {
		response.ValidationFailed(w, domain.ValidationErrors{{Field: name, Message: "must be a number"}})
		return nil, false
	}
	return &i, true
}

func formInt64(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	s := formString(r, name)
	if s == nil {
		return nil, true
	}
	i, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		response.ValidationFailed(w, domain.ValidationErrors{{Field: name, Message: "must be a number"}})
		return nil, false
	}
	return &i, true
}
