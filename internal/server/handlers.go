package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/salonhub/booking-calendar/internal/calendar"
	"github.com/salonhub/booking-calendar/internal/service"
)

// GET /services?search=
func (s *Server) listServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	services, err := s.svc.ListServices(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list services failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": services})
}

// GET /masters?search=
func (s *Server) listMasters(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	masters, err := s.svc.ListMasters(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list masters failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": masters})
}

// GET /appointments?since&until&serviceIds&masterIds&search&page&perPage
func (s *Server) listAppointments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.svc.ListAppointments(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list appointments failed")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// POST /appointments
func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in service.CreateAppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	appointment, err := s.svc.CreateAppointment(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "create appointment failed")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": appointment})
}

// GET /day-statuses?year&month
// month нумеруется с нуля и может выходить за 0..11 (клиент запрашивает
// month±1 как есть): переполнение нормализуется как в JS Date —
// month=-1 означает декабрь предыдущего года.
func (s *Server) dayStatuses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	year, month, err := parseYearMonth(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": s.svc.DayStatuses(year, month)})
}

// GET /calendar?year&month&serviceIds&masterIds&search
func (s *Server) monthGrid(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	year, month, err := parseYearMonth(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	serviceIDs, err := parseIDs(q["serviceIds"], "serviceIds")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	masterIDs, err := parseIDs(q["masterIds"], "masterIds")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	weeks, err := s.svc.MonthGrid(r.Context(), year, month, service.GridFilter{
		ServiceIDs: serviceIDs,
		MasterIDs:  masterIDs,
		Search:     q.Get("search"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "month grid failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": weeks})
}

// parseFilter валидирует параметры выборки встреч. Ядро рассчитывает
// на провалидированный вход, поэтому все ошибки ловятся здесь.
func parseFilter(q url.Values) (calendar.Filter, error) {
	var f calendar.Filter

	if raw := q.Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, fmt.Errorf("invalid since: %q", raw)
		}
		f.Since = &t
	}
	if raw := q.Get("until"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, fmt.Errorf("invalid until: %q", raw)
		}
		f.Until = &t
	}

	var err error
	if f.ServiceIDs, err = parseIDs(q["serviceIds"], "serviceIds"); err != nil {
		return f, err
	}
	if f.MasterIDs, err = parseIDs(q["masterIds"], "masterIds"); err != nil {
		return f, err
	}

	f.Search = q.Get("search")

	if f.Page, err = parsePositiveInt(q, "page", 1); err != nil {
		return f, err
	}
	if f.PerPage, err = parsePositiveInt(q, "perPage", calendar.DefaultPerPage); err != nil {
		return f, err
	}

	return f, nil
}

func parseIDs(raw []string, param string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", param, r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parsePositiveInt(q url.Values, param string, def int) (int, error) {
	raw := q.Get(param)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s: %q", param, raw)
	}
	return n, nil
}

func parseYearMonth(q url.Values) (int, time.Month, error) {
	rawYear := q.Get("year")
	rawMonth := q.Get("month")
	if rawYear == "" || rawMonth == "" {
		return 0, 0, fmt.Errorf("missing year or month")
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year: %q", rawYear)
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month: %q", rawMonth)
	}

	// time.Date нормализует выход за границы года.
	norm := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	return norm.Year(), norm.Month(), nil
}
