// Package server — HTTP-граница ядра: разбор и валидация запросов,
// сериализация ответов. Бизнес-логики здесь нет, всё делегируется
// CalendarService.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/salonhub/booking-calendar/internal/service"
)

type Server struct {
	svc *service.CalendarService
}

func New(svc *service.CalendarService) *Server {
	return &Server{svc: svc}
}

// Router регистрирует все маршруты API.
func (s *Server) Router() *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", health)

	router.GET("/services", s.listServices)
	router.GET("/masters", s.listMasters)
	router.GET("/appointments", s.listAppointments)
	router.POST("/appointments", s.createAppointment)
	router.GET("/day-statuses", s.dayStatuses)
	router.GET("/calendar", s.monthGrid)

	return router
}

func health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("200"))
}

// LoggingMiddleware логирует метод, путь, адрес клиента и длительность.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
