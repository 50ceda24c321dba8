package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/salonhub/booking-calendar/internal/calendar"
	"github.com/salonhub/booking-calendar/internal/model"
	"github.com/salonhub/booking-calendar/internal/repository"
)

// CalendarService — типизированная граница ядра: каталог услуг и
// мастеров, выборка и создание записей, статусы дней и месячная сетка.
type CalendarService struct {
	serviceRepo     repository.ServiceRepository
	masterRepo      repository.MasterRepository
	appointmentRepo repository.AppointmentRepository

	weekStart time.Weekday
}

func NewCalendarService(
	serviceRepo repository.ServiceRepository,
	masterRepo repository.MasterRepository,
	appointmentRepo repository.AppointmentRepository,
	weekStart time.Weekday,
) *CalendarService {
	return &CalendarService{
		serviceRepo:     serviceRepo,
		masterRepo:      masterRepo,
		appointmentRepo: appointmentRepo,
		weekStart:       weekStart,
	}
}

// ListServices возвращает услуги, отфильтрованные подстрочным поиском
// по имени без учёта регистра.
func (s *CalendarService) ListServices(ctx context.Context, search string) ([]model.Service, error) {
	return s.serviceRepo.List(ctx, search)
}

// ListMasters возвращает мастеров, та же семантика поиска.
func (s *CalendarService) ListMasters(ctx context.Context, search string) ([]model.Master, error) {
	return s.masterRepo.List(ctx, search)
}

// ListAppointments выгружает коллекцию целиком в порядке вставки и
// прогоняет её через движок выборки.
func (s *CalendarService) ListAppointments(ctx context.Context, f calendar.Filter) (calendar.Page[model.Appointment], error) {
	all, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return calendar.Page[model.Appointment]{}, fmt.Errorf("list appointments: %w", err)
	}
	return calendar.QueryAppointments(all, f), nil
}

// CreateAppointmentInput — сырые поля запроса на создание записи.
type CreateAppointmentInput struct {
	At           string  `json:"at"`
	ServiceID    string  `json:"serviceId"`
	MasterID     string  `json:"masterId"`
	CustomerName string  `json:"customerName"`
	Notes        *string `json:"notes"`
	Status       string  `json:"status"`
}

// CreateAppointment валидирует вход, резолвит услугу и мастера,
// снимает их снапшоты и добавляет запись в хранилище.
//
// Вся валидация выполняется до единственной вставки: неуспешный вызов
// оставляет хранилище нетронутым. Статус дня не проверяется — создание
// на closed/blocked день допустимо.
func (s *CalendarService) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*model.Appointment, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("customerName is required: %w", ErrInvalidInput)
	}

	at, err := time.Parse(time.RFC3339, in.At)
	if err != nil {
		return nil, fmt.Errorf("at %q: %w", in.At, ErrInvalidInput)
	}

	status, err := createStatus(in.Status)
	if err != nil {
		return nil, err
	}

	svc, err := s.resolveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	master, err := s.resolveMaster(ctx, in.MasterID)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ID:           uuid.New(),
		CustomerName: in.CustomerName,
		At:           at,
		Service:      datatypes.NewJSONType(svc.Snapshot()),
		Master:       datatypes.NewJSONType(master.Snapshot()),
		Notes:        in.Notes,
		Status:       status,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

// createStatus проверяет статус новой записи. cancelled при создании
// недопустим, пустой статус означает new.
func createStatus(raw string) (model.AppointmentStatus, error) {
	switch model.AppointmentStatus(raw) {
	case "":
		return model.AppointmentStatusNew, nil
	case model.AppointmentStatusNew, model.AppointmentStatusConfirmed, model.AppointmentStatusPaid:
		return model.AppointmentStatus(raw), nil
	default:
		return "", fmt.Errorf("status %q: %w", raw, ErrInvalidInput)
	}
}

func (s *CalendarService) resolveService(ctx context.Context, id string) (*model.Service, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("serviceId %q: %w", id, ErrNotFound)
	}
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("serviceId %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *CalendarService) resolveMaster(ctx context.Context, id string) (*model.Master, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("masterId %q: %w", id, ErrNotFound)
	}
	m, err := s.masterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("masterId %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get master: %w", err)
	}
	return m, nil
}

// DayStatuses возвращает статусы всех дней месяца по порядку.
// Функция чистая, хранилище не трогает.
func (s *CalendarService) DayStatuses(year int, month time.Month) []calendar.DayStatus {
	return calendar.MonthStatuses(year, month)
}

// GridFilter — фильтры месячной сетки (без пагинации: сетке нужен
// весь месяц).
type GridFilter struct {
	ServiceIDs []uuid.UUID
	MasterIDs  []uuid.UUID
	Search     string
}

// MonthGrid собирает серверную месячную сетку: три прохода
// классификатора (предыдущий/текущий/следующий месяц) плюс выборка
// встреч за границы месяца, слитые построителем матрицы.
func (s *CalendarService) MonthGrid(ctx context.Context, year int, month time.Month, f GridFilter) ([][]calendar.Cell, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	statuses := calendar.MonthStatusSet{
		Current:  calendar.MonthStatuses(year, month),
		Previous: calendar.MonthStatuses(prev.Year(), prev.Month()),
		Next:     calendar.MonthStatuses(next.Year(), next.Month()),
	}

	// Встречи берём за весь месяц: [первое число, последний момент
	// последнего дня]. Граница в наносекунду, а не в секунду: метки
	// времени бывают с дробными секундами.
	since := first
	until := next.Add(-time.Nanosecond)

	all, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("month grid: %w", err)
	}
	page := calendar.QueryAppointments(all, calendar.Filter{
		Since:      &since,
		Until:      &until,
		ServiceIDs: f.ServiceIDs,
		MasterIDs:  f.MasterIDs,
		Search:     f.Search,
		Page:       1,
		PerPage:    len(all) + 1,
	})

	return calendar.BuildMonthGrid(year, month, time.Now().UTC(), statuses, page.Items, s.weekStart), nil
}
