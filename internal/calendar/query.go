package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/booking-calendar/internal/model"
)

// Filter — параметры выборки встреч. nil/пустые поля означают
// отсутствие соответствующего фильтра; границы диапазона включительны.
type Filter struct {
	Since *time.Time
	Until *time.Time

	ServiceIDs []uuid.UUID
	MasterIDs  []uuid.UUID

	// Подстрочный поиск по имени клиента без учёта регистра.
	Search string

	Page    int
	PerPage int
}

// QueryAppointments фильтрует, сортирует и пагинирует коллекцию встреч.
//
// Порядок шагов фиксирован: сначала все фильтры, затем устойчивая
// сортировка по времени (при равном времени сохраняется порядок
// вставки), и только потом пагинация — Total отражает выборку целиком.
// Страница за пределами выборки даёт пустой срез, это не ошибка.
// Вход считается провалидированным на границе (см. internal/server).
func QueryAppointments(all []model.Appointment, f Filter) Page[model.Appointment] {
	filtered := make([]model.Appointment, 0, len(all))

	serviceSet := idSet(f.ServiceIDs)
	masterSet := idSet(f.MasterIDs)
	search := strings.ToLower(f.Search)

	for _, a := range all {
		if f.Since != nil && a.At.Before(*f.Since) {
			continue
		}
		if f.Until != nil && a.At.After(*f.Until) {
			continue
		}
		if serviceSet != nil {
			if _, ok := serviceSet[a.ServiceID()]; !ok {
				continue
			}
		}
		if masterSet != nil {
			if _, ok := masterSet[a.MasterID()]; !ok {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(a.CustomerName), search) {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].At.Before(filtered[j].At)
	})

	return Paginate(filtered, f.Page, f.PerPage)
}

// idSet строит множество id; пустой список эквивалентен отсутствию
// фильтра и даёт nil.
func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
