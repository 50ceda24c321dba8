package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/salonhub/booking-calendar/internal/model"
)

func queryAppointment(name string, at time.Time, serviceID, masterID uuid.UUID) model.Appointment {
	return model.Appointment{
		ID:           uuid.New(),
		CustomerName: name,
		At:           at,
		Service:      datatypes.NewJSONType(model.ServiceSnapshot{ID: serviceID, Name: "svc"}),
		Master:       datatypes.NewJSONType(model.MasterSnapshot{ID: masterID, Name: "mst"}),
		Status:       model.AppointmentStatusNew,
	}
}

// fixture: четыре записи в порядке вставки, у двух одинаковое время.
func queryFixture(t *testing.T) (all []model.Appointment, svcA, svcB, mstA, mstB uuid.UUID) {
	t.Helper()
	svcA, svcB = uuid.New(), uuid.New()
	mstA, mstB = uuid.New(), uuid.New()

	all = []model.Appointment{
		queryAppointment("Alice Brown", mustTime(t, 2025, time.May, 20, 10, 0), svcA, mstA),
		queryAppointment("Bob Smith", mustTime(t, 2025, time.May, 10, 9, 0), svcB, mstA),
		queryAppointment("Carol Jones", mustTime(t, 2025, time.May, 10, 9, 0), svcA, mstB),
		queryAppointment("alina davis", mustTime(t, 2025, time.May, 25, 15, 0), svcB, mstB),
	}
	return all, svcA, svcB, mstA, mstB
}

func TestQueryAppointments_SortedAscendingStable(t *testing.T) {
	all, _, _, _, _ := queryFixture(t)

	page := QueryAppointments(all, Filter{Page: 1, PerPage: 10})
	if page.Total != 4 {
		t.Fatalf("total: got %d, want 4", page.Total)
	}

	got := make([]string, 0, len(page.Items))
	for _, a := range page.Items {
		got = append(got, a.CustomerName)
	}
	// 10 мая: Bob вставлен раньше Carol, при равном времени порядок
	// вставки сохраняется.
	want := []string{"Bob Smith", "Carol Jones", "Alice Brown", "alina davis"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}

	// Повторный запрос не меняет порядок.
	again := QueryAppointments(all, Filter{Page: 1, PerPage: 10})
	for i := range page.Items {
		if page.Items[i].ID != again.Items[i].ID {
			t.Fatalf("repeated query reordered ties")
		}
	}
}

func TestQueryAppointments_DateRangeInclusive(t *testing.T) {
	all, _, _, _, _ := queryFixture(t)

	since := mustTime(t, 2025, time.May, 10, 9, 0)
	until := mustTime(t, 2025, time.May, 20, 10, 0)
	page := QueryAppointments(all, Filter{Since: &since, Until: &until, Page: 1, PerPage: 10})

	// Обе границы включительны: записи ровно на since и until входят.
	if page.Total != 3 {
		t.Fatalf("total: got %d, want 3", page.Total)
	}
	for _, a := range page.Items {
		if a.At.Before(since) || a.At.After(until) {
			t.Fatalf("appointment %v outside [since, until]", a.At)
		}
	}
}

func TestQueryAppointments_IDFilters(t *testing.T) {
	all, svcA, _, _, mstB := queryFixture(t)

	page := QueryAppointments(all, Filter{ServiceIDs: []uuid.UUID{svcA}, Page: 1, PerPage: 10})
	if page.Total != 2 {
		t.Fatalf("service filter: got %d, want 2", page.Total)
	}

	page = QueryAppointments(all, Filter{
		ServiceIDs: []uuid.UUID{svcA},
		MasterIDs:  []uuid.UUID{mstB},
		Page:       1,
		PerPage:    10,
	})
	if page.Total != 1 {
		t.Fatalf("service+master filter: got %d, want 1", page.Total)
	}
	if page.Items[0].CustomerName != "Carol Jones" {
		t.Fatalf("got %q, want Carol Jones", page.Items[0].CustomerName)
	}
}

func TestQueryAppointments_EmptyIDSetMeansNoFilter(t *testing.T) {
	all, _, _, _, _ := queryFixture(t)

	without := QueryAppointments(all, Filter{Page: 1, PerPage: 10})
	withEmpty := QueryAppointments(all, Filter{MasterIDs: []uuid.UUID{}, Page: 1, PerPage: 10})

	if without.Total != withEmpty.Total {
		t.Fatalf("empty masterIds changed total: %d vs %d", withEmpty.Total, without.Total)
	}
	for i := range without.Items {
		if without.Items[i].ID != withEmpty.Items[i].ID {
			t.Fatalf("empty masterIds changed the result set")
		}
	}
}

func TestQueryAppointments_SearchCaseInsensitive(t *testing.T) {
	all, _, _, _, _ := queryFixture(t)

	page := QueryAppointments(all, Filter{Search: "ALI", Page: 1, PerPage: 10})
	// "Alice Brown" и "alina davis".
	if page.Total != 2 {
		t.Fatalf("search: got %d, want 2", page.Total)
	}
}

func TestQueryAppointments_MoreRestrictiveNeverGrows(t *testing.T) {
	all, svcA, _, mstA, _ := queryFixture(t)
	since := mustTime(t, 2025, time.May, 10, 0, 0)

	loose := QueryAppointments(all, Filter{Since: &since, Page: 1, PerPage: 10})
	strict := QueryAppointments(all, Filter{
		Since:      &since,
		ServiceIDs: []uuid.UUID{svcA},
		MasterIDs:  []uuid.UUID{mstA},
		Search:     "a",
		Page:       1,
		PerPage:    10,
	})

	if strict.Total > loose.Total {
		t.Fatalf("stricter filter grew the result: %d > %d", strict.Total, loose.Total)
	}
}

func TestQueryAppointments_PaginationReassemblesExactly(t *testing.T) {
	all, _, _, _, _ := queryFixture(t)
	const perPage = 3

	full := QueryAppointments(all, Filter{Page: 1, PerPage: 100})

	var pieces []model.Appointment
	for p := 1; ; p++ {
		page := QueryAppointments(all, Filter{Page: p, PerPage: perPage})
		if page.Total != full.Total {
			t.Fatalf("page %d total: got %d, want %d", p, page.Total, full.Total)
		}
		if len(page.Items) == 0 {
			break
		}
		pieces = append(pieces, page.Items...)
	}

	if len(pieces) != len(full.Items) {
		t.Fatalf("reassembled %d items, want %d", len(pieces), len(full.Items))
	}
	for i := range pieces {
		if pieces[i].ID != full.Items[i].ID {
			t.Fatalf("page concatenation differs at %d", i)
		}
	}
}

func TestQueryAppointments_OutOfRangePageIsEmpty(t *testing.T) {
	all, _, _, _, _ := queryFixture(t)

	page := QueryAppointments(all, Filter{Page: 100, PerPage: 10})
	if len(page.Items) != 0 {
		t.Fatalf("out-of-range page returned %d items", len(page.Items))
	}
	if page.Total != 4 {
		t.Fatalf("out-of-range page lost total: got %d, want 4", page.Total)
	}
}
