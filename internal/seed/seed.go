// Package seed наполняет пустое хранилище демо-данными: каталог услуг,
// мастера и записи на ближайший месяц. Повторный запуск на непустом
// каталоге ничего не делает.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/salonhub/booking-calendar/internal/calendar"
	"github.com/salonhub/booking-calendar/internal/model"
	"github.com/salonhub/booking-calendar/internal/repository"
)

const (
	serviceCount      = 25
	masterCount       = 8
	servicesPerMaster = 3
	appointmentCount  = 50
	notesProbability  = 0.3
)

var serviceAdjectives = []string{
	"Classic", "Deluxe", "Express", "Signature", "Premium",
	"Relaxing", "Deep", "Quick", "Royal", "Botanical",
}

var serviceNouns = []string{
	"Manicure", "Pedicure", "Haircut", "Coloring", "Facial",
	"Massage", "Styling", "Peeling", "Waxing", "Brow Shaping",
}

var firstNames = []string{
	"Olivia", "Liam", "Emma", "Noah", "Sophia", "Mason",
	"Isabella", "Ethan", "Mia", "Lucas", "Amelia", "Oliver",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
	"Miller", "Davis", "Martinez", "Wilson", "Anderson", "Taylor",
}

var noteSamples = []string{
	"Prefers the late afternoon.",
	"Allergic to acetone.",
	"First visit, walk through the options.",
	"Repeat of the previous appointment.",
	"Asked for the same master as last time.",
}

// Demo создаёт демо-набор, если каталог услуг пуст.
func Demo(
	ctx context.Context,
	serviceRepo repository.ServiceRepository,
	masterRepo repository.MasterRepository,
	appointmentRepo repository.AppointmentRepository,
) error {
	total, err := serviceRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count services: %w", err)
	}
	if total > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	services := make([]model.Service, 0, serviceCount)
	for i := 0; i < serviceCount; i++ {
		svc := model.Service{
			ID:   uuid.New(),
			Name: serviceName(rng, i),
		}
		if err := serviceRepo.Create(ctx, &svc); err != nil {
			return fmt.Errorf("seed: create service: %w", err)
		}
		services = append(services, svc)
	}

	masters := make([]model.Master, 0, masterCount)
	for i := 0; i < masterCount; i++ {
		picked := pickServices(rng, services, servicesPerMaster)
		m := model.Master{
			ID:        uuid.New(),
			Name:      personName(rng),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?img=%d", rng.Intn(70)+1),
			Services:  datatypes.NewJSONSlice(picked),
		}
		if err := masterRepo.Create(ctx, &m); err != nil {
			return fmt.Errorf("seed: create master: %w", err)
		}
		masters = append(masters, m)
	}

	statuses := []model.AppointmentStatus{
		model.AppointmentStatusNew,
		model.AppointmentStatusCancelled,
		model.AppointmentStatusPaid,
		model.AppointmentStatusConfirmed,
	}

	now := time.Now().UTC()
	monthAfter := now.AddDate(0, 1, 0)

	for i := 0; i < appointmentCount; i++ {
		master := masters[rng.Intn(len(masters))]
		svc := master.Services[rng.Intn(len(master.Services))]

		at := randomTime(rng, now, monthAfter)
		// Демо-записи не ставим на закрытые и заблокированные дни;
		// через API такое создание при этом не запрещено.
		if calendar.ClassifyDay(at) != calendar.DayStatusWorking {
			continue
		}

		var notes *string
		if rng.Float64() < notesProbability {
			n := noteSamples[rng.Intn(len(noteSamples))]
			notes = &n
		}

		appointment := model.Appointment{
			ID:           uuid.New(),
			CustomerName: personName(rng),
			At:           at,
			Service:      datatypes.NewJSONType(svc),
			Master:       datatypes.NewJSONType(master.Snapshot()),
			Notes:        notes,
			Status:       statuses[rng.Intn(len(statuses))],
		}
		if err := appointmentRepo.Create(ctx, &appointment); err != nil {
			return fmt.Errorf("seed: create appointment: %w", err)
		}
	}

	return nil
}

func serviceName(rng *rand.Rand, i int) string {
	adj := serviceAdjectives[rng.Intn(len(serviceAdjectives))]
	noun := serviceNouns[i%len(serviceNouns)]
	return adj + " " + noun
}

func personName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

func pickServices(rng *rand.Rand, services []model.Service, n int) []model.ServiceSnapshot {
	idx := rng.Perm(len(services))
	if n > len(idx) {
		n = len(idx)
	}
	picked := make([]model.ServiceSnapshot, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, services[i].Snapshot())
	}
	return picked
}

func randomTime(rng *rand.Rand, from, to time.Time) time.Time {
	span := to.Unix() - from.Unix()
	return time.Unix(from.Unix()+rng.Int63n(span), 0).UTC()
}
