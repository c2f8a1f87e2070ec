package appointment

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"
)

var ErrNotFound = errors.New("appointment not found")

type Servicer interface {
	List() []Appointment
	Get(id int) (Appointment, error)
	Create(req UpdateRequest) Appointment
	Update(id int, req UpdateRequest) (Appointment, error)
}

// Service keeps the appointment book in memory, seeded with demo rows.
type Service struct {
	mu           sync.Mutex
	appointments []Appointment
	log          *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	return &Service{
		appointments: []Appointment{
			{ID: 1, PatientName: "Alice Johnson", Date: "2023-10-01", Time: "10:00", Reason: "Routine Checkup", Status: "Scheduled"},
			{ID: 2, PatientName: "Bob Smith", Date: "2023-10-02", Time: "11:00", Reason: "Follow-up", Status: "Completed"},
			{ID: 3, PatientName: "Charlie Davis", Date: "2023-10-03", Time: "09:30", Reason: "Consultation", Status: "Missed"},
		},
		log: log,
	}
}

func (s *Service) List() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Service) Get(id int) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, ErrNotFound
}

func (s *Service) Create(req UpdateRequest) Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := 1
	for _, a := range s.appointments {
		if a.ID >= id {
			id = a.ID + 1
		}
	}

	appt := Appointment{
		ID:          id,
		PatientName: fmt.Sprintf("Patient %d", id),
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
		Status:      req.Status,
	}
	s.appointments = append(s.appointments, appt)
	s.log.Info("appointment created", "id", id)
	return appt
}

func (s *Service) Update(id int, req UpdateRequest) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.appointments {
		if a.ID != id {
			continue
		}
		a.Date = req.Date
		a.Time = req.Time
		a.Reason = req.Reason
		a.Status = req.Status
		s.appointments[i] = a
		return a, nil
	}
	return Appointment{}, ErrNotFound
}
