package patient

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (Patient, error)
	Create(ctx context.Context, req CreateRequest) (Patient, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Patient, error)
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.ListSummaries(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Patient, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return Patient{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p := Patient{
		Name:             req.Name,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		LastVisit:        req.LastVisit,
		Contact:          req.Contact,
		EmergencyContact: req.EmergencyContact,
		Insurance:        req.Insurance,
		MedicalHistory:   req.MedicalHistory,
		Notes:            req.Notes,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Patient{}, err
	}
	s.log.Info("patient created", "id", created.ID)
	return created, nil
}

// Update merges the supplied fields into the stored record: only fields
// present in the request replace the old value. The merge is a
// read-modify-write without versioning, so two concurrent updates to
// the same patient can drop one side's change even on disjoint fields.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Patient, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		p.DateOfBirth = *req.DateOfBirth
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.LastVisit != nil {
		p.LastVisit = *req.LastVisit
	}
	if req.Contact != nil {
		p.Contact = req.Contact
	}
	if req.EmergencyContact != nil {
		p.EmergencyContact = req.EmergencyContact
	}
	if req.Insurance != nil {
		p.Insurance = *req.Insurance
	}
	if req.MedicalHistory != nil {
		p.MedicalHistory = req.MedicalHistory
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Patient{}, err
	}
	s.log.Info("patient updated", "id", id)
	return p, nil
}
