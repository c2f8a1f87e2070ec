package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"clinikit/internal/domain/patient"

	"golang.org/x/exp/slog"
)

func NewPatientRepository(storage *Storage, log *slog.Logger) *PatientRepository {
	return &PatientRepository{
		db:  storage.DB(),
		log: log,
	}
}

type PatientRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func (r *PatientRepository) ListSummaries(ctx context.Context) ([]patient.Summary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, date_of_birth, gender, last_visit FROM patients`)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	summaries := make([]patient.Summary, 0)
	for rows.Next() {
		var s patient.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.DateOfBirth, &s.Gender, &s.LastVisit); err != nil {
			return nil, fmt.Errorf("scan patient summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *PatientRepository) Find(ctx context.Context, id int64) (patient.Patient, error) {
	var p patient.Patient
	var contact, emergency string
	var history, notes sql.NullString

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, date_of_birth, gender, last_visit, contact, emergency_contact, insurance, medical_history, notes
		FROM patients
		WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.Gender, &p.LastVisit,
			&contact, &emergency, &p.Insurance, &history, &notes)
	if errors.Is(err, sql.ErrNoRows) {
		return patient.Patient{}, patient.ErrNotFound
	}
	if err != nil {
		return patient.Patient{}, fmt.Errorf("find patient: %w", err)
	}

	if err := json.Unmarshal([]byte(contact), &p.Contact); err != nil {
		return patient.Patient{}, fmt.Errorf("%w: decode contact for %d: %v", patient.ErrCorruptRecord, id, err)
	}
	if err := json.Unmarshal([]byte(emergency), &p.EmergencyContact); err != nil {
		return patient.Patient{}, fmt.Errorf("%w: decode emergency contact for %d: %v", patient.ErrCorruptRecord, id, err)
	}
	if history.Valid {
		p.MedicalHistory = &history.String
	}
	if notes.Valid {
		p.Notes = &notes.String
	}
	return p, nil
}

func (r *PatientRepository) Create(ctx context.Context, p patient.Patient) (patient.Patient, error) {
	contact, emergency, err := encodeContacts(p)
	if err != nil {
		return patient.Patient{}, err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (name, date_of_birth, gender, last_visit, contact, emergency_contact, insurance, medical_history, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.DateOfBirth, p.Gender, p.LastVisit,
		contact, emergency, p.Insurance, p.MedicalHistory, p.Notes)
	if err != nil {
		return patient.Patient{}, fmt.Errorf("create patient: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return patient.Patient{}, fmt.Errorf("create patient: %w", err)
	}
	p.ID = id
	return p, nil
}

func (r *PatientRepository) Update(ctx context.Context, p patient.Patient) error {
	contact, emergency, err := encodeContacts(p)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET name = ?, date_of_birth = ?, gender = ?, last_visit = ?, contact = ?, emergency_contact = ?, insurance = ?, medical_history = ?, notes = ?
		WHERE id = ?`,
		p.Name, p.DateOfBirth, p.Gender, p.LastVisit,
		contact, emergency, p.Insurance, p.MedicalHistory, p.Notes, p.ID)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if affected == 0 {
		return patient.ErrNotFound
	}
	return nil
}

func encodeContacts(p patient.Patient) (string, string, error) {
	contact, err := json.Marshal(p.Contact)
	if err != nil {
		return "", "", fmt.Errorf("encode contact: %w", err)
	}
	emergency, err := json.Marshal(p.EmergencyContact)
	if err != nil {
		return "", "", fmt.Errorf("encode emergency contact: %w", err)
	}
	return string(contact), string(emergency), nil
}
