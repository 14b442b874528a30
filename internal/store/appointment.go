package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fir-portal/internal/model"
)

// CreateAppointment inserts a Pending appointment for a.CaseRef. Double booking of
// the same date and time is not checked.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.Status = model.AppointmentPending

	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, case_ref, date, time, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.CaseRef, a.Date, a.Time, a.Status, a.CreatedAt,
	)
	return mapErr(err)
}

func (s *Store) ListAppointments(ctx context.Context, caseRef string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.case_ref, c.case_id, a.date, a.time, a.status, a.created_at
		 FROM appointments a JOIN cases c ON c.id = a.case_ref
		 WHERE a.case_ref = $1
		 ORDER BY a.created_at`, caseRef,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.CaseRef, &a.CaseID, &a.Date, &a.Time, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
