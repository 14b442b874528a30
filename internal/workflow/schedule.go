package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fir-portal/internal/audit"
	"fir-portal/internal/model"
	"fir-portal/internal/store"
)

type ScheduleInput struct {
	CaseID string
	Date   string
	Time   string
}

type ScheduleResult struct {
	AppointmentID string
	// Status is the terminal state; Appointment.Status is Pending on success.
	Status      string
	Appointment *model.Appointment
}

// ScheduleAppointment books a follow-up on one of owner's cases. Date and time are
// opaque; only their presence is checked.
func (s *Service) ScheduleAppointment(ctx context.Context, owner string, in ScheduleInput) (ScheduleResult, error) {
	log := s.opLogger(ctx, "ScheduleAppointment", "owner", owner, "case_id", in.CaseID)
	if owner == "" {
		return ScheduleResult{Status: StateRejected}, ErrUnauthenticated
	}

	c, a, err := s.schedule(ctx, owner, in)
	if err != nil {
		s.scheduleFailed(ctx, log, owner, in.CaseID, err)
		return ScheduleResult{Status: StateRejected}, err
	}

	if !c.Anonymous && c.ReporterAddress != "" {
		s.send(ctx, log, c.ReporterAddress,
			"Appointment requested: "+c.CaseID,
			fmt.Sprintf("An appointment for case %s was requested for %s at %s. Status: %s.\n",
				c.CaseID, a.Date, a.Time, a.Status))
	}

	msg := fmt.Sprintf("appointment %s for %s on %s %s", a.ID, c.CaseID, a.Date, a.Time)
	s.audit.Record(ctx, "appointment_scheduled", msg, audit.Success)
	s.audit.Action(ctx, "appointment_scheduled", owner, c.CaseID, msg, audit.Success)
	s.metrics.AppointmentOutcome("scheduled")
	log.Info("appointment scheduled", "appointment_id", a.ID)

	return ScheduleResult{AppointmentID: a.ID, Status: StateScheduled, Appointment: a}, nil
}

func (s *Service) schedule(ctx context.Context, owner string, in ScheduleInput) (*model.Case, *model.Appointment, error) {
	c, err := s.ownedCase(ctx, owner, in.CaseID)
	if err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return nil, nil, ErrInvalidSchedule
	}

	a := &model.Appointment{
		CaseRef:   c.ID,
		CaseID:    c.CaseID,
		Date:      in.Date,
		Time:      in.Time,
		CreatedAt: s.now().UTC(),
	}
	if err := s.appts.CreateAppointment(ctx, a); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return c, a, nil
}

func (s *Service) ownedCase(ctx context.Context, owner, caseID string) (*model.Case, error) {
	if caseID == "" {
		return nil, ErrNotAuthorized
	}
	c, err := s.cases.FindOwnedCase(ctx, caseID, owner)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return c, nil
}

func (s *Service) scheduleFailed(ctx context.Context, log *slog.Logger, owner, caseID string, err error) {
	kind := ErrorKind(err)
	if rejection(err) {
		log.Info("appointment rejected", "kind", kind, "error", err)
		s.metrics.AppointmentOutcome("rejected")
	} else {
		log.Error("appointment scheduling failed", "kind", kind, "error", err)
		s.metrics.AppointmentOutcome("failed")
	}
	s.audit.Record(ctx, "appointment_scheduled",
		fmt.Sprintf("appointment by %s for %q failed: %s", owner, caseID, kind), audit.Failure)
}
