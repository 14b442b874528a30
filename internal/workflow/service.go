// Package workflow runs case submission and appointment scheduling. Writes to the
// primary store decide the outcome of a request; notification and audit run after
// them and can only ever log their failures.
package workflow

import (
	"context"
	"log/slog"
	"time"

	"fir-portal/internal/audit"
	"fir-portal/internal/logging"
	"fir-portal/internal/metrics"
	"fir-portal/internal/model"
	"fir-portal/internal/notify"
)

// Terminal states reported to callers.
const (
	StateSubmitted = "Submitted"
	StateScheduled = "Scheduled"
	StateRejected  = "Rejected"
)

type CaseRepository interface {
	CreateCase(ctx context.Context, c *model.Case) error
	FindOwnedCase(ctx context.Context, caseID, owner string) (*model.Case, error)
	CaseByPublicID(ctx context.Context, caseID string) (*model.Case, error)
	ListOwnedCases(ctx context.Context, owner string) ([]model.Case, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointments(ctx context.Context, caseRef string) ([]model.Appointment, error)
}

// Attachments stores uploaded files and returns the name they were stored under.
type Attachments interface {
	Store(ctx context.Context, name string, data []byte) (string, error)
	Remove(ctx context.Context, stored string) error
}

type Auditor interface {
	Record(ctx context.Context, eventType, message, outcome string)
	Action(ctx context.Context, action, actor, caseID, message, outcome string)
}

type Deps struct {
	Cases        CaseRepository
	Appointments AppointmentRepository
	Attachments  Attachments
	Notifier     notify.Notifier
	Audit        Auditor
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
	Now          func() time.Time
}

type Service struct {
	cases   CaseRepository
	appts   AppointmentRepository
	files   Attachments
	notify  notify.Notifier
	audit   Auditor
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func New(d Deps) *Service {
	s := &Service{
		cases:   d.Cases,
		appts:   d.Appointments,
		files:   d.Attachments,
		notify:  d.Notifier,
		audit:   d.Audit,
		metrics: d.Metrics,
		logger:  logging.Or(d.Logger),
		now:     d.Now,
	}
	if s.audit == nil {
		s.audit = audit.Disabled()
	}
	if s.notify == nil {
		s.notify = notify.NewLog(s.logger)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) opLogger(ctx context.Context, op string, attrs ...any) *slog.Logger {
	l := logging.FromContext(ctx)
	if l == nil {
		l = s.logger
	}
	return l.With(append([]any{"service", "workflow", "operation", op}, attrs...)...)
}

// send runs the notification step; its failure is logged and counted only.
func (s *Service) send(ctx context.Context, log *slog.Logger, to, subject, body string) {
	if err := s.notify.Send(ctx, to, subject, body); err != nil {
		log.Warn("notification failed", "error", err)
		s.metrics.BestEffortFailure("notify")
	}
}
