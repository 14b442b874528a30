package workflow_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"fir-portal/internal/model"
	"fir-portal/internal/store"
)

type memCases struct {
	mu        sync.Mutex
	byID      map[string]*model.Case
	createErr error
}

func newMemCases() *memCases { return &memCases{byID: make(map[string]*model.Case)} }

func (m *memCases) CreateCase(_ context.Context, c *model.Case) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if !c.TermsAccepted {
		return store.ErrTermsNotAccepted
	}
	id, err := model.NewCaseID(c.CreatedAt)
	if err != nil {
		return err
	}
	if _, dup := m.byID[id]; dup {
		return store.ErrConflict
	}
	c.ID = uuid.NewString()
	c.CaseID = id
	c.Status = model.CaseReceived
	cp := *c
	m.byID[id] = &cp
	return nil
}

func (m *memCases) FindOwnedCase(_ context.Context, caseID, owner string) (*model.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[caseID]
	if !ok || c.OwnerHandle != owner {
		return nil, store.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCases) CaseByPublicID(_ context.Context, caseID string) (*model.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[caseID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCases) ListOwnedCases(_ context.Context, owner string) ([]model.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Case
	for _, c := range m.byID {
		if c.OwnerHandle == owner {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCases) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

type memAppointments struct {
	mu        sync.Mutex
	rows      []model.Appointment
	createErr error
}

func (m *memAppointments) CreateAppointment(_ context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = uuid.NewString()
	a.Status = model.AppointmentPending
	m.rows = append(m.rows, *a)
	return nil
}

func (m *memAppointments) ListAppointments(_ context.Context, caseRef string) ([]model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Appointment
	for _, a := range m.rows {
		if a.CaseRef == caseRef {
			out = append(out, a)
		}
	}
	return out, nil
}

type memFiles struct {
	mu       sync.Mutex
	stored   []string
	removed  []string
	failOn   string
	sequence int
}

func (m *memFiles) Store(_ context.Context, name string, _ []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == m.failOn {
		return "", fmt.Errorf("disk full")
	}
	m.sequence++
	stored := fmt.Sprintf("%04d_%s", m.sequence, name)
	m.stored = append(m.stored, stored)
	return stored, nil
}

func (m *memFiles) Remove(_ context.Context, stored string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, stored)
	return nil
}

type sentMessage struct{ to, subject, body string }

type recNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (r *recNotifier) Send(_ context.Context, to, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMessage{to, subject, body})
	return r.err
}

func (r *recNotifier) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

type auditEntry struct{ kind, name, caseID, message, outcome string }

type recAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (r *recAudit) Record(_ context.Context, eventType, message, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, auditEntry{"event", eventType, "", message, outcome})
}

func (r *recAudit) Action(_ context.Context, action, _, caseID, message, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, auditEntry{"action", action, caseID, message, outcome})
}

func (r *recAudit) outcomes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		out = append(out, e.kind+":"+e.name+":"+e.outcome)
	}
	return out
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }
