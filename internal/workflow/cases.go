package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"fir-portal/internal/audit"
	"fir-portal/internal/auth"
	"fir-portal/internal/model"
	"fir-portal/internal/store"
)

// ListOwnedCases returns owner's cases, newest first.
func (s *Service) ListOwnedCases(ctx context.Context, owner string) ([]model.Case, error) {
	if owner == "" {
		return nil, ErrUnauthenticated
	}
	cs, err := s.cases.ListOwnedCases(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return cs, nil
}

// ListAppointments returns the appointments of one of owner's cases.
func (s *Service) ListAppointments(ctx context.Context, owner, caseID string) ([]model.Appointment, error) {
	if owner == "" {
		return nil, ErrUnauthenticated
	}
	c, err := s.ownedCase(ctx, owner, caseID)
	if err != nil {
		return nil, err
	}
	as, err := s.appts.ListAppointments(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return as, nil
}

type LookupResult struct {
	CaseID    string
	Status    string
	CreatedAt time.Time
}

// LookupCase lets a holder of the case secret read a case's status without an
// account. Every mismatch, including a case filed without a secret, is ErrNotAuthorized.
func (s *Service) LookupCase(ctx context.Context, caseID, secret string) (LookupResult, error) {
	log := s.opLogger(ctx, "LookupCase", "case_id", caseID)
	if caseID == "" || secret == "" {
		return LookupResult{}, ErrNotAuthorized
	}

	c, err := s.cases.CaseByPublicID(ctx, caseID)
	if errors.Is(err, store.ErrNotFound) {
		// still spend a bcrypt compare so timing does not reveal existence
		auth.CheckPassword(dummyHash(), secret)
		return LookupResult{}, ErrNotAuthorized
	}
	if err != nil {
		log.Error("case lookup failed", "error", err)
		return LookupResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if c.SecretHash == "" || !auth.CheckPassword(c.SecretHash, secret) {
		s.audit.Action(ctx, "case_lookup", "", c.CaseID, "case secret mismatch", audit.Failure)
		return LookupResult{}, ErrNotAuthorized
	}

	s.audit.Action(ctx, "case_lookup", "", c.CaseID, "case looked up with secret", audit.Success)
	return LookupResult{CaseID: c.CaseID, Status: c.Status, CreatedAt: c.CreatedAt}, nil
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword(uuid.NewString())
	return h
})
