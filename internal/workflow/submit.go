package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fir-portal/internal/attachment"
	"fir-portal/internal/audit"
	"fir-portal/internal/auth"
	"fir-portal/internal/model"
	"fir-portal/internal/store"
)

type File struct {
	Name string
	Data []byte
}

type SubmitInput struct {
	ReporterName    string
	ReporterAddress string
	Description     string
	Anonymous       bool
	TermsAccepted   bool
	// CaseSecret, when set, lets a party without an account look the case up later.
	CaseSecret  string
	Attachments []File
}

type SubmitResult struct {
	CaseID string
	Status string
	Case   *model.Case
}

// SubmitCase files a new case for owner. Attachments are all validated before any
// of them is written, and written files are removed again if the case row cannot
// be created.
func (s *Service) SubmitCase(ctx context.Context, owner string, in SubmitInput) (SubmitResult, error) {
	log := s.opLogger(ctx, "SubmitCase", "owner", owner)
	if owner == "" {
		return SubmitResult{Status: StateRejected}, ErrUnauthenticated
	}

	c, err := s.submit(ctx, log, owner, in)
	if err != nil {
		s.submitFailed(ctx, log, owner, err)
		return SubmitResult{Status: StateRejected}, err
	}

	if !c.Anonymous && c.ReporterAddress != "" {
		s.send(ctx, log, c.ReporterAddress,
			"FIR Submitted: "+c.CaseID,
			fmt.Sprintf("Your case %s has been received.\n\nDescription:\n%s\n", c.CaseID, c.Description))
	}

	msg := fmt.Sprintf("FIR %s submitted with %d attachment(s)", c.CaseID, len(c.Attachments))
	s.audit.Record(ctx, "fir_submission", msg, audit.Success)
	s.audit.Action(ctx, "case_submitted", owner, c.CaseID, msg, audit.Success)
	s.metrics.CaseOutcome("submitted")
	log.Info("case submitted", "case_id", c.CaseID, "anonymous", c.Anonymous)

	return SubmitResult{CaseID: c.CaseID, Status: StateSubmitted, Case: c}, nil
}

func (s *Service) submit(ctx context.Context, log *slog.Logger, owner string, in SubmitInput) (*model.Case, error) {
	if !in.TermsAccepted {
		return nil, ErrPolicyViolation
	}

	files, err := acceptedFiles(in.Attachments)
	if err != nil {
		return nil, err
	}

	stored := make([]string, 0, len(files))
	for _, f := range files {
		name, err := s.files.Store(ctx, f.Name, f.Data)
		if err != nil {
			s.discard(ctx, log, stored)
			return nil, fmt.Errorf("%w: %s: %v", ErrIOFailure, f.Name, err)
		}
		stored = append(stored, name)
	}

	c := &model.Case{
		OwnerHandle:     owner,
		ReporterName:    in.ReporterName,
		ReporterAddress: in.ReporterAddress,
		Description:     in.Description,
		Anonymous:       in.Anonymous,
		Attachments:     stored,
		TermsAccepted:   in.TermsAccepted,
		CreatedAt:       s.now().UTC(),
	}
	if in.Anonymous {
		c.ReporterName = model.AnonymousName
		c.ReporterAddress = model.AnonymousAddress
	}
	if in.CaseSecret != "" {
		h, err := auth.HashPassword(in.CaseSecret)
		if err != nil {
			s.discard(ctx, log, stored)
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		c.SecretHash = h
	}

	if err := s.cases.CreateCase(ctx, c); err != nil {
		s.discard(ctx, log, stored)
		if errors.Is(err, store.ErrTermsNotAccepted) {
			return nil, ErrPolicyViolation
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return c, nil
}

// acceptedFiles drops attachments with an empty name and rejects the whole set
// if any remaining name has a disallowed extension.
func acceptedFiles(in []File) ([]File, error) {
	out := make([]File, 0, len(in))
	for _, f := range in {
		if strings.TrimSpace(f.Name) == "" {
			continue
		}
		// the stored name is what must carry an accepted extension
		if !attachment.Allowed(attachment.Sanitize(f.Name)) {
			return nil, fmt.Errorf("%w: %q (allowed: pdf, jpg, jpeg, png)", ErrInvalidAttachment, f.Name)
		}
		out = append(out, f)
	}
	return out, nil
}

// discard removes attachments written for a request that did not produce a case.
func (s *Service) discard(ctx context.Context, log *slog.Logger, stored []string) {
	for _, name := range stored {
		if err := s.files.Remove(ctx, name); err != nil {
			log.Warn("orphaned attachment", "file", name, "error", err)
		}
	}
}

func (s *Service) submitFailed(ctx context.Context, log *slog.Logger, owner string, err error) {
	kind := ErrorKind(err)
	if rejection(err) {
		log.Info("case rejected", "kind", kind, "error", err)
		s.metrics.CaseOutcome("rejected")
	} else {
		log.Error("case submission failed", "kind", kind, "error", err)
		s.metrics.CaseOutcome("failed")
	}
	s.audit.Record(ctx, "fir_submission", "FIR submission by "+owner+" failed: "+kind, audit.Failure)
}
