package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fir-portal/internal/model"
)

const caseCols = `id, case_id, owner_handle, reporter_name, reporter_address, description,
	anonymous, attachments, status, terms_accepted, COALESCE(secret_hash, ''), created_at`

// CreateCase persists c, filling in its ids, status and creation time.
// The public case id is random; a collision surfaces as ErrConflict and is not retried.
func (s *Store) CreateCase(ctx context.Context, c *model.Case) error {
	if !c.TermsAccepted {
		return ErrTermsNotAccepted
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CaseID == "" {
		id, err := model.NewCaseID(c.CreatedAt)
		if err != nil {
			return err
		}
		c.CaseID = id
	}
	c.Status = model.CaseReceived
	if c.Attachments == nil {
		c.Attachments = []string{}
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO cases (id, case_id, owner_handle, reporter_name, reporter_address, description,
		                    anonymous, attachments, status, terms_accepted, secret_hash, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NULLIF($11,''),$12)`,
		c.ID, c.CaseID, c.OwnerHandle, c.ReporterName, c.ReporterAddress, c.Description,
		c.Anonymous, c.Attachments, c.Status, c.TermsAccepted, c.SecretHash, c.CreatedAt,
	)
	return mapErr(err)
}

// FindOwnedCase returns ErrNotFound for a missing case and for one owned by someone else.
func (s *Store) FindOwnedCase(ctx context.Context, caseID, owner string) (*model.Case, error) {
	return s.scanCase(s.pool.QueryRow(ctx,
		`SELECT `+caseCols+` FROM cases WHERE case_id = $1 AND owner_handle = $2`, caseID, owner))
}

func (s *Store) CaseByPublicID(ctx context.Context, caseID string) (*model.Case, error) {
	return s.scanCase(s.pool.QueryRow(ctx, `SELECT `+caseCols+` FROM cases WHERE case_id = $1`, caseID))
}

func (s *Store) ListOwnedCases(ctx context.Context, owner string) ([]model.Case, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+caseCols+` FROM cases WHERE owner_handle = $1 ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Case
	for rows.Next() {
		c, err := s.scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

type row interface {
	Scan(dest ...any) error
}

func (s *Store) scanCase(r row) (*model.Case, error) {
	c := &model.Case{}
	err := r.Scan(&c.ID, &c.CaseID, &c.OwnerHandle, &c.ReporterName, &c.ReporterAddress, &c.Description,
		&c.Anonymous, &c.Attachments, &c.Status, &c.TermsAccepted, &c.SecretHash, &c.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}
