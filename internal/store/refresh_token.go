package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("store: refresh token expired")
	ErrTokenReused  = errors.New("store: refresh token reused")
)

type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

func (s *Store) CreateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at) VALUES ($1,$2,$3,$4)`,
		id, userID, tokenHash, expiresAt,
	)
	return id, mapErr(err)
}

// RotateRefreshToken swaps the token identified by oldHash for newHash in one
// transaction and returns the owning user id. Presenting an already revoked token
// revokes every token of that user and returns ErrTokenReused.
func (s *Store) RotateRefreshToken(ctx context.Context, oldHash, newHash string, newExpiry time.Time) (string, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	rt := RefreshToken{}
	err = tx.QueryRow(ctx,
		`SELECT id, user_id, expires_at, revoked FROM refresh_tokens
		 WHERE token_hash = $1 FOR UPDATE`, oldHash,
	).Scan(&rt.ID, &rt.UserID, &rt.ExpiresAt, &rt.Revoked)
	if err != nil {
		return "", mapErr(err)
	}

	if rt.Revoked {
		// reuse of a rotated token: assume theft, kill the whole family
		if _, err := tx.Exec(ctx,
			`UPDATE refresh_tokens SET revoked = true WHERE user_id = $1`, rt.UserID); err != nil {
			return "", err
		}
		if err := tx.Commit(ctx); err != nil {
			return "", err
		}
		return "", ErrTokenReused
	}
	if time.Now().After(rt.ExpiresAt) {
		return "", ErrTokenExpired
	}

	newID := uuid.New().String()
	if _, err := tx.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at) VALUES ($1,$2,$3,$4)`,
		newID, rt.UserID, newHash, newExpiry,
	); err != nil {
		return "", mapErr(err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true, replaced_by = $1 WHERE id = $2`,
		newID, rt.ID,
	); err != nil {
		return "", err
	}
	return rt.UserID, tx.Commit(ctx)
}

// revoke all tokens for a user (logout)
func (s *Store) RevokeAllRefreshTokens(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true WHERE user_id = $1 AND revoked = false`,
		userID,
	)
	return err
}
