package store

import (
	"context"

	"fir-portal/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, handle, email, password_hash) VALUES ($1,$2,$3,$4)`,
		u.ID, u.Handle, u.Email, u.PasswordHash,
	)
	return mapErr(err)
}

func (s *Store) UserByHandle(ctx context.Context, handle string) (*model.User, error) {
	return s.userWhere(ctx, `handle = $1`, handle)
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	return s.userWhere(ctx, `id = $1`, id)
}

func (s *Store) userWhere(ctx context.Context, cond string, arg any) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, handle, email, password_hash, created_at, updated_at
		 FROM users WHERE `+cond, arg,
	).Scan(&u.ID, &u.Handle, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}
