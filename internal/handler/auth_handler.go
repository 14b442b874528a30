package handler

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fir-portal/internal/auth"
	"fir-portal/internal/middleware"
	"fir-portal/internal/model"
	"fir-portal/internal/rpc"
	"fir-portal/internal/store"
)

func (h *Handler) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {
	handle := strings.TrimSpace(req.Handle)
	if handle == "" || req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "all fields required")
	}
	if len(handle) > 64 {
		return nil, status.Error(codes.InvalidArgument, "handle too long")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid email")
	}
	if len(req.Password) < 8 {
		return nil, status.Error(codes.InvalidArgument, "password too short")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Handle:       handle,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
	}
	if err := h.accounts.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// dup handle or email, don't reveal which
			return nil, status.Error(codes.AlreadyExists, "registration failed")
		}
		h.logger.Error("create user", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	tok, refresh, err := h.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}
	return &rpc.RegisterResponse{UserID: u.ID, Token: tok, RefreshToken: refresh}, nil
}

func (h *Handler) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {
	if req.Handle == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "handle and password required")
	}

	u, err := h.accounts.UserByHandle(ctx, req.Handle)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, refresh, err := h.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}
	return &rpc.LoginResponse{Token: tok, UserID: u.ID, Handle: u.Handle, RefreshToken: refresh}, nil
}

func (h *Handler) Refresh(ctx context.Context, req *rpc.RefreshRequest) (*rpc.RefreshResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token required")
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	uid, err := h.accounts.RotateRefreshToken(ctx, auth.HashRefreshToken(req.RefreshToken), hash, time.Now().Add(auth.RefreshTTL))
	switch {
	case errors.Is(err, store.ErrTokenReused):
		h.logger.Warn("refresh token reuse, all sessions revoked")
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrTokenExpired):
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	case err != nil:
		h.logger.Error("rotate refresh token", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	u, err := h.accounts.UserByID(ctx, uid)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}
	tok, err := auth.MakeToken(u.ID, u.Handle, h.secret)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &rpc.RefreshResponse{Token: tok, RefreshToken: raw}, nil
}

func (h *Handler) Logout(ctx context.Context, _ *rpc.Empty) (*rpc.Empty, error) {
	p := middleware.PrincipalFrom(ctx)
	if p.UserID == "" {
		return nil, status.Error(codes.Unauthenticated, "sign in required")
	}
	if err := h.accounts.RevokeAllRefreshTokens(ctx, p.UserID); err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) issueTokens(ctx context.Context, u *model.User) (access, refresh string, err error) {
	access, err = auth.MakeToken(u.ID, u.Handle, h.secret)
	if err != nil {
		return "", "", status.Error(codes.Internal, "internal error")
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return "", "", status.Error(codes.Internal, "internal error")
	}
	if _, err := h.accounts.CreateRefreshToken(ctx, u.ID, hash, time.Now().Add(auth.RefreshTTL)); err != nil {
		return "", "", status.Error(codes.Internal, "internal error")
	}
	return access, raw, nil
}
