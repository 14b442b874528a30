package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fir-portal/internal/logging"
	"fir-portal/internal/model"
	"fir-portal/internal/rpc"
	"fir-portal/internal/workflow"
)

// Accounts is the user and refresh-token side of the primary store.
type Accounts interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByHandle(ctx context.Context, handle string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	CreateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error)
	RotateRefreshToken(ctx context.Context, oldHash, newHash string, newExpiry time.Time) (string, error)
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
}

// Workflow is implemented by *workflow.Service.
type Workflow interface {
	SubmitCase(ctx context.Context, owner string, in workflow.SubmitInput) (workflow.SubmitResult, error)
	ScheduleAppointment(ctx context.Context, owner string, in workflow.ScheduleInput) (workflow.ScheduleResult, error)
	ListOwnedCases(ctx context.Context, owner string) ([]model.Case, error)
	ListAppointments(ctx context.Context, owner, caseID string) ([]model.Appointment, error)
	LookupCase(ctx context.Context, caseID, secret string) (workflow.LookupResult, error)
}

type Handler struct {
	rpc.UnimplementedCaseServiceServer
	accounts Accounts
	cases    Workflow
	secret   string
	logger   *slog.Logger
}

func New(accounts Accounts, cases Workflow, secret string, logger *slog.Logger) *Handler {
	return &Handler{accounts: accounts, cases: cases, secret: secret, logger: logging.Or(logger)}
}

// caseStatus maps workflow errors to the gRPC status returned to clients.
// Messages are meant for display next to the form that was submitted.
func caseStatus(err error) error {
	switch {
	case errors.Is(err, workflow.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "sign in required")
	case errors.Is(err, workflow.ErrPolicyViolation):
		return status.Error(codes.FailedPrecondition, "you must accept the terms and conditions")
	case errors.Is(err, workflow.ErrInvalidAttachment):
		return status.Error(codes.InvalidArgument, "attachments must be PDF, JPG, JPEG or PNG files")
	case errors.Is(err, workflow.ErrInvalidSchedule):
		return status.Error(codes.InvalidArgument, "date and time are required")
	case errors.Is(err, workflow.ErrNotAuthorized):
		return status.Error(codes.NotFound, "case not found")
	case errors.Is(err, workflow.ErrIOFailure):
		return status.Error(codes.Internal, "could not save attachments, please try again")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
