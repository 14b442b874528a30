package handler_test

import (
	"context"
	"os"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fir-portal/internal/attachment"
	"fir-portal/internal/handler"
	"fir-portal/internal/middleware"
	"fir-portal/internal/rpc"
	"fir-portal/internal/store"
	"fir-portal/internal/workflow"
)

// setup wires the handler against a real Postgres; skipped without one.
func setup(t *testing.T) *handler.Handler {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	secret := os.Getenv("JWT_SECRET")
	if dbURL == "" || secret == "" {
		t.Skip("DATABASE_URL or JWT_SECRET not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)
	st := store.New(pool)
	if err := st.Migrate(context.Background(), "../../db/migrations/001_init.sql"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	files, err := attachment.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}
	svc := workflow.New(workflow.Deps{Cases: st, Appointments: st, Attachments: files})
	return handler.New(st, svc, secret, nil)
}

func registerUser(t *testing.T, h *handler.Handler) (ctx context.Context, handle string) {
	t.Helper()
	handle = "user-" + uuid.New().String()[:8]
	rr, err := h.Register(context.Background(), &rpc.RegisterRequest{
		Handle: handle, Email: handle + "@test.com", Password: "testpass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	ctx = middleware.WithPrincipal(context.Background(), middleware.Principal{UserID: rr.UserID, Handle: handle})
	return ctx, handle
}

func submitCase(t *testing.T, h *handler.Handler, ctx context.Context, anonymous bool) string {
	t.Helper()
	resp, err := h.SubmitCase(ctx, &rpc.SubmitCaseRequest{
		ReporterName:    "Test Reporter",
		ReporterAddress: "reporter@test.com",
		Description:     "stolen bicycle",
		Anonymous:       anonymous,
		TermsAccepted:   true,
		Attachments:     []*rpc.Attachment{{Filename: "photo.jpg", Content: []byte{0xff, 0xd8}}},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return resp.CaseID
}

func code(err error) codes.Code {
	s, _ := status.FromError(err)
	return s.Code()
}

// ----- account tests -----

func TestRegister(t *testing.T) {
	h := setup(t)

	handle := "user-" + uuid.New().String()[:8]
	rr, err := h.Register(context.Background(), &rpc.RegisterRequest{
		Handle: handle, Email: handle + "@test.com", Password: "testpass123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if rr.UserID == "" || rr.Token == "" || rr.RefreshToken == "" {
		t.Fatalf("incomplete response: %+v", rr)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h := setup(t)
	_, handle := registerUser(t, h)

	_, err := h.Register(context.Background(), &rpc.RegisterRequest{
		Handle: handle, Email: "other-" + handle + "@test.com", Password: "testpass123",
	})
	if code(err) != codes.AlreadyExists {
		t.Errorf("expected AlreadyExists, got %v", code(err))
	}
}

func TestLoginAndRefresh(t *testing.T) {
	h := setup(t)
	_, handle := registerUser(t, h)

	lr, err := h.Login(context.Background(), &rpc.LoginRequest{Handle: handle, Password: "testpass123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if lr.Handle != handle {
		t.Errorf("expected handle %q, got %q", handle, lr.Handle)
	}

	rr, err := h.Refresh(context.Background(), &rpc.RefreshRequest{RefreshToken: lr.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rr.RefreshToken == lr.RefreshToken {
		t.Fatal("refresh token not rotated")
	}

	// replaying the old token revokes the family, including the new one
	if _, err := h.Refresh(context.Background(), &rpc.RefreshRequest{RefreshToken: lr.RefreshToken}); code(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated on reuse, got %v", code(err))
	}
	if _, err := h.Refresh(context.Background(), &rpc.RefreshRequest{RefreshToken: rr.RefreshToken}); code(err) != codes.Unauthenticated {
		t.Errorf("expected new token revoked after reuse, got %v", code(err))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := setup(t)
	_, handle := registerUser(t, h)

	_, err := h.Login(context.Background(), &rpc.LoginRequest{Handle: handle, Password: "wrongpassword"})
	if code(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated, got %v", code(err))
	}
}

// ----- case tests -----

var caseIDPattern = regexp.MustCompile(`^FIR-\d{8}-[0-9A-F]{8}$`)

func TestSubmitCaseAndList(t *testing.T) {
	h := setup(t)
	ctx, _ := registerUser(t, h)

	id := submitCase(t, h, ctx, true)
	if !caseIDPattern.MatchString(id) {
		t.Errorf("bad case id %q", id)
	}

	lr, err := h.ListCases(ctx, &rpc.Empty{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lr.Cases) != 1 {
		t.Fatalf("expected 1 case, got %d", len(lr.Cases))
	}
	c := lr.Cases[0]
	if c.ReporterName != "Anonymous" || c.ReporterAddress != "hidden" {
		t.Errorf("anonymous case leaked identity: %q %q", c.ReporterName, c.ReporterAddress)
	}
	if len(c.Attachments) != 1 || c.Status != "Received" {
		t.Errorf("unexpected case: %+v", c)
	}
}

func TestSubmitCaseTermsRequired(t *testing.T) {
	h := setup(t)
	ctx, _ := registerUser(t, h)

	_, err := h.SubmitCase(ctx, &rpc.SubmitCaseRequest{Description: "x"})
	if code(err) != codes.FailedPrecondition {
		t.Errorf("expected FailedPrecondition, got %v", code(err))
	}
	lr, _ := h.ListCases(ctx, &rpc.Empty{})
	if len(lr.Cases) != 0 {
		t.Errorf("expected no cases, got %d", len(lr.Cases))
	}
}

func TestSubmitCaseEmptyForm(t *testing.T) {
	h := setup(t)
	ctx, _ := registerUser(t, h)

	_, err := h.SubmitCase(ctx, &rpc.SubmitCaseRequest{})
	if code(err) != codes.FailedPrecondition {
		t.Errorf("expected FailedPrecondition, got %v", code(err))
	}
	if _, err := h.SubmitCase(ctx, &rpc.SubmitCaseRequest{TermsAccepted: true}); err != nil {
		t.Errorf("submit without description: %v", err)
	}
}

func TestScheduleAppointmentOwnership(t *testing.T) {
	h := setup(t)
	owner, _ := registerUser(t, h)
	other, _ := registerUser(t, h)
	id := submitCase(t, h, owner, false)

	_, err := h.ScheduleAppointment(other, &rpc.ScheduleAppointmentRequest{CaseID: id, Date: "2030-01-01", Time: "10:00"})
	if code(err) != codes.NotFound {
		t.Errorf("expected NotFound for foreign case, got %v", code(err))
	}

	sr, err := h.ScheduleAppointment(owner, &rpc.ScheduleAppointmentRequest{CaseID: id, Date: "2030-01-01", Time: "10:00"})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if sr.Status != "Scheduled" || sr.AppointmentStatus != "Pending" {
		t.Errorf("unexpected response: %+v", sr)
	}

	lr, err := h.ListAppointments(owner, &rpc.ListAppointmentsRequest{CaseID: id})
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(lr.Appointments) != 1 || lr.Appointments[0].CaseID != id {
		t.Errorf("unexpected appointments: %+v", lr.Appointments)
	}
}

func TestScheduleAppointmentValidation(t *testing.T) {
	h := setup(t)
	ctx, _ := registerUser(t, h)
	id := submitCase(t, h, ctx, false)

	tests := []struct {
		name string
		req  *rpc.ScheduleAppointmentRequest
	}{
		{"missing date", &rpc.ScheduleAppointmentRequest{CaseID: id, Time: "10:00"}},
		{"missing time", &rpc.ScheduleAppointmentRequest{CaseID: id, Date: "2030-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.ScheduleAppointment(ctx, tt.req)
			if code(err) != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", code(err))
			}
		})
	}
}

func TestLookupCase(t *testing.T) {
	h := setup(t)
	ctx, _ := registerUser(t, h)

	resp, err := h.SubmitCase(ctx, &rpc.SubmitCaseRequest{
		Description: "lost wallet", TermsAccepted: true, CaseSecret: "open sesame",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	lr, err := h.LookupCase(context.Background(), &rpc.LookupCaseRequest{CaseID: resp.CaseID, CaseSecret: "open sesame"})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if lr.Status != "Received" {
		t.Errorf("expected Received, got %q", lr.Status)
	}

	_, err = h.LookupCase(context.Background(), &rpc.LookupCaseRequest{CaseID: resp.CaseID, CaseSecret: "wrong"})
	if code(err) != codes.NotFound {
		t.Errorf("expected NotFound, got %v", code(err))
	}
}
