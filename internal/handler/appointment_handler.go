package handler

import (
	"context"

	"fir-portal/internal/middleware"
	"fir-portal/internal/model"
	"fir-portal/internal/rpc"
	"fir-portal/internal/workflow"
)

func (h *Handler) ScheduleAppointment(ctx context.Context, req *rpc.ScheduleAppointmentRequest) (*rpc.ScheduleAppointmentResponse, error) {
	res, err := h.cases.ScheduleAppointment(ctx, middleware.PrincipalFrom(ctx).Handle, workflow.ScheduleInput{
		CaseID: req.CaseID,
		Date:   req.Date,
		Time:   req.Time,
	})
	if err != nil {
		return nil, caseStatus(err)
	}

	out := &rpc.ScheduleAppointmentResponse{AppointmentID: res.AppointmentID, Status: res.Status}
	if res.Appointment != nil {
		out.AppointmentStatus = res.Appointment.Status
	}
	return out, nil
}

func (h *Handler) ListAppointments(ctx context.Context, req *rpc.ListAppointmentsRequest) (*rpc.ListAppointmentsResponse, error) {
	if req.CaseID == "" {
		return nil, caseStatus(workflow.ErrNotAuthorized)
	}

	apts, err := h.cases.ListAppointments(ctx, middleware.PrincipalFrom(ctx).Handle, req.CaseID)
	if err != nil {
		return nil, caseStatus(err)
	}

	out := make([]*rpc.Appointment, len(apts))
	for i := range apts {
		out[i] = toAppointment(&apts[i])
	}
	return &rpc.ListAppointmentsResponse{Appointments: out}, nil
}

func toAppointment(a *model.Appointment) *rpc.Appointment {
	return &rpc.Appointment{
		ID:        a.ID,
		CaseID:    a.CaseID,
		Date:      a.Date,
		Time:      a.Time,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}
