package handler

import (
	"context"

	"fir-portal/internal/middleware"
	"fir-portal/internal/model"
	"fir-portal/internal/rpc"
	"fir-portal/internal/workflow"
)

func (h *Handler) SubmitCase(ctx context.Context, req *rpc.SubmitCaseRequest) (*rpc.SubmitCaseResponse, error) {
	in := workflow.SubmitInput{
		ReporterName:    req.ReporterName,
		ReporterAddress: req.ReporterAddress,
		Description:     req.Description,
		Anonymous:       req.Anonymous,
		TermsAccepted:   req.TermsAccepted,
		CaseSecret:      req.CaseSecret,
	}
	for _, a := range req.Attachments {
		in.Attachments = append(in.Attachments, workflow.File{Name: a.Filename, Data: a.Content})
	}

	res, err := h.cases.SubmitCase(ctx, middleware.PrincipalFrom(ctx).Handle, in)
	if err != nil {
		return nil, caseStatus(err)
	}
	return &rpc.SubmitCaseResponse{CaseID: res.CaseID, Status: res.Status}, nil
}

func (h *Handler) ListCases(ctx context.Context, _ *rpc.Empty) (*rpc.ListCasesResponse, error) {
	cs, err := h.cases.ListOwnedCases(ctx, middleware.PrincipalFrom(ctx).Handle)
	if err != nil {
		return nil, caseStatus(err)
	}

	out := make([]*rpc.Case, len(cs))
	for i := range cs {
		out[i] = toCase(&cs[i])
	}
	return &rpc.ListCasesResponse{Cases: out}, nil
}

// LookupCase is open: the case secret is the only credential.
func (h *Handler) LookupCase(ctx context.Context, req *rpc.LookupCaseRequest) (*rpc.LookupCaseResponse, error) {
	res, err := h.cases.LookupCase(ctx, req.CaseID, req.CaseSecret)
	if err != nil {
		return nil, caseStatus(err)
	}
	return &rpc.LookupCaseResponse{CaseID: res.CaseID, Status: res.Status, CreatedAt: res.CreatedAt}, nil
}

func toCase(c *model.Case) *rpc.Case {
	return &rpc.Case{
		CaseID:          c.CaseID,
		ReporterName:    c.ReporterName,
		ReporterAddress: c.ReporterAddress,
		Description:     c.Description,
		Anonymous:       c.Anonymous,
		Attachments:     c.Attachments,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
	}
}
