package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "fir.v1.CaseService"

// full method names, as seen by interceptors
const (
	MethodRegister            = "/" + ServiceName + "/Register"
	MethodLogin               = "/" + ServiceName + "/Login"
	MethodRefresh             = "/" + ServiceName + "/Refresh"
	MethodLogout              = "/" + ServiceName + "/Logout"
	MethodSubmitCase          = "/" + ServiceName + "/SubmitCase"
	MethodScheduleAppointment = "/" + ServiceName + "/ScheduleAppointment"
	MethodListCases           = "/" + ServiceName + "/ListCases"
	MethodListAppointments    = "/" + ServiceName + "/ListAppointments"
	MethodLookupCase          = "/" + ServiceName + "/LookupCase"
)

type CaseServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)
	SubmitCase(context.Context, *SubmitCaseRequest) (*SubmitCaseResponse, error)
	ScheduleAppointment(context.Context, *ScheduleAppointmentRequest) (*ScheduleAppointmentResponse, error)
	ListCases(context.Context, *Empty) (*ListCasesResponse, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
	LookupCase(context.Context, *LookupCaseRequest) (*LookupCaseResponse, error)
}

// UnimplementedCaseServiceServer can be embedded for forward compatibility.
type UnimplementedCaseServiceServer struct{}

func (UnimplementedCaseServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedCaseServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedCaseServiceServer) Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedCaseServiceServer) Logout(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedCaseServiceServer) SubmitCase(context.Context, *SubmitCaseRequest) (*SubmitCaseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitCase not implemented")
}
func (UnimplementedCaseServiceServer) ScheduleAppointment(context.Context, *ScheduleAppointmentRequest) (*ScheduleAppointmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ScheduleAppointment not implemented")
}
func (UnimplementedCaseServiceServer) ListCases(context.Context, *Empty) (*ListCasesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCases not implemented")
}
func (UnimplementedCaseServiceServer) ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAppointments not implemented")
}
func (UnimplementedCaseServiceServer) LookupCase(context.Context, *LookupCaseRequest) (*LookupCaseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LookupCase not implemented")
}

func RegisterCaseServiceServer(s grpc.ServiceRegistrar, srv CaseServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unary builds a grpc.MethodDesc handler for one method.
func unary[Req any, PReq interface {
	*Req
	Message
}, Resp Message](
	full string,
	call func(CaseServiceServer, context.Context, PReq) (Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CaseServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CaseServiceServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(MethodRegister, CaseServiceServer.Register)},
		{MethodName: "Login", Handler: unary(MethodLogin, CaseServiceServer.Login)},
		{MethodName: "Refresh", Handler: unary(MethodRefresh, CaseServiceServer.Refresh)},
		{MethodName: "Logout", Handler: unary(MethodLogout, CaseServiceServer.Logout)},
		{MethodName: "SubmitCase", Handler: unary(MethodSubmitCase, CaseServiceServer.SubmitCase)},
		{MethodName: "ScheduleAppointment", Handler: unary(MethodScheduleAppointment, CaseServiceServer.ScheduleAppointment)},
		{MethodName: "ListCases", Handler: unary(MethodListCases, CaseServiceServer.ListCases)},
		{MethodName: "ListAppointments", Handler: unary(MethodListAppointments, CaseServiceServer.ListAppointments)},
		{MethodName: "LookupCase", Handler: unary(MethodLookupCase, CaseServiceServer.LookupCase)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fir/v1/fir.proto",
}
