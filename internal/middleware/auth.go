package middleware

import (
	"context"
	"strings"

	"fir-portal/internal/auth"
	"fir-portal/internal/rpc"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey struct{}

// Principal is the authenticated caller resolved from the access token.
type Principal struct {
	UserID string
	Handle string
}

// skip auth for these
var open = map[string]bool{
	rpc.MethodRegister:   true,
	rpc.MethodLogin:      true,
	rpc.MethodRefresh:    true,
	rpc.MethodLookupCase: true,
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the caller, or the zero Principal on open methods.
func PrincipalFrom(ctx context.Context) Principal {
	p, _ := ctx.Value(ctxKey{}).(Principal)
	return p
}

// Authenticate resolves an "Authorization: Bearer <jwt>" value.
func Authenticate(header, secret string) (Principal, error) {
	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == "" {
		return Principal{}, status.Error(codes.Unauthenticated, "no token")
	}
	claims, err := auth.ParseToken(raw, secret)
	if err != nil {
		return Principal{}, status.Error(codes.Unauthenticated, "bad token")
	}
	return Principal{UserID: claims.UserID, Handle: claims.Handle}, nil
}

func Auth(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		header := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			header = vals[0]
		}

		p, err := Authenticate(header, secret)
		if err != nil {
			return nil, err
		}
		return next(WithPrincipal(ctx, p), req)
	}
}
