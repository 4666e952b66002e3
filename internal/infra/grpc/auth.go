package grpcserver

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	domainauth "marketchat/internal/domain/auth"
	domainchat "marketchat/internal/domain/chat"
)

type callerKey struct{}

// WithCaller stores the verified caller on ctx.
func WithCaller(ctx context.Context, caller domainchat.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the verified caller, or the anonymous caller.
func CallerFromContext(ctx context.Context) domainchat.Caller {
	caller, _ := ctx.Value(callerKey{}).(domainchat.Caller)
	return caller
}

// Authenticator verifies the authorization metadata of ChatService calls. Calls without
// a credential continue anonymously and are refused by the chat service itself.
type Authenticator struct {
	Verifier domainauth.Verifier
	Logger   *slog.Logger
}

func (a Authenticator) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if skipAuth(info.FullMethod) {
			return handler(ctx, req)
		}
		ctx, err := a.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func (a Authenticator) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if skipAuth(info.FullMethod) {
			return handler(srv, ss)
		}
		ctx, err := a.authenticate(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
	}
}

func (a Authenticator) authenticate(ctx context.Context) (context.Context, error) {
	token := bearerFromMetadata(ctx)
	if token == "" || a.Verifier == nil {
		return ctx, nil
	}
	identity, err := a.Verifier.Verify(ctx, token)
	if err != nil {
		if a.Logger != nil && !errors.Is(err, domainauth.ErrSessionNotFound) {
			a.Logger.Debug("grpc token validation failed", "error", err)
		}
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return WithCaller(ctx, domainchat.Caller{UserID: string(identity.UserID), Credential: token}), nil
}

func bearerFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get("authorization") {
		if len(v) > 7 && strings.EqualFold(v[:7], "bearer ") {
			return strings.TrimSpace(v[7:])
		}
	}
	return ""
}

func skipAuth(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/grpc.health.v1.Health/")
}

type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }
