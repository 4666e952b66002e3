package grpcserver

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	chatsvc "marketchat/internal/app/services/chat"
	domainchat "marketchat/internal/domain/chat"
	"marketchat/internal/infra/grpc/chatv1"
	"marketchat/internal/infra/obs"
)

var errUnavailable = status.Error(codes.Unavailable, "chat service unavailable")

// Server implements the ChatService contract on top of the chat core.
type Server struct {
	chatv1.UnimplementedChatServiceServer

	Chat   chatsvc.API
	Logger *slog.Logger
}

// New builds a gRPC server exposing ChatService and the standard health service.
func New(srv *Server, auth Authenticator, log *slog.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append(opts,
		grpc.ChainUnaryInterceptor(obs.UnaryServerLogger(log), auth.Unary()),
		grpc.ChainStreamInterceptor(obs.StreamServerLogger(log), auth.Stream()),
	)
	gs := grpc.NewServer(opts...)
	chatv1.RegisterChatServiceServer(gs, srv)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(chatv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return gs, hs
}

func (s *Server) ResolveRoomID(ctx context.Context, req *chatv1.ResolveRoomIDRequest) (*chatv1.ResolveRoomIDResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	id, err := s.Chat.ResolveRoomID(ctx, CallerFromContext(ctx), req.GetOtherId(), req.GetListingId())
	if err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_ResolveRoomID_FullMethodName, err)
	}
	return &chatv1.ResolveRoomIDResponse{RoomId: id.String()}, nil
}

func (s *Server) EnsureRoom(ctx context.Context, req *chatv1.EnsureRoomRequest) (*chatv1.EnsureRoomResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	created, err := s.Chat.EnsureRoom(ctx, CallerFromContext(ctx), roomID(req.GetRoomId()), req.GetOtherId(), domainchat.RoomContext{
		ListingID:    req.GetListingId(),
		ListingTitle: req.GetListingTitle(),
	})
	if err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_EnsureRoom_FullMethodName, err)
	}
	return &chatv1.EnsureRoomResponse{Created: created}, nil
}

func (s *Server) StartListingConversation(ctx context.Context, req *chatv1.StartListingConversationRequest) (*chatv1.RoomResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	room, err := s.Chat.StartListingConversation(ctx, CallerFromContext(ctx), req.GetListingId())
	if err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_StartListingConversation_FullMethodName, err)
	}
	return &chatv1.RoomResponse{Room: chatv1.ToProtoRoom(room)}, nil
}

func (s *Server) GetRoom(ctx context.Context, req *chatv1.GetRoomRequest) (*chatv1.RoomResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	room, err := s.Chat.Room(ctx, CallerFromContext(ctx), roomID(req.GetRoomId()))
	if err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_GetRoom_FullMethodName, err)
	}
	return &chatv1.RoomResponse{Room: chatv1.ToProtoRoom(room)}, nil
}

func (s *Server) ListRooms(ctx context.Context, _ *chatv1.ListRoomsRequest) (*chatv1.ListRoomsResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	rooms, err := s.Chat.ListMyRooms(ctx, CallerFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_ListRooms_FullMethodName, err)
	}
	return &chatv1.ListRoomsResponse{Rooms: chatv1.ToProtoSummaries(rooms)}, nil
}

func (s *Server) SendMessage(ctx context.Context, req *chatv1.SendMessageRequest) (*chatv1.SendMessageResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	msg, err := s.Chat.SendMessage(ctx, CallerFromContext(ctx), roomID(req.GetRoomId()), req.GetText(), chatsvc.SendOptions{
		IdempotencyKey: strings.TrimSpace(req.GetIdempotencyKey()),
	})
	if err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_SendMessage_FullMethodName, err)
	}
	return &chatv1.SendMessageResponse{Message: chatv1.ToProtoMessage(msg)}, nil
}

func (s *Server) ListMessages(ctx context.Context, req *chatv1.ListMessagesRequest) (*chatv1.ListMessagesResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	page, err := s.Chat.ListMessages(ctx, CallerFromContext(ctx), roomID(req.GetRoomId()), chatsvc.ListParams{
		Limit:  int(req.GetLimit()),
		Cursor: req.GetCursor(),
	})
	if err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_ListMessages_FullMethodName, err)
	}
	return &chatv1.ListMessagesResponse{Messages: chatv1.ToProtoMessages(page.Messages), NextCursor: page.NextCursor}, nil
}

func (s *Server) AcknowledgeRoom(ctx context.Context, req *chatv1.AcknowledgeRoomRequest) (*chatv1.AcknowledgeRoomResponse, error) {
	if s.Chat == nil {
		return nil, errUnavailable
	}
	if err := s.Chat.AcknowledgeRoom(ctx, CallerFromContext(ctx), roomID(req.GetRoomId())); err != nil {
		return nil, s.fail(ctx, chatv1.ChatService_AcknowledgeRoom_FullMethodName, err)
	}
	return &chatv1.AcknowledgeRoomResponse{}, nil
}

func (s *Server) SubscribeMessages(req *chatv1.SubscribeMessagesRequest, stream grpc.ServerStreamingServer[chatv1.MessagesSnapshot]) error {
	if s.Chat == nil {
		return errUnavailable
	}
	ctx := stream.Context()
	sub, err := s.Chat.SubscribeMessages(ctx, CallerFromContext(ctx), roomID(req.GetRoomId()))
	if err != nil {
		return s.fail(ctx, chatv1.ChatService_SubscribeMessages_FullMethodName, err)
	}
	return relay(ctx, s, chatv1.ChatService_SubscribeMessages_FullMethodName, sub, func(window []domainchat.Message) error {
		return stream.Send(&chatv1.MessagesSnapshot{Messages: chatv1.ToProtoMessages(window)})
	})
}

func (s *Server) SubscribeRooms(_ *chatv1.SubscribeRoomsRequest, stream grpc.ServerStreamingServer[chatv1.RoomsSnapshot]) error {
	if s.Chat == nil {
		return errUnavailable
	}
	ctx := stream.Context()
	sub, err := s.Chat.SubscribeMyRooms(ctx, CallerFromContext(ctx))
	if err != nil {
		return s.fail(ctx, chatv1.ChatService_SubscribeRooms_FullMethodName, err)
	}
	return relay(ctx, s, chatv1.ChatService_SubscribeRooms_FullMethodName, sub, func(rooms []domainchat.RoomSummary) error {
		return stream.Send(&chatv1.RoomsSnapshot{Rooms: chatv1.ToProtoSummaries(rooms)})
	})
}

// relay forwards snapshots until the subscription ends or the client goes away.
func relay[T any](ctx context.Context, s *Server, method string, sub *chatsvc.Subscription[T], send func(T) error) error {
	defer sub.Unsubscribe()
	for snapshot := range sub.Events() {
		if err := send(snapshot); err != nil {
			return err
		}
	}
	if err := sub.Err(); err != nil {
		return s.fail(ctx, method, err)
	}
	return ctx.Err()
}

func (s *Server) fail(ctx context.Context, method string, err error) error {
	st := chatv1.ToStatus(err)
	if s.Logger != nil && !isCallerError(err) {
		s.Logger.ErrorContext(ctx, "chat rpc failed", "method", method, "error", err)
	}
	return st
}

func isCallerError(err error) bool {
	return domainchat.IsValidation(err) ||
		errors.Is(err, domainchat.ErrUnauthenticated) ||
		errors.Is(err, domainchat.ErrPermissionDenied) ||
		errors.Is(err, domainchat.ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

func roomID(raw string) domainchat.RoomID {
	return domainchat.RoomID(strings.TrimSpace(raw))
}

var _ chatv1.ChatServiceServer = (*Server)(nil)
