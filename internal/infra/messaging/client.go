package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	chatsvc "marketchat/internal/app/services/chat"
	domainchat "marketchat/internal/domain/chat"
	"marketchat/internal/infra/grpc/chatv1"
)

// Config defines gRPC client settings.
type Config struct {
	Addr        string
	CallTimeout time.Duration
}

// Client reaches a remote chat core over gRPC. It satisfies the same API as the
// in-process service and returns the same error sentinels.
type Client struct {
	conn        *grpc.ClientConn
	svc         chatv1.ChatServiceClient
	health      healthpb.HealthClient
	callTimeout time.Duration
	logger      *slog.Logger
}

// NewClient prepares a connection to the chat core. Extra dial options are appended to the
// defaults (plaintext transport).
func NewClient(cfg Config, logger *slog.Logger, opts ...grpc.DialOption) (*Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("messaging: address required")
	}
	callTimeout := cfg.CallTimeout
	if callTimeout <= 0 {
		callTimeout = 5 * time.Second
	}
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(cfg.Addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("messaging: dial %s: %w", cfg.Addr, err)
	}
	if logger != nil {
		logger.Info("messaging grpc client ready", "addr", cfg.Addr)
	}
	return &Client{
		conn:        conn,
		svc:         chatv1.NewChatServiceClient(conn),
		health:      healthpb.NewHealthClient(conn),
		callTimeout: callTimeout,
		logger:      logger,
	}, nil
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Ping asks the chat core's health service whether ChatService is serving.
func (c *Client) Ping(ctx context.Context) error {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()
	resp, err := c.health.Check(callCtx, &healthpb.HealthCheckRequest{Service: chatv1.ServiceName})
	if err != nil {
		return chatv1.FromStatus(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("chat core %s: %w", resp.GetStatus(), domainchat.ErrTransient)
	}
	return nil
}

func (c *Client) ResolveRoomID(ctx context.Context, caller domainchat.Caller, other, listingID string) (domainchat.RoomID, error) {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	resp, err := c.svc.ResolveRoomID(callCtx, &chatv1.ResolveRoomIDRequest{OtherId: other, ListingId: listingID})
	if err != nil {
		return "", chatv1.FromStatus(err)
	}
	return domainchat.RoomID(resp.GetRoomId()), nil
}

func (c *Client) EnsureRoom(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, other string, rc domainchat.RoomContext) (bool, error) {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	resp, err := c.svc.EnsureRoom(callCtx, &chatv1.EnsureRoomRequest{
		RoomId:       id.String(),
		OtherId:      other,
		ListingId:    rc.ListingID,
		ListingTitle: rc.ListingTitle,
	})
	if err != nil {
		return false, chatv1.FromStatus(err)
	}
	return resp.GetCreated(), nil
}

func (c *Client) StartListingConversation(ctx context.Context, caller domainchat.Caller, listingID string) (*domainchat.Room, error) {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	resp, err := c.svc.StartListingConversation(callCtx, &chatv1.StartListingConversationRequest{ListingId: listingID})
	if err != nil {
		return nil, chatv1.FromStatus(err)
	}
	return roomFrom(resp)
}

func (c *Client) Room(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) (*domainchat.Room, error) {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	resp, err := c.svc.GetRoom(callCtx, &chatv1.GetRoomRequest{RoomId: id.String()})
	if err != nil {
		return nil, chatv1.FromStatus(err)
	}
	return roomFrom(resp)
}

func (c *Client) ListMyRooms(ctx context.Context, caller domainchat.Caller) ([]domainchat.RoomSummary, error) {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	resp, err := c.svc.ListRooms(callCtx, &chatv1.ListRoomsRequest{})
	if err != nil {
		return nil, chatv1.FromStatus(err)
	}
	return chatv1.FromProtoSummaries(resp.GetRooms()), nil
}

func (c *Client) SendMessage(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, text string, opts chatsvc.SendOptions) (domainchat.Message, error) {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	resp, err := c.svc.SendMessage(callCtx, &chatv1.SendMessageRequest{
		RoomId:         id.String(),
		Text:           text,
		IdempotencyKey: opts.IdempotencyKey,
	})
	if err != nil {
		return domainchat.Message{}, chatv1.FromStatus(err)
	}
	return chatv1.FromProtoMessage(resp.GetMessage()), nil
}

func (c *Client) ListMessages(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, params chatsvc.ListParams) (domainchat.Page, error) {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	resp, err := c.svc.ListMessages(callCtx, &chatv1.ListMessagesRequest{
		RoomId: id.String(),
		Limit:  int32(params.Limit),
		Cursor: params.Cursor,
	})
	if err != nil {
		return domainchat.Page{}, chatv1.FromStatus(err)
	}
	return domainchat.Page{Messages: chatv1.FromProtoMessages(resp.GetMessages()), NextCursor: resp.GetNextCursor()}, nil
}

func (c *Client) AcknowledgeRoom(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) error {
	callCtx, cancel := c.wrapCall(ctx, caller)
	defer cancel()
	if _, err := c.svc.AcknowledgeRoom(callCtx, &chatv1.AcknowledgeRoomRequest{RoomId: id.String()}); err != nil {
		return chatv1.FromStatus(err)
	}
	return nil
}

// SubscribeMessages opens the remote stream and waits for its first snapshot, so a
// refused subscription fails here just like the in-process one.
func (c *Client) SubscribeMessages(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) (*chatsvc.Subscription[[]domainchat.Message], error) {
	return subscribe(ctx, c, caller, func(ctx context.Context) (grpc.ServerStreamingClient[chatv1.MessagesSnapshot], error) {
		return c.svc.SubscribeMessages(ctx, &chatv1.SubscribeMessagesRequest{RoomId: id.String()})
	}, func(s *chatv1.MessagesSnapshot) []domainchat.Message {
		return chatv1.FromProtoMessages(s.GetMessages())
	})
}

func (c *Client) SubscribeMyRooms(ctx context.Context, caller domainchat.Caller) (*chatsvc.Subscription[[]domainchat.RoomSummary], error) {
	return subscribe(ctx, c, caller, func(ctx context.Context) (grpc.ServerStreamingClient[chatv1.RoomsSnapshot], error) {
		return c.svc.SubscribeRooms(ctx, &chatv1.SubscribeRoomsRequest{})
	}, func(s *chatv1.RoomsSnapshot) []domainchat.RoomSummary {
		return chatv1.FromProtoSummaries(s.GetRooms())
	})
}

func subscribe[W, T any](
	ctx context.Context,
	c *Client,
	caller domainchat.Caller,
	open func(context.Context) (grpc.ServerStreamingClient[W], error),
	convert func(*W) T,
) (*chatsvc.Subscription[T], error) {
	streamCtx, cancel := context.WithCancel(withCredential(ctx, caller))
	stream, err := open(streamCtx)
	if err != nil {
		cancel()
		return nil, chatv1.FromStatus(err)
	}
	first, err := stream.Recv()
	if err != nil {
		cancel()
		return nil, streamErr(err)
	}
	return chatsvc.NewSubscription(ctx, func(pumpCtx context.Context, emit func(T) bool) error {
		stop := context.AfterFunc(pumpCtx, cancel)
		defer stop()
		defer cancel()
		next := first
		for {
			if !emit(convert(next)) {
				return nil
			}
			next, err = stream.Recv()
			if err != nil {
				if pumpCtx.Err() != nil {
					return pumpCtx.Err()
				}
				if c.logger != nil {
					c.logger.Warn("chat stream ended", "error", err)
				}
				return streamErr(err)
			}
		}
	}), nil
}

func roomFrom(resp *chatv1.RoomResponse) (*domainchat.Room, error) {
	room := chatv1.FromProtoRoom(resp.GetRoom())
	if room == nil {
		return nil, errors.New("messaging: response without room")
	}
	return room, nil
}

func streamErr(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("chat stream closed: %w", domainchat.ErrTransient)
	}
	return chatv1.FromStatus(err)
}

func (c *Client) wrapCall(ctx context.Context, caller domainchat.Caller) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := c.callTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(withCredential(ctx, caller), timeout)
}

func withCredential(ctx context.Context, caller domainchat.Caller) context.Context {
	if caller.Credential == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+caller.Credential)
}

var _ chatsvc.API = (*Client)(nil)
