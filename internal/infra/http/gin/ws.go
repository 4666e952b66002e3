package ginserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"marketchat/internal/app/dto"
	chatsvc "marketchat/internal/app/services/chat"
	domainchat "marketchat/internal/domain/chat"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamMessages pushes the room's latest window on every change. The client may send
// {"type":"ack"} frames to mark the room read.
func (h ChatHandler) StreamMessages(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	id := roomParam(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger().Debug("websocket upgrade failed", "room_id", id, "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub, err := h.Chat.SubscribeMessages(ctx, p.Caller(), id)
	if err != nil {
		h.streamFailed(conn, err, "could not load conversation", "room_id", id, "user_id", p.ID)
		return
	}
	defer sub.Unsubscribe()

	go readPump(conn, cancel, func(frame dto.ClientFrame) {
		if frame.Type != dto.FrameAck {
			return
		}
		err := h.Chat.AcknowledgeRoom(ctx, p.Caller(), id)
		if err != nil && !errors.Is(err, domainchat.ErrNotFound) && ctx.Err() == nil {
			h.logger().Warn("websocket ack failed", "room_id", id, "user_id", p.ID, "error", err)
		}
	})
	writePump(ctx, h, conn, sub, func(window []domainchat.Message) dto.Frame {
		return dto.Frame{Type: dto.FrameSnapshot, Messages: dto.MapMessages(window)}
	}, "could not load conversation", "room_id", id, "user_id", p.ID)
}

// StreamRooms pushes the caller's room list with unread counts on every change.
func (h ChatHandler) StreamRooms(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger().Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub, err := h.Chat.SubscribeMyRooms(ctx, p.Caller())
	if err != nil {
		h.streamFailed(conn, err, "could not load conversations", "user_id", p.ID)
		return
	}
	defer sub.Unsubscribe()

	go readPump(conn, cancel, func(dto.ClientFrame) {})
	writePump(ctx, h, conn, sub, func(rooms []domainchat.RoomSummary) dto.Frame {
		return dto.Frame{Type: dto.FrameRooms, Rooms: dto.MapRoomSummaries(rooms)}
	}, "could not load conversations", "user_id", p.ID)
}

// readPump consumes client frames until the peer goes away, then cancels the stream.
func readPump(conn *websocket.Conn, cancel context.CancelFunc, onFrame func(dto.ClientFrame)) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var frame dto.ClientFrame
		if json.Unmarshal(data, &frame) != nil {
			continue
		}
		onFrame(frame)
	}
}

// writePump is the only writer on conn.
func writePump[T any](ctx context.Context, h ChatHandler, conn *websocket.Conn, sub *chatsvc.Subscription[T], render func(T) dto.Frame, failure string, attrs ...any) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			closeNormally(conn)
			return
		case v, ok := <-sub.Events():
			if !ok {
				if err := sub.Err(); err != nil {
					h.streamFailed(conn, err, failure, attrs...)
					return
				}
				closeNormally(conn)
				return
			}
			if err := writeFrame(conn, render(v)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// streamFailed reports a subscription failure as an error frame and closes. Subscribers
// never receive an empty snapshot in place of an error.
func (h ChatHandler) streamFailed(conn *websocket.Conn, err error, message string, attrs ...any) {
	status, code := chatStatus(err)
	args := append([]any{"code", code, "error", err}, attrs...)
	if status >= http.StatusInternalServerError {
		h.logger().Error("chat subscription failed", args...)
	} else {
		h.logger().Warn("chat subscription rejected", args...)
	}
	_ = writeFrame(conn, dto.Frame{Type: dto.FrameError, Error: message})
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(closeCodeFor(status), message),
		time.Now().Add(writeWait))
}

func writeFrame(conn *websocket.Conn, frame dto.Frame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(frame)
}

func closeNormally(conn *websocket.Conn) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

func closeCodeFor(status int) int {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return websocket.ClosePolicyViolation
	case http.StatusServiceUnavailable:
		return websocket.CloseTryAgainLater
	default:
		return websocket.CloseInternalServerErr
	}
}

func (h ChatHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
