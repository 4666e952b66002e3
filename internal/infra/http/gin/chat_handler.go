package ginserver

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"

	"marketchat/internal/app/dto"
	chatsvc "marketchat/internal/app/services/chat"
	domainchat "marketchat/internal/domain/chat"
)

const idempotencyHeader = "Idempotency-Key"

type ChatHTTP interface {
	Resolve(c *gin.Context)
	Ensure(c *gin.Context)
	StartListingConversation(c *gin.Context)
	ListRooms(c *gin.Context)
	GetRoom(c *gin.Context)
	ListMessages(c *gin.Context)
	SendMessage(c *gin.Context)
	Acknowledge(c *gin.Context)
	StreamMessages(c *gin.Context)
	StreamRooms(c *gin.Context)
}

// ChatHandler exposes the chat API over HTTP. Chat is either the in-process service or
// the gRPC client of a remote chat core.
type ChatHandler struct {
	Chat   chatsvc.API
	Logger *slog.Logger
}

func (h ChatHandler) Resolve(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	id, err := h.Chat.ResolveRoomID(c.Request.Context(), p.Caller(), c.Query("other_id"), c.Query("listing_id"))
	if err != nil {
		respondChatError(c, h.Logger, err, "resolve")
		return
	}
	c.JSON(http.StatusOK, dto.ResolveRoomResponse{RoomID: id.String()})
}

func (h ChatHandler) Ensure(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	var req dto.EnsureRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id := roomParam(c)
	created, err := h.Chat.EnsureRoom(c.Request.Context(), p.Caller(), id, req.OtherID, domainchat.RoomContext{
		ListingID:    req.ListingID,
		ListingTitle: req.ListingTitle,
	})
	if err != nil {
		respondChatError(c, h.Logger, err, "ensure", "room_id", id)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.EnsureRoomResponse{RoomID: id.String(), Created: created})
}

func (h ChatHandler) StartListingConversation(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	listingID := strings.TrimSpace(c.Param("id"))
	room, err := h.Chat.StartListingConversation(c.Request.Context(), p.Caller(), listingID)
	if err != nil {
		respondChatError(c, h.Logger, err, "start_listing_conversation", "listing_id", listingID)
		return
	}
	c.JSON(http.StatusOK, dto.MapRoom(room))
}

func (h ChatHandler) ListRooms(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	rooms, err := h.Chat.ListMyRooms(c.Request.Context(), p.Caller())
	if err != nil {
		respondChatError(c, h.Logger, err, "list_rooms")
		return
	}
	c.JSON(http.StatusOK, dto.RoomList{Items: dto.MapRoomSummaries(rooms)})
}

func (h ChatHandler) GetRoom(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	id := roomParam(c)
	room, err := h.Chat.Room(c.Request.Context(), p.Caller(), id)
	if err != nil {
		respondChatError(c, h.Logger, err, "get_room", "room_id", id)
		return
	}
	c.JSON(http.StatusOK, dto.MapRoom(room))
}

func (h ChatHandler) ListMessages(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	id := roomParam(c)
	page, err := h.Chat.ListMessages(c.Request.Context(), p.Caller(), id, chatsvc.ListParams{
		Limit:  parsePositiveIntStrict(c.Query("limit"), 0),
		Cursor: strings.TrimSpace(c.Query("cursor")),
	})
	if err != nil {
		respondChatError(c, h.Logger, err, "list_messages", "room_id", id)
		return
	}
	c.JSON(http.StatusOK, dto.MapPage(page))
}

func (h ChatHandler) SendMessage(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id := roomParam(c)
	msg, err := h.Chat.SendMessage(c.Request.Context(), p.Caller(), id, req.Text, chatsvc.SendOptions{
		IdempotencyKey: strings.TrimSpace(c.GetHeader(idempotencyHeader)),
	})
	if err != nil {
		respondChatError(c, h.Logger, err, "send_message", "room_id", id)
		return
	}
	c.JSON(http.StatusCreated, dto.MapMessage(msg))
}

func (h ChatHandler) Acknowledge(c *gin.Context) {
	p, ok := h.begin(c)
	if !ok {
		return
	}
	id := roomParam(c)
	if err := h.Chat.AcknowledgeRoom(c.Request.Context(), p.Caller(), id); err != nil {
		respondChatError(c, h.Logger, err, "acknowledge", "room_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h ChatHandler) begin(c *gin.Context) (principal, bool) {
	p, ok := requirePrincipal(c)
	if !ok {
		return principal{}, false
	}
	if h.Chat == nil {
		c.JSON(http.StatusServiceUnavailable, errorBody(chatsvc.ErrServiceNotConfigured, "chat unavailable"))
		return principal{}, false
	}
	return p, true
}

func roomParam(c *gin.Context) domainchat.RoomID {
	return domainchat.RoomID(strings.TrimSpace(c.Param("id")))
}

func parsePositiveIntStrict(raw string, def int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return def
	}
	return value
}

var _ ChatHTTP = (*ChatHandler)(nil)
