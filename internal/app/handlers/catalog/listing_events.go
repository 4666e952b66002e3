package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/IBM/sarama"

	domaincatalog "marketchat/internal/domain/catalog"
)

const (
	TopicListingEvents = "listing.events.v1"

	typeListingCreated = "listing.created.v1"
	typeListingUpdated = "listing.updated.v1"
)

// Inbox deduplicates consumed events. Forget undoes Seen when handling fails.
type Inbox interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}

type cloudEvent struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type listingData struct {
	ListingID string `json:"listing_id"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	SellerID  string `json:"seller_id"`
	HostID    string `json:"host_id"`
}

func (d listingData) listing() domaincatalog.Listing {
	l := domaincatalog.Listing{ID: d.ListingID, Title: d.Title, SellerID: d.SellerID}
	if l.ID == "" {
		l.ID = d.ID
	}
	if l.SellerID == "" {
		l.SellerID = d.HostID
	}
	return l
}

// ListingEventsHandler projects listing CloudEvents into the chat catalog.
type ListingEventsHandler struct {
	Catalog domaincatalog.Catalog
	Inbox   Inbox
	Logger  *slog.Logger
}

// Handle applies one broker message. Malformed and unknown events are dropped; only
// store failures are returned so the message stays uncommitted.
func (h *ListingEventsHandler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	return h.Apply(ctx, msg.Value)
}

func (h *ListingEventsHandler) Apply(ctx context.Context, payload []byte) error {
	log := h.logger()
	var evt cloudEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		log.Warn("listing event dropped", "reason", "malformed envelope", "error", err)
		return nil
	}
	if evt.Type != typeListingCreated && evt.Type != typeListingUpdated {
		return nil
	}
	var data listingData
	if err := json.Unmarshal(evt.Data, &data); err != nil {
		log.Warn("listing event dropped", "event_id", evt.ID, "reason", "malformed data", "error", err)
		return nil
	}
	listing, err := data.listing().Normalize()
	if err != nil {
		log.Warn("listing event dropped", "event_id", evt.ID, "error", err)
		return nil
	}

	eventID := strings.TrimSpace(evt.ID)
	if h.Inbox != nil && eventID != "" {
		seen, err := h.Inbox.Seen(ctx, eventID)
		if err != nil {
			return fmt.Errorf("inbox: %w", err)
		}
		if seen {
			log.Debug("listing event already applied", "event_id", eventID)
			return nil
		}
	}
	if err := h.Catalog.Upsert(ctx, listing); err != nil {
		if h.Inbox != nil && eventID != "" {
			err = errors.Join(err, h.Inbox.Forget(ctx, eventID))
		}
		return fmt.Errorf("catalog upsert %s: %w", listing.ID, err)
	}
	log.Info("listing projected", "event_id", eventID, "listing_id", listing.ID)
	return nil
}

func (h *ListingEventsHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
