package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaincatalog "marketchat/internal/domain/catalog"
	"marketchat/internal/infra/storage/memory"
)

type failingCatalog struct{ domaincatalog.Catalog }

func (failingCatalog) Upsert(context.Context, domaincatalog.Listing) error {
	return errors.New("store down")
}

func newHandler(cat domaincatalog.Catalog, inbox Inbox) *ListingEventsHandler {
	return &ListingEventsHandler{Catalog: cat, Inbox: inbox, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

const created = `{"specversion":"1.0","id":"ev-1","type":"listing.created.v1",
	"data":{"listing_id":"L7","title":" Tent ","host_id":"u9"}}`

func TestListingCreatedIsProjected(t *testing.T) {
	cat := memory.NewCatalog()
	h := newHandler(cat, memory.NewInbox())

	require.NoError(t, h.Handle(context.Background(), &sarama.ConsumerMessage{Value: []byte(created)}))
	l, err := cat.Lookup(context.Background(), "L7")
	require.NoError(t, err)
	assert.Equal(t, domaincatalog.Listing{ID: "L7", Title: "Tent", SellerID: "u9"}, l)
}

func TestDuplicateEventIsSkipped(t *testing.T) {
	cat := memory.NewCatalog()
	h := newHandler(cat, memory.NewInbox())
	ctx := context.Background()

	require.NoError(t, h.Apply(ctx, []byte(created)))
	require.NoError(t, cat.Upsert(ctx, domaincatalog.Listing{ID: "L7", Title: "Renamed", SellerID: "u9"}))
	require.NoError(t, h.Apply(ctx, []byte(created)))

	l, err := cat.Lookup(ctx, "L7")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", l.Title)
}

func TestUnusableEventsAreDropped(t *testing.T) {
	cat := memory.NewCatalog()
	h := newHandler(cat, nil)
	ctx := context.Background()

	for _, payload := range []string{
		`not json`,
		`{"id":"x","type":"listing.suspended.v1","data":{"listing_id":"L1","seller_id":"u1"}}`,
		`{"id":"y","type":"listing.updated.v1","data":"oops"}`,
		`{"id":"z","type":"listing.updated.v1","data":{"listing_id":"L1"}}`,
	} {
		assert.NoError(t, h.Apply(ctx, []byte(payload)), payload)
	}
	assert.Equal(t, 0, cat.Len())
}

func TestFailedUpsertCanBeRetried(t *testing.T) {
	inbox := memory.NewInbox()
	h := newHandler(failingCatalog{}, inbox)
	ctx := context.Background()

	require.Error(t, h.Apply(ctx, []byte(created)))

	cat := memory.NewCatalog()
	h.Catalog = cat
	require.NoError(t, h.Apply(ctx, []byte(created)))
	_, err := cat.Lookup(ctx, "L7")
	assert.NoError(t, err)
}
