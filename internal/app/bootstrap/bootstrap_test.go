package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authsvc "marketchat/internal/app/services/auth"
	"marketchat/internal/domain/catalog"
	"marketchat/internal/infra/config"
	"marketchat/internal/infra/security"
	"marketchat/internal/infra/storage/memory"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadListingFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"L1","title":"Lamp","seller":"u1"},
		{"id":"L2","title":"No seller"}
	]`), 0o600))
	cat := memory.NewCatalog()

	n, err := LoadListingFixtures(context.Background(), path, cat, quiet)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	l, err := cat.Lookup(context.Background(), "L1")
	require.NoError(t, err)
	assert.Equal(t, catalog.Listing{ID: "L1", Title: "Lamp", SellerID: "u1"}, l)

	n, err = LoadListingFixtures(context.Background(), filepath.Join(t.TempDir(), "missing.json"), cat, quiet)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenMemoryStores(t *testing.T) {
	cfg := config.Config{StoreDriver: config.StoreMemory}
	stores, err := OpenStores(context.Background(), cfg, quiet)
	require.NoError(t, err)
	defer stores.Close(context.Background())

	assert.NotNil(t, stores.Chat)
	assert.NotNil(t, stores.Outbox)
	assert.NotNil(t, stores.Idempotency)
	assert.NotNil(t, stores.Inbox)
	assert.NoError(t, stores.Ready(context.Background()))
}

func TestOpenAccountsByProvider(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{Auth: config.Auth{Provider: config.AuthSession}}
	acc, err := OpenAccounts(ctx, cfg, nil, quiet)
	require.NoError(t, err)
	require.NotNil(t, acc.Sessions)
	assert.IsType(t, &authsvc.Service{}, acc.Verifier)
	assert.NoError(t, acc.Close())

	cfg.Auth = config.Auth{Provider: config.AuthJWT, JWTSecret: "s3cret"}
	acc, err = OpenAccounts(ctx, cfg, nil, quiet)
	require.NoError(t, err)
	assert.Nil(t, acc.Sessions)
	assert.IsType(t, security.JWTVerifier{}, acc.Verifier)
}
