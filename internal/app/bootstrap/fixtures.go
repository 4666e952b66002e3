package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"marketchat/internal/domain/catalog"
)

type listingFixture struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Seller string `json:"seller"`
}

// LoadListingFixtures seeds the catalog from a JSON array. A missing file is not an error.
func LoadListingFixtures(ctx context.Context, path string, cat catalog.Catalog, logger *slog.Logger) (int, error) {
	if path == "" {
		path = defaultListingFixturesPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("listing fixtures file not found, skipping", "path", path)
			return 0, nil
		}
		return 0, fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("listing fixtures file empty", "path", path)
		return 0, nil
	}

	var fixtures []listingFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return 0, fmt.Errorf("decode fixtures: %w", err)
	}
	loaded := 0
	for _, fx := range fixtures {
		listing := catalog.Listing{ID: fx.ID, Title: fx.Title, SellerID: fx.Seller}
		if err := cat.Upsert(ctx, listing); err != nil {
			logger.Error("fixture listing rejected", "listing_id", fx.ID, "error", err)
			continue
		}
		loaded++
	}
	logger.Info("listing fixtures imported", "path", path, "count", loaded)
	return loaded, nil
}

func defaultListingFixturesPath() string {
	candidates := []string{
		filepath.Join("data", "listings.json"),
		filepath.Join("..", "..", "data", "listings.json"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return candidates[0]
}
