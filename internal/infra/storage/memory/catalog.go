package memory

import (
	"context"
	"strings"
	"sync"

	"marketchat/internal/domain/catalog"
)

// Catalog is the listing directory the chat core consults for sellers and titles.
type Catalog struct {
	mu       sync.RWMutex
	listings map[string]catalog.Listing
}

func NewCatalog(seed ...catalog.Listing) *Catalog {
	c := &Catalog{listings: make(map[string]catalog.Listing, len(seed))}
	for _, l := range seed {
		if norm, err := l.Normalize(); err == nil {
			c.listings[norm.ID] = norm
		}
	}
	return c
}

func (c *Catalog) Lookup(ctx context.Context, id string) (catalog.Listing, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.listings[strings.TrimSpace(id)]
	if !ok {
		return catalog.Listing{}, catalog.ErrListingNotFound
	}
	return l, nil
}

func (c *Catalog) Upsert(ctx context.Context, listing catalog.Listing) error {
	norm, err := listing.Normalize()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings[norm.ID] = norm
	return nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listings)
}

var _ catalog.Catalog = (*Catalog)(nil)
