package catalog

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrListingNotFound = errors.New("catalog: listing not found")
	ErrListingInvalid  = errors.New("catalog: listing id and seller are required")
)

// Listing is the slice of a marketplace listing the chat needs: who sells it and
// what to call the conversation.
type Listing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	SellerID string `json:"seller_id"`
}

// Normalize trims fields and validates required ones.
func (l Listing) Normalize() (Listing, error) {
	l.ID = strings.TrimSpace(l.ID)
	l.Title = strings.TrimSpace(l.Title)
	l.SellerID = strings.TrimSpace(l.SellerID)
	if l.ID == "" || l.SellerID == "" {
		return Listing{}, ErrListingInvalid
	}
	return l, nil
}

type Catalog interface {
	Lookup(ctx context.Context, id string) (Listing, error)
	Upsert(ctx context.Context, listing Listing) error
}
