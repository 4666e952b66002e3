package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketchat/internal/domain/catalog"
)

// CatalogStore is the chat service's projection of marketplace listings, fed by
// listing events.
type CatalogStore struct {
	col *mongo.Collection
}

func NewCatalogStore(db *mongo.Database) *CatalogStore {
	return &CatalogStore{col: db.Collection("chat_listings")}
}

type listingDocument struct {
	ID       string `bson:"_id"`
	Title    string `bson:"title"`
	SellerID string `bson:"seller_id"`
}

func (s *CatalogStore) Lookup(ctx context.Context, id string) (catalog.Listing, error) {
	var doc listingDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": strings.TrimSpace(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.Listing{}, catalog.ErrListingNotFound
		}
		return catalog.Listing{}, transient(err)
	}
	return catalog.Listing{ID: doc.ID, Title: doc.Title, SellerID: doc.SellerID}, nil
}

func (s *CatalogStore) Upsert(ctx context.Context, listing catalog.Listing) error {
	norm, err := listing.Normalize()
	if err != nil {
		return err
	}
	doc := listingDocument{ID: norm.ID, Title: norm.Title, SellerID: norm.SellerID}
	_, err = s.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return transient(err)
}

var _ catalog.Catalog = (*CatalogStore)(nil)
