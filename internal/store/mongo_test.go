package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Malformed ids address nothing: lookups report not-found and updates no-op,
// all without touching the collection.
func TestMongoStoreMalformedID(t *testing.T) {
	ctx := context.Background()
	s := &MongoStore{}

	_, err := s.GetByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.UpdateProfile(ctx, "not-a-hex-id", ProfileUpdate{Username: "x"}))
	assert.NoError(t, s.UpdatePassword(ctx, "not-a-hex-id", "hash"))
}

func TestMongoStoreUpdateProfileEmptyIsNoop(t *testing.T) {
	s := &MongoStore{}
	// A valid ObjectID but nothing to set: returns before issuing a query.
	assert.NoError(t, s.UpdateProfile(context.Background(), "507f1f77bcf86cd799439011", ProfileUpdate{}))
}
