package database

import (
	"context"
)

// DocumentWriter is the administrative write path into the store. The portal
// core itself never writes; only the seeding CLI does.
type DocumentWriter interface {
	// Put creates or replaces a document under an explicit id.
	Put(ctx context.Context, collection, id string, data map[string]any) error
}

// Put creates or replaces a document. Seeding is idempotent: re-running it
// converges on the seed file's contents.
func (s *SurrealDocumentStore) Put(ctx context.Context, collection, id string, data map[string]any) error {
	query := "UPSERT type::thing($tb, $id) CONTENT $data"
	params := map[string]any{"tb": collection, "id": id, "data": data}

	if err := Execute(ctx, s.db, query, params); err != nil {
		return NewStoreError("put", collection, err)
	}
	return nil
}
