package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
	"github.com/wassociates/portal/internal/domain"
)

// Collections and well-known document ids consumed by the portal.
const (
	CollectionMembers = "members"
	CollectionAdmin   = "admin"

	DocAdministrators = "administrators"
	DocIcons          = "icons"
)

// Document is a schemaless record fetched from the store. Fields keep the
// driver's dynamic types; the accessor methods below collapse anything
// malformed to absence, which is what the resolvers want.
type Document struct {
	ID   string
	Data map[string]any
}

// DocumentStore is the gateway to the document database. It performs plain
// reads with no caching and no retries; transport failures surface as
// *StoreError and a missing document as domain.ErrNotFound.
type DocumentStore interface {
	// Get fetches a single document by collection and id.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// List fetches every document in a collection. The result of one call is
	// complete or the call errors; callers must not treat a failed listing as
	// a partial one.
	List(ctx context.Context, collection string) ([]Document, error)
}

// SurrealDocumentStore implements DocumentStore on top of SurrealDB.
type SurrealDocumentStore struct {
	db *surrealdb.DB
}

// NewSurrealDocumentStore creates a new SurrealDocumentStore.
func NewSurrealDocumentStore(db *surrealdb.DB) *SurrealDocumentStore {
	return &SurrealDocumentStore{db: db}
}

func (s *SurrealDocumentStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	query := "SELECT * FROM type::thing($tb, $id)"
	params := map[string]any{"tb": collection, "id": id}

	row, err := QueryOne[map[string]any](ctx, s.db, query, params)
	if err != nil {
		return nil, NewStoreError("get", collection, err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	doc := documentFromRow(*row)
	return &doc, nil
}

func (s *SurrealDocumentStore) List(ctx context.Context, collection string) ([]Document, error) {
	query := "SELECT * FROM type::table($tb)"
	params := map[string]any{"tb": collection}

	rows, err := Query[map[string]any](ctx, s.db, query, params)
	if err != nil {
		return nil, NewStoreError("list", collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, documentFromRow(row))
	}
	return docs, nil
}

// documentFromRow splits the driver's id field off from the document body.
func documentFromRow(row map[string]any) Document {
	doc := Document{Data: make(map[string]any, len(row))}
	for k, v := range row {
		if k == "id" {
			doc.ID = recordKey(v)
			continue
		}
		doc.Data[k] = v
	}
	return doc
}

// recordKey extracts the key portion of a record id, whatever form the driver
// hands it back in.
func recordKey(v any) string {
	switch id := v.(type) {
	case surrealmodels.RecordID:
		return fmt.Sprint(id.ID)
	case *surrealmodels.RecordID:
		if id == nil {
			return ""
		}
		return fmt.Sprint(id.ID)
	case string:
		if i := strings.IndexByte(id, ':'); i >= 0 {
			return id[i+1:]
		}
		return id
	default:
		return fmt.Sprint(v)
	}
}

// String returns the named field as a string, or "" when the field is absent
// or not a string.
func (d *Document) String(field string) string {
	s, _ := d.Data[field].(string)
	return s
}

// StringMap returns the named field as a map of string to string. Non-string
// keys and values are dropped rather than reported.
func (d *Document) StringMap(field string) map[string]string {
	return toStringMap(d.Data[field])
}

// StringSlice returns the named field as a slice of strings. A field of any
// other shape yields nil.
func (d *Document) StringSlice(field string) []string {
	switch vs := d.Data[field].(type) {
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// FlatStringMap treats the whole document body as a flat string-to-string
// mapping, which is how the icons document is stored.
func (d *Document) FlatStringMap() map[string]string {
	out := make(map[string]string, len(d.Data))
	for k, v := range d.Data {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// toStringMap normalizes the driver's dynamic map types. CBOR decoding can
// produce map[string]any or map[any]any depending on the document.
func toStringMap(v any) map[string]string {
	switch m := v.(type) {
	case map[string]string:
		return m
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			if s, ok := val.(string); ok {
				out[k] = s
			}
		}
		return out
	case map[any]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			ks, kok := k.(string)
			vs, vok := val.(string)
			if kok && vok {
				out[ks] = vs
			}
		}
		return out
	default:
		return nil
	}
}
