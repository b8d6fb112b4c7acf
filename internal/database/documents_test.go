package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestDocumentFromRow(t *testing.T) {
	recordID := surrealmodels.NewRecordID("members", "Wassociates")

	doc := documentFromRow(map[string]any{
		"id":          recordID,
		"displayName": "Wassociates",
		"email":       "shared@example.com",
	})

	assert.Equal(t, "Wassociates", doc.ID)
	assert.Equal(t, "Wassociates", doc.String("displayName"))
	assert.Equal(t, "shared@example.com", doc.String("email"))
	// The id field must not leak into the document body.
	assert.NotContains(t, doc.Data, "id")
}

func TestRecordKey(t *testing.T) {
	recordID := surrealmodels.NewRecordID("members", "abc123")

	assert.Equal(t, "abc123", recordKey(recordID))
	assert.Equal(t, "abc123", recordKey(&recordID))
	assert.Equal(t, "abc123", recordKey("members:abc123"))
	assert.Equal(t, "abc123", recordKey("abc123"))
	assert.Equal(t, "", recordKey((*surrealmodels.RecordID)(nil)))
}

func TestDocumentString_Malformed(t *testing.T) {
	doc := Document{Data: map[string]any{"email": 42}}

	// A field of the wrong type reads as absent, never as an error.
	assert.Equal(t, "", doc.String("email"))
	assert.Equal(t, "", doc.String("missing"))
}

func TestDocumentStringMap(t *testing.T) {
	t.Run("map of string to any", func(t *testing.T) {
		doc := Document{Data: map[string]any{
			"links": map[string]any{
				"Docs": "https://docs",
				"Bad":  7,
			},
		}}

		links := doc.StringMap("links")
		assert.Equal(t, map[string]string{"Docs": "https://docs"}, links)
	})

	t.Run("cbor style map of any to any", func(t *testing.T) {
		doc := Document{Data: map[string]any{
			"links": map[any]any{
				"Wiki": "https://wiki",
				3:      "dropped",
			},
		}}

		links := doc.StringMap("links")
		assert.Equal(t, map[string]string{"Wiki": "https://wiki"}, links)
	})

	t.Run("malformed field", func(t *testing.T) {
		doc := Document{Data: map[string]any{"links": "not-a-map"}}
		assert.Nil(t, doc.StringMap("links"))
	})
}

func TestDocumentStringSlice(t *testing.T) {
	doc := Document{Data: map[string]any{
		"administrators": []any{"a@x.com", 1, "b@x.com"},
	}}

	assert.Equal(t, []string{"a@x.com", "b@x.com"}, doc.StringSlice("administrators"))
	assert.Nil(t, doc.StringSlice("missing"))

	malformed := Document{Data: map[string]any{"administrators": "a@x.com"}}
	assert.Nil(t, malformed.StringSlice("administrators"))
}

func TestDocumentFlatStringMap(t *testing.T) {
	doc := Document{Data: map[string]any{
		"Docs":  "file",
		"Wiki":  "globe",
		"Count": 2,
	}}

	assert.Equal(t, map[string]string{"Docs": "file", "Wiki": "globe"}, doc.FlatStringMap())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("list", CollectionMembers, cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsStoreError(err))
	assert.Contains(t, err.Error(), "members")

	wrapped := errors.Join(errors.New("outer"), err)
	assert.True(t, IsStoreError(wrapped))
	assert.False(t, IsStoreError(cause))
}
