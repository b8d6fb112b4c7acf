package seeder

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wassociates/portal/internal/database"
)

const testSharedAccount = "Wassociates"

type put struct {
	collection string
	id         string
	data       map[string]any
}

// recordingWriter captures every Put for assertions.
type recordingWriter struct {
	puts []put
}

func (w *recordingWriter) Put(ctx context.Context, collection, id string, data map[string]any) error {
	w.puts = append(w.puts, put{collection: collection, id: id, data: data})
	return nil
}

func (w *recordingWriter) byID(id string) (put, bool) {
	for _, p := range w.puts {
		if p.id == id {
			return p, true
		}
	}
	return put{}, false
}

const validSeed = `{
	"members": [
		{"id": "m1", "displayName": "A", "email": "a@x.com", "links": {"Docs": "https://docs"}},
		{"displayName": "B", "email": "b@x.com", "links": {}}
	],
	"sharedLinks": {"Wiki": "https://wiki"},
	"administrators": ["a@x.com"],
	"icons": {"Docs": "file", "Wiki": "globe"}
}`

func newTestSeeder(files map[string]string) (*Seeder, *recordingWriter) {
	fs := afero.NewMemMapFs()
	for path, content := range files {
		afero.WriteFile(fs, path, []byte(content), 0o644)
	}
	writer := &recordingWriter{}
	return New(fs, writer, testSharedAccount), writer
}

func TestSeederRun(t *testing.T) {
	s, writer := newTestSeeder(map[string]string{"seed.json": validSeed})

	require.NoError(t, s.Run(context.Background(), "seed.json"))

	// Pinned member id is kept.
	m1, ok := writer.byID("m1")
	require.True(t, ok)
	assert.Equal(t, database.CollectionMembers, m1.collection)
	assert.Equal(t, "a@x.com", m1.data["email"])

	// The unpinned member got a generated uuid.
	var generated string
	for _, p := range writer.puts {
		if p.data["email"] == "b@x.com" {
			generated = p.id
		}
	}
	require.NotEmpty(t, generated)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	// Shared account document uses the configured id as displayName too.
	shared, ok := writer.byID(testSharedAccount)
	require.True(t, ok)
	assert.Equal(t, testSharedAccount, shared.data["displayName"])
	assert.Equal(t, map[string]string{"Wiki": "https://wiki"}, shared.data["links"])

	admins, ok := writer.byID(database.DocAdministrators)
	require.True(t, ok)
	assert.Equal(t, database.CollectionAdmin, admins.collection)
	assert.Equal(t, []string{"a@x.com"}, admins.data["administrators"])

	icons, ok := writer.byID(database.DocIcons)
	require.True(t, ok)
	assert.Equal(t, "file", icons.data["Docs"])
}

func TestSeederLoad_RejectsDuplicateEmails(t *testing.T) {
	s, _ := newTestSeeder(map[string]string{"seed.json": `{
		"members": [
			{"displayName": "A", "email": "a@x.com"},
			{"displayName": "A2", "email": "a@x.com"}
		]
	}`})

	_, err := s.Load("seed.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique across members")
}

func TestSeederLoad_RejectsSharedAccountCollision(t *testing.T) {
	s, _ := newTestSeeder(map[string]string{"seed.json": `{
		"members": [
			{"id": "Wassociates", "displayName": "Sneaky", "email": "s@x.com"}
		]
	}`})

	_, err := s.Load("seed.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shared account")
}

func TestSeederLoad_MissingFile(t *testing.T) {
	s, _ := newTestSeeder(nil)

	_, err := s.Load("nope.json")
	assert.Error(t, err)
}

func TestSeederLoad_MissingEmail(t *testing.T) {
	s, _ := newTestSeeder(map[string]string{"seed.json": `{
		"members": [{"displayName": "A"}]
	}`})

	_, err := s.Load("seed.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no email")
}
