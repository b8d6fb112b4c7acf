// Package seeder implements the administrative write path: it loads a seed
// file and writes the member, shared-account, administrator and icon
// documents the portal reads. It owns the invariants the aggregation core
// assumes, most importantly that emails are unique across members.
package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/wassociates/portal/internal/database"
)

// Member is one member entry in the seed file. ID is optional; a missing id
// gets a generated one.
type Member struct {
	ID          string            `json:"id,omitempty"`
	DisplayName string            `json:"displayName"`
	Email       string            `json:"email"`
	Links       map[string]string `json:"links"`
}

// SeedFile is the on-disk shape consumed by `portal-cli seed`.
type SeedFile struct {
	Members        []Member          `json:"members"`
	SharedLinks    map[string]string `json:"sharedLinks"`
	Administrators []string          `json:"administrators"`
	Icons          map[string]string `json:"icons"`
}

// Seeder loads seed files and applies them to the document store.
type Seeder struct {
	fs            afero.Fs
	writer        database.DocumentWriter
	sharedAccount string
}

// New creates a Seeder. The filesystem is abstracted so tests can feed it an
// in-memory one.
func New(fs afero.Fs, writer database.DocumentWriter, sharedAccount string) *Seeder {
	return &Seeder{fs: fs, writer: writer, sharedAccount: sharedAccount}
}

// Load reads and validates a seed file.
func (s *Seeder) Load(path string) (*SeedFile, error) {
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var seed SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	if err := s.validate(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// validate enforces the write-path invariants. The aggregation core resolves
// members by scanning for the first email match, so duplicate emails would
// make resolution order-dependent; they are rejected here instead of being
// tie-broken at read time.
func (s *Seeder) validate(seed *SeedFile) error {
	seen := make(map[string]bool, len(seed.Members))
	for _, m := range seed.Members {
		if m.Email == "" {
			return fmt.Errorf("member %q has no email", m.DisplayName)
		}
		if seen[m.Email] {
			return fmt.Errorf("duplicate member email %q: emails must be unique across members", m.Email)
		}
		seen[m.Email] = true

		if m.ID == s.sharedAccount {
			return fmt.Errorf("member id %q collides with the shared account", m.ID)
		}
	}
	return nil
}

// Apply writes every document described by the seed. Member ids are kept when
// pinned in the file and generated otherwise.
func (s *Seeder) Apply(ctx context.Context, seed *SeedFile) error {
	for _, m := range seed.Members {
		id := m.ID
		if id == "" {
			id = uuid.NewString()
		}
		err := s.writer.Put(ctx, database.CollectionMembers, id, map[string]any{
			"displayName": m.DisplayName,
			"email":       m.Email,
			"links":       m.Links,
		})
		if err != nil {
			return fmt.Errorf("seeding member %q: %w", m.Email, err)
		}
		slog.Info("seeded member", "id", id, "email", m.Email)
	}

	if seed.SharedLinks != nil {
		err := s.writer.Put(ctx, database.CollectionMembers, s.sharedAccount, map[string]any{
			"displayName": s.sharedAccount,
			"email":       "",
			"links":       seed.SharedLinks,
		})
		if err != nil {
			return fmt.Errorf("seeding shared account: %w", err)
		}
		slog.Info("seeded shared account", "id", s.sharedAccount, "links", len(seed.SharedLinks))
	}

	if seed.Administrators != nil {
		err := s.writer.Put(ctx, database.CollectionAdmin, database.DocAdministrators, map[string]any{
			"administrators": seed.Administrators,
		})
		if err != nil {
			return fmt.Errorf("seeding administrators: %w", err)
		}
	}

	if seed.Icons != nil {
		icons := make(map[string]any, len(seed.Icons))
		for title, icon := range seed.Icons {
			icons[title] = icon
		}
		if err := s.writer.Put(ctx, database.CollectionAdmin, database.DocIcons, icons); err != nil {
			return fmt.Errorf("seeding icons: %w", err)
		}
	}

	return nil
}

// Run loads and applies a seed file in one step.
func (s *Seeder) Run(ctx context.Context, path string) error {
	seed, err := s.Load(path)
	if err != nil {
		return err
	}
	return s.Apply(ctx, seed)
}
