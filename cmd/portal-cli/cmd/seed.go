package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wassociates/portal/internal/config"
	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/logging"
	"github.com/wassociates/portal/internal/seeder"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply a seed file to the document store",
	Long: `Seed reads a JSON seed file and upserts the documents the portal reads:
member profiles, the shared-account links, the administrator list and the
icon map. Seeding is idempotent; re-running converges on the file's contents.

Example seed file:

  {
    "members": [
      {"displayName": "A", "email": "a@x.com", "links": {"Docs": "https://docs"}}
    ],
    "sharedLinks": {"Wiki": "https://wiki"},
    "administrators": ["a@x.com"],
    "icons": {"Docs": "file", "Wiki": "globe"}
  }`,
	Run: seedHandler,
}

func seedHandler(cmd *cobra.Command, args []string) {
	logging.New()
	cfg := config.New()

	ctx := context.Background()
	db, err := database.NewDB(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close(ctx)

	store := database.NewSurrealDocumentStore(db)
	s := seeder.New(afero.NewOsFs(), store, cfg.SharedAccount)

	if err := s.Run(ctx, seedFile); err != nil {
		fmt.Fprintf(os.Stderr, "Seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seeding complete.")
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.json", "Path to the seed file")
	rootCmd.AddCommand(seedCmd)
}
