package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wassociates/portal/internal/config"
	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/logging"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Inspect member documents",
}

var membersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the member documents",
	Run:   membersListHandler,
}

func membersListHandler(cmd *cobra.Command, args []string) {
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
	docs, err := store.List(ctx, database.CollectionMembers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing members: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDISPLAY NAME\tEMAIL\tLINKS")
	for _, doc := range docs {
		shared := ""
		if doc.ID == cfg.SharedAccount {
			shared = " (shared)"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%d\n",
			doc.ID,
			doc.String("displayName"), shared,
			doc.String("email"),
			len(doc.StringMap("links")),
		)
	}
	w.Flush()
}

func init() {
	membersCmd.AddCommand(membersListCmd)
	rootCmd.AddCommand(membersCmd)
}
