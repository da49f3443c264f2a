package cmd

import (
	"fmt"
	"os"

	"github.com/showquotes/transcript-api/internal/database"
	"github.com/showquotes/transcript-api/internal/services/corpus"
	"github.com/spf13/cobra"
)

var importDBPath string

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <corpus-dir>",
	Short: "Import a transcript corpus into a local database",
	Long: `Ingest an extracted transcript corpus into a standalone SQLite file,
outside any server session.

The corpus directory holds one subdirectory per season (S1, S2, ...),
each containing episode transcript files named like "E1.txt" or
"E1 - Title.txt". The import is atomic: on any failure the database is
left exactly as it was.

Example:
  transcript-api import ./corpora/show
  transcript-api import --db ./show.sqlite ./corpora/show`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDBPath, "db", "./transcripts.sqlite", "path of the SQLite database to import into")
}

func runImport(cmd *cobra.Command, args []string) error {
	root := args[0]
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("corpus root %s is not a readable directory", root)
	}

	db, err := database.Open(importDBPath, database.Options{MaxConnections: 1})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	stats, err := corpus.NewImporter().Import(cmd.Context(), db.DB, root)
	if err != nil {
		return fmt.Errorf("import failed; database unchanged: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d seasons, %d episodes, %d lines into %s\n",
		stats.Seasons, stats.Episodes, stats.Lines, importDBPath)
	return nil
}
