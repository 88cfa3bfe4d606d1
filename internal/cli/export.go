package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hkawai/cardfeature/internal/config"
	"github.com/hkawai/cardfeature/internal/database"
	"github.com/hkawai/cardfeature/internal/database/overrides"
	http_controllers "github.com/hkawai/cardfeature/internal/http"
)

type ExportCommand struct {
	DatabasePath string
	Output       string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Output, "o", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all feature overrides as a JSON snapshot.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -o overrides.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -db ./cardfeature.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := overrides.NewRepository(db.DB)
	records, err := repo.List()
	if err != nil {
		return fmt.Errorf("failed to list overrides: %w", err)
	}

	snapshot := http_controllers.Snapshot{
		Overrides:  records,
		ExportedAt: time.Now().UTC(),
		Version:    http_controllers.SnapshotVersion,
	}

	out := os.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if cmd.Output != "" {
		fmt.Fprintf(os.Stderr, "Exported %d overrides to %s\n", len(records), cmd.Output)
	}
	return nil
}
