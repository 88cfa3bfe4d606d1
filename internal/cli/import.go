package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hkawai/cardfeature/internal/config"
	"github.com/hkawai/cardfeature/internal/database"
	"github.com/hkawai/cardfeature/internal/database/overrides"
	http_controllers "github.com/hkawai/cardfeature/internal/http"
)

type ImportCommand struct {
	DatabasePath string
	Input        string
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Input, "i", "", "Snapshot file to import (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import feature overrides from a JSON snapshot.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -i overrides.json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Input == "" {
		fs.Usage()
		return fmt.Errorf("input file is required")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot http_controllers.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snapshot.Version != http_controllers.SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %q, want %q",
			snapshot.Version, http_controllers.SnapshotVersion)
	}

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

	var imported, failed int
	for i := range snapshot.Overrides {
		record := snapshot.Overrides[i]
		record.ID = 0
		if record.Key == "" {
			log.Printf("Skipping item %d: missing key", i)
			failed++
			continue
		}
		if err := repo.Upsert(&record); err != nil {
			log.Printf("Failed to import %s: %v", record.Key, err)
			failed++
			continue
		}
		imported++
	}

	fmt.Printf("Imported %d overrides", imported)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
	return nil
}
