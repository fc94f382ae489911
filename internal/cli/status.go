package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and history information",
	Long:  `Display the config file in use, the solver settings, the database location and its schema version, and the stored solves.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := settings()

	fmt.Println("Pocket Cube Solver Status")
	fmt.Println("=========================")
	fmt.Println()

	fmt.Printf("Config: %s\n", cfgFile.Path())
	fmt.Printf("  Log level:       %s\n", cfg.LogLevel)
	fmt.Printf("  Parallel:        %v\n", cfg.Parallel)
	fmt.Printf("  Max depth:       %d per side\n", cfg.MaxDepth)
	fmt.Printf("  Timeout:         %s\n", cfg.Timeout)
	fmt.Printf("  Scramble length: %d\n", cfg.ScrambleLen)
	fmt.Println()

	db, err := openDB()
	if err != nil {
		fmt.Printf("Database error: %v\n", err)
		return nil
	}
	defer db.Close()

	fmt.Printf("Database: %s\n", db.Path())
	if v, err := db.CurrentVersion(); err == nil {
		fmt.Printf("  Schema version:  %d (latest %d)\n", v, storage.LatestVersion())
	}

	solveRepo := storage.NewSolveRepository(db)
	count, err := solveRepo.Count()
	if err != nil {
		return err
	}
	fmt.Printf("  Total solves:    %d\n", count)

	last, err := solveRepo.GetLast()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Printf("  Last solve:      %s (%s)\n", last.SolveID, last.CreatedAt.Local().Format(time.RFC3339))
	}
	fmt.Println()

	if cfg.LastSolveID != "" {
		fmt.Printf("Last solve from this config: %s\n", cfg.LastSolveID)
		fmt.Println("  (Use 'pocketcube history show --last' or 'pocketcube replay --last')")
	} else {
		fmt.Println("No solves run with this config yet")
	}

	return nil
}
