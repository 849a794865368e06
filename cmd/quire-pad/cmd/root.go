package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"quire/internal/adapters/filesystem"
	"quire/internal/application/commands"
	"quire/internal/config"
	"quire/internal/domain"
)

var (
	rootPath   string
	minFiles   int
	jsonOutput bool
	renameMode bool
	width      int
	dryRun     bool
	force      bool
)

var rootCmd = &cobra.Command{
	Use:   "quire-pad",
	Short: "Find and fix unpadded numeric filename sequences",
	Long: `quire-pad scans leaf directories for sequential numeric filenames
whose lexicographic order differs from their numeric order, and suggests
the zero-padding width that fixes them.

By default it only reports. With --rename it pads the filenames in
place using a two-phase batch rename.

Examples:
  quire-pad -r ~/comics
  quire-pad -r ~/comics --json
  quire-pad -r ~/comics --rename --dry-run
  quire-pad -r ~/comics --rename --width 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			fmt.Fprintf(os.Stderr, "Pre-check failed: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&rootPath, "root", "r", config.RootPath(), "root path to search")
	rootCmd.Flags().IntVar(&minFiles, "min-files", config.DefaultMinFiles, "minimum numbered files per directory to consider")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON")
	rootCmd.Flags().BoolVar(&renameMode, "rename", false, "rename files to zero-padded names")
	rootCmd.Flags().IntVar(&width, "width", 0, "pad to this width instead of the width of the largest number")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "with --rename, print the mapping without touching files")
	rootCmd.Flags().BoolVar(&force, "force", false, "allow overwriting existing destination files")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	repo := filesystem.NewRepository(rootPath)

	reports, err := commands.NewScanCommand(repo, minFiles).Execute(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(reports) == 0 {
		fmt.Println("No unpadded sequential numeric sequences found")
		return nil
	}

	if !renameMode {
		printReports(reports)
		return nil
	}

	dirs := make([]string, len(reports))
	for i, rep := range reports {
		dirs[i] = rep.Dir
	}
	planned, err := commands.NewPlanRenamesCommand(repo, dirs, width).Execute(ctx)
	if err != nil {
		return err
	}

	for _, plan := range planned.Plans {
		printPlan(plan)
	}

	if len(planned.Mapping) == 0 {
		fmt.Println("No files require renaming")
		return nil
	}

	outcome, err := commands.NewExecuteRenamesCommand(repo, planned.Mapping, dryRun, force).Execute(ctx)
	if err != nil {
		return err
	}

	if outcome.DryRun {
		fmt.Println("Dry-run mapping (no changes):")
		for _, ren := range planned.Mapping {
			fmt.Printf("%s -> %s\n", ren.Source, ren.Dest)
		}
	}
	if outcome.FailureCause != nil {
		fmt.Fprintf(os.Stderr, "Rename failed: %v\n", outcome.FailureCause)
	}
	fmt.Printf("Renaming complete. succeeded=%d, failed=%d\n", outcome.Succeeded, outcome.Failed)
	return nil
}

func printReports(reports []domain.SequenceReport) {
	fmt.Println("Directories with unpadded sequential numeric filenames (need zero-padding):")
	for _, rep := range reports {
		fmt.Printf("- %s: %d files, range %d-%d, suggested width=%d\n",
			rep.Dir, rep.Count, rep.Min, rep.Max, rep.DesiredWidth)
		fmt.Printf("  sample lex order : %s\n", strings.Join(rep.LexSample, ", "))
		fmt.Printf("  sample numeric   : %s\n", strings.Join(rep.NumericSample, ", "))
		fmt.Println()
	}
}

func printPlan(plan domain.DirectoryPlan) {
	fmt.Printf("Directory: %s -> will rename %d files (width=%d)\n", plan.Dir, len(plan.Mapping), plan.Width)
	for i, ren := range plan.Mapping {
		if i == domain.SampleLimit {
			fmt.Printf("  ... and %d more\n", len(plan.Mapping)-domain.SampleLimit)
			break
		}
		fmt.Printf("  %s -> %s\n", filepath.Base(ren.Source), filepath.Base(ren.Dest))
	}
}
