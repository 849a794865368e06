package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quire/internal/adapters/cbz"
	"quire/internal/adapters/filesystem"
	"quire/internal/application"
	"quire/internal/application/commands"
	"quire/internal/config"
)

var (
	rootPath     string
	output       string
	includeEmpty bool
	dryRun       bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "quire-cbz",
	Short: "Create .cbz archives from leaf directories",
	Long: `quire-cbz packs the files of every leaf directory under the root
into a .cbz archive named after the directory, written next to the
leaf's parent or into one output directory.

A leaf is a directory with no descendant directory containing files.
Name collisions in the destination get a _1, _2 suffix.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, application.ErrRootNotFound) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&rootPath, "root", "r", config.RootPath(), "root path to search")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output directory for every archive (default: each leaf's parent)")
	rootCmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "include empty directories (create empty archives)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print actions without creating archives")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "print files that will be archived and size details")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	repo := filesystem.NewRepository(rootPath)

	if _, err := os.Stat(repo.Root()); err != nil {
		fmt.Fprintf(os.Stderr, "Root path '%s' does not exist\n", repo.Root())
		return application.ErrRootNotFound
	}

	if output != "" {
		if abs, err := filepath.Abs(output); err == nil {
			output = abs
		}
	}

	archive := commands.NewArchiveLeavesCommand(repo, cbz.NewWriter(), output, includeEmpty, dryRun)
	result, err := archive.Execute(ctx)
	if err != nil {
		return err
	}

	if len(result.Targets) == 0 {
		fmt.Printf("No leaf directories with files found under '%s'. Nothing to do.\n", repo.Root())
		return nil
	}

	for _, target := range result.Targets {
		if dryRun {
			fmt.Printf("Would create archive for: %s -> %s\n", target.Dir, target.PlannedPath)
			if verbose {
				printListing(target)
			}
			continue
		}
		if verbose {
			fmt.Printf("Creating archive for: %s -> %s\n", target.Dir, target.PlannedPath)
			printListing(target)
		}
		if target.Err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create archive for %s: %v\n", target.Dir, target.Err)
			continue
		}
		fmt.Printf("Created: %s  (from %s)\n", target.CreatedPath, target.Dir)
	}

	if output != "" {
		fmt.Printf("Done. Created %d .cbz file(s) in '%s'\n", result.Created, output)
	} else {
		fmt.Printf("Done. Created %d .cbz file(s) alongside their source parent folders\n", result.Created)
	}
	return nil
}

func printListing(target commands.ArchiveTarget) {
	fmt.Printf("  Files (%d):\n", len(target.Files))
	for _, f := range target.Files {
		fmt.Printf("    - %s (%d bytes)\n", f.Name, f.Size)
	}
	fmt.Printf("  Total bytes: %d\n", target.TotalBytes)
}
