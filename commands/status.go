package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/store"
)

func newStatusCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize store connectivity and pipeline artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}

			client := store.New(cfg.Store)
			ctx := cmd.Context()

			version, err := client.Version(ctx)
			if err != nil {
				cmd.Printf("Store:      unreachable (%v)\n", err)
			} else {
				cmd.Printf("Store:      %s (%s)\n", cfg.Store.BaseURL, version)
				exists, err := client.RepositoryExists(ctx, cfg.Store.Repository)
				switch {
				case err != nil:
					cmd.Printf("Repository: %s (lookup failed: %v)\n", cfg.Store.Repository, err)
				case !exists:
					cmd.Printf("Repository: %s (missing, run 'vikb store setup')\n", cfg.Store.Repository)
				default:
					size, err := client.Size(ctx, cfg.Store.Repository)
					if err != nil {
						cmd.Printf("Repository: %s (size unknown: %v)\n", cfg.Store.Repository, err)
					} else {
						cmd.Printf("Repository: %s (%d statements)\n", cfg.Store.Repository, size)
					}
				}
			}

			cmd.Println("Artifacts:")
			for _, artifact := range []string{
				"data/raw/articles.json",
				"data/rdf",
				"data/links/links.json",
			} {
				printArtifact(cmd, artifact)
			}
			return nil
		},
	}
}

func printArtifact(cmd *cobra.Command, path string) {
	info, err := os.Stat(path)
	if err != nil {
		cmd.Printf("  %-28s absent\n", path)
		return
	}
	if info.IsDir() {
		entries, _ := os.ReadDir(path)
		var files int
		for _, entry := range entries {
			if !entry.IsDir() && filepath.Ext(entry.Name()) != "" {
				files++
			}
		}
		cmd.Printf("  %-28s %d files\n", path, files)
		return
	}
	cmd.Printf("  %-28s %d bytes\n", path, info.Size())
}
