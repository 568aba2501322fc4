package commands

import (
	"fmt"

	"github.com/c360studio/semstreams/metric"
	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/store"
)

func newStoreCommand(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the triple-store repository",
	}
	cmd.AddCommand(
		newStoreSetupCommand(state),
		newStoreLoadCommand(state),
		newStoreClearCommand(state),
		newStoreSizeCommand(state),
	)
	return cmd
}

func newStoreSetupCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the configured repository if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}
			client := store.New(cfg.Store)
			ok, err := client.CreateRepository(cmd.Context(), cfg.Store.Repository)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("repository %s could not be created", cfg.Store.Repository)
			}
			cmd.Printf("Repository %s ready\n", cfg.Store.Repository)
			return nil
		},
	}
}

func newStoreLoadCommand(state *rootState) *cobra.Command {
	var graphContext string

	cmd := &cobra.Command{
		Use:   "load <dir>",
		Short: "Load every RDF file in a directory into the repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}
			client := store.New(cfg.Store)
			loader := store.NewLoader(client, cfg.Store.Repository, cfg.Store.Concurrency,
				store.WithLoaderMetrics(metric.NewMetricsRegistry()))

			results, err := loader.LoadDirectory(cmd.Context(), args[0], graphContext)
			if err != nil {
				return err
			}
			for _, result := range results {
				if result.Success {
					cmd.Printf("  loaded %-40s %6d statements in %s\n",
						result.Path, result.Statements, result.Duration.Round(1e6))
				} else {
					cmd.Printf("  FAILED %-40s %v\n", result.Path, result.Err)
				}
			}
			stats := loader.Stats()
			cmd.Printf("Loaded %d/%d files, %d statements total\n",
				stats.Successes, stats.FilesProcessed, stats.StatementsAdded)
			if stats.Failures > 0 {
				return fmt.Errorf("%d files failed to load", stats.Failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&graphContext, "context", "", "Named graph IRI to load into")
	return cmd
}

func newStoreClearCommand(state *rootState) *cobra.Command {
	var graphContext string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete statements from the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}
			client := store.New(cfg.Store)
			if err := client.ClearRepository(cmd.Context(), cfg.Store.Repository, graphContext); err != nil {
				return err
			}
			cmd.Printf("Repository %s cleared\n", cfg.Store.Repository)
			return nil
		},
	}

	cmd.Flags().StringVar(&graphContext, "context", "", "Only clear this named graph IRI")
	return cmd
}

func newStoreSizeCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Print the repository statement count",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}
			client := store.New(cfg.Store)
			size, err := client.Size(cmd.Context(), cfg.Store.Repository)
			if err != nil {
				return err
			}
			cmd.Printf("%d\n", size)
			return nil
		},
	}
}
