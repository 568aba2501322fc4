// Package commands provides the vikb CLI: collecting Vietnamese
// Wikipedia articles, transforming them to RDF, linking entities to
// DBPedia and loading the results into a triple store.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/config"
	"github.com/dbpedia-vi/vikb/ontology"
)

// rootState carries flag values shared by all subcommands.
type rootState struct {
	configPath string
	logLevel   string
}

// Root builds the vikb command tree.
func Root(version string) *cobra.Command {
	state := &rootState{}

	cmd := &cobra.Command{
		Use:   "vikb",
		Short: "Vietnamese Wikipedia knowledge-base builder",
		Long: `vikb builds a Vietnamese DBPedia-style knowledge base:
it collects articles from Vietnamese Wikipedia, transforms them into
RDF under a Vietnamese ontology, links entities to English DBPedia
and loads the resulting graphs into a triple store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(state.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&state.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCollectCommand(state),
		newTransformCommand(state),
		newLinkCommand(state),
		newOntologyCommand(state),
		newStoreCommand(state),
		newQueryCommand(state),
		newStatusCommand(state),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "vikb version %s\n", version)
			},
		},
	)

	return cmd
}

func configureLogging(levelName string) {
	level := slog.LevelInfo
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig resolves effective configuration for one invocation.
func (s *rootState) loadConfig() (*config.Config, error) {
	loader := config.NewLoader(slog.Default())
	if s.configPath != "" {
		return loader.LoadWithFile(s.configPath)
	}
	return loader.Load()
}

// loadModel builds the ontology model the configuration names.
func loadModel(cfg *config.Config) (*ontology.Model, error) {
	if cfg.Transform.OntologyPath != "" {
		return ontology.Load(cfg.Transform.OntologyPath)
	}
	return ontology.Default(), nil
}
