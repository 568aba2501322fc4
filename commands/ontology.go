package commands

import (
	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/rdf"
)

func newOntologyCommand(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ontology",
		Short: "Inspect and export the Vietnamese ontology",
	}
	cmd.AddCommand(newOntologyExportCommand(state), newOntologyStatsCommand(state))
	return cmd
}

func newOntologyExportCommand(state *rootState) *cobra.Command {
	var (
		output     string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize the ontology as RDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}
			format, err := rdf.ParseFormat(formatName)
			if err != nil {
				return err
			}
			model, err := loadModel(cfg)
			if err != nil {
				return err
			}
			if err := model.Export(output, format); err != nil {
				return err
			}
			cmd.Printf("Ontology exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "data/rdf/ontology.ttl", "Output path")
	cmd.Flags().StringVarP(&formatName, "format", "f", "turtle", "Output format")
	return cmd
}

func newOntologyStatsCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ontology statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}
			model, err := loadModel(cfg)
			if err != nil {
				return err
			}
			stats := model.Stats()
			cmd.Printf("Classes:           %d\n", stats.Classes)
			cmd.Printf("Properties:        %d\n", stats.Properties)
			cmd.Printf("Template mappings: %d\n", stats.Mappings)
			cmd.Printf("Ontology triples:  %d\n", stats.Triples)
			return nil
		},
	}
}
