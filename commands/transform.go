package commands

import (
	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/rdf"
	"github.com/dbpedia-vi/vikb/transform"
	"github.com/dbpedia-vi/vikb/wikipedia"
)

func newTransformCommand(state *rootState) *cobra.Command {
	var (
		input      string
		output     string
		formatName string
		validate   bool
		mergeWith  string
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform collected articles into RDF",
		Long: `Transform reads a JSON collection file, maps every article onto
the Vietnamese ontology and serializes the resulting graph. Failed
articles are counted and skipped, never abort the batch.`,
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

			articles, err := wikipedia.LoadArticles(input)
			if err != nil {
				return err
			}

			tr := transform.New(model, cfg.Transform)
			if mergeWith != "" {
				if err := tr.MergeFile(mergeWith); err != nil {
					return err
				}
			}

			stats := tr.TransformBatch(articles)
			if err := tr.Export(output, format); err != nil {
				return err
			}

			cmd.Printf("Transformed %d articles (%d failures) into %d triples: %s\n",
				stats.ArticlesProcessed, stats.Failures, stats.TriplesGenerated, output)
			for template, count := range stats.TemplateCounts {
				cmd.Printf("  %-24s %d\n", template, count)
			}

			if validate {
				report := tr.Validate()
				cmd.Printf("Validation: %d triples, %d subjects, %d constraint findings, %d warnings\n",
					report.TotalTriples, report.UniqueSubjects, len(report.Errors), len(report.Warnings))
				for _, warning := range report.Warnings {
					cmd.Printf("  warning: %s (%s)\n", warning.Subject, warning.Issue)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "data/raw/articles.json", "Collection file path")
	cmd.Flags().StringVarP(&output, "output", "o", "data/rdf/vikb.ttl", "RDF output path")
	cmd.Flags().StringVarP(&formatName, "format", "f", "turtle", "Output format (turtle, rdf-xml, n-triples, n3, json-ld)")
	cmd.Flags().BoolVar(&validate, "validate", false, "Run the diagnostic validation pass after transforming")
	cmd.Flags().StringVar(&mergeWith, "merge", "", "Merge an existing RDF file into the graph first")

	return cmd
}
