package commands

import (
	"fmt"

	"github.com/c360studio/semstreams/metric"
	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/linker"
	"github.com/dbpedia-vi/vikb/rdf"
	"github.com/dbpedia-vi/vikb/sparql"
	"github.com/dbpedia-vi/vikb/wikipedia"
)

func newLinkCommand(state *rootState) *cobra.Command {
	var (
		input   string
		names   []string
		output  string
		rdfPath string
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link Vietnamese entities to English DBPedia",
		Long: `Link runs the matching strategies (curated mappings, interwiki
language links, similarity search and property search) for each entity
name against the remote DBPedia endpoint, writes the ranked matches as
JSON and optionally exports owl:sameAs / rdfs:seeAlso triples.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}

			entityNames := names
			if len(entityNames) == 0 {
				articles, err := wikipedia.LoadArticles(input)
				if err != nil {
					return fmt.Errorf("no --names given and %w", err)
				}
				for _, article := range articles {
					entityNames = append(entityNames, article.Title)
				}
			}
			if len(entityNames) == 0 {
				return fmt.Errorf("nothing to link: empty collection and no --names")
			}

			kg, err := sparql.NewClient(cfg.SPARQL)
			if err != nil {
				return err
			}
			wiki := wikipedia.NewClient(cfg.Wikipedia)
			l := linker.New(kg, wiki, cfg.Linker,
				linker.WithMetrics(metric.NewMetricsRegistry()))

			results := l.LinkBatch(cmd.Context(), entityNames)
			if err := linker.SaveResults(output, results); err != nil {
				return err
			}

			stats := l.Stats()
			cmd.Printf("Linked %d entities: %d matched (%d high, %d medium, %d low), %d unmatched\n",
				stats.EntitiesProcessed, stats.SuccessfulLinks,
				stats.HighConfidenceLinks, stats.MediumConfidenceLinks, stats.LowConfidenceLinks,
				stats.FailedLinks)
			cmd.Printf("Results written to %s\n", output)

			if rdfPath != "" {
				if err := l.ExportRDF(results, rdfPath, rdf.FormatForPath(rdfPath)); err != nil {
					return err
				}
				cmd.Printf("Link triples written to %s\n", rdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "data/raw/articles.json", "Collection file whose titles are linked")
	cmd.Flags().StringSliceVar(&names, "names", nil, "Entity names to link instead of a collection file")
	cmd.Flags().StringVarP(&output, "output", "o", "data/links/links.json", "Linking results path")
	cmd.Flags().StringVar(&rdfPath, "rdf", "", "Also export link triples to this RDF file")

	return cmd
}
