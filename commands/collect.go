package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/wikipedia"
)

// sampleTitles seeds a collection run when no titles or category are
// given. They cover the main entity classes the ontology models.
var sampleTitles = []string{
	"Hồ Chí Minh",
	"Nguyễn Trãi",
	"Võ Nguyên Giáp",
	"Hà Nội",
	"Thành phố Hồ Chí Minh",
	"Huế",
	"Đà Nẵng",
	"Vịnh Hạ Long",
	"Đại học Quốc gia Hà Nội",
	"Chiến thắng Điện Biên Phủ",
	"Truyện Kiều",
	"Văn hóa Việt Nam",
}

func newCollectCommand(state *rootState) *cobra.Command {
	var (
		titles   []string
		category string
		limit    int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect articles from Vietnamese Wikipedia",
		Long: `Collect fetches articles by title or by category through the
MediaWiki API, including abstracts, infoboxes, categories and revision
metadata, and stores them as a JSON collection file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}

			client := wikipedia.NewClient(cfg.Wikipedia)
			ctx := cmd.Context()

			var articles []*wikipedia.Article
			switch {
			case category != "":
				articles, err = client.ArticlesByCategory(ctx, category, limit)
				if err != nil {
					return fmt.Errorf("collect category %s: %w", category, err)
				}
			default:
				want := titles
				if len(want) == 0 {
					want = sampleTitles
				}
				for _, title := range want {
					article, err := client.ArticleByTitle(ctx, title)
					if err != nil {
						cmd.PrintErrf("skipping %s: %v\n", title, err)
						continue
					}
					if article == nil {
						cmd.PrintErrf("skipping %s: article not found\n", title)
						continue
					}
					articles = append(articles, article)
				}
			}

			if err := wikipedia.SaveArticles(articles, output); err != nil {
				return err
			}
			cmd.Printf("Collected %d articles to %s\n", len(articles), output)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&titles, "titles", nil, "Article titles to collect")
	cmd.Flags().StringVar(&category, "category", "", "Collect members of a category instead of titles")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum articles when collecting a category")
	cmd.Flags().StringVarP(&output, "output", "o", "data/raw/articles.json", "Collection file path")

	return cmd
}
