package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbpedia-vi/vikb/store"
)

func newQueryCommand(state *rootState) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "query <sparql>",
		Short: "Run a SPARQL query against the repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.loadConfig()
			if err != nil {
				return err
			}
			kind, err := parseQueryKind(kindName)
			if err != nil {
				return err
			}

			client := store.New(cfg.Store)
			result, err := client.Query(cmd.Context(), cfg.Store.Repository, args[0], kind)
			if err != nil {
				return err
			}

			switch kind {
			case store.QueryAsk:
				cmd.Printf("%t\n", result.Boolean)
			case store.QueryConstruct, store.QueryDescribe:
				cmd.Println(result.RDF)
			case store.QueryUpdate:
				cmd.Println("OK")
			default:
				printBindings(cmd, result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "select", "Query kind (select, construct, describe, ask, update)")
	return cmd
}

func parseQueryKind(name string) (store.QueryKind, error) {
	switch strings.ToLower(name) {
	case "select":
		return store.QuerySelect, nil
	case "construct":
		return store.QueryConstruct, nil
	case "describe":
		return store.QueryDescribe, nil
	case "ask":
		return store.QueryAsk, nil
	case "update":
		return store.QueryUpdate, nil
	}
	return "", fmt.Errorf("unknown query kind %q", name)
}

func printBindings(cmd *cobra.Command, result *store.QueryResult) {
	for i, binding := range result.Bindings {
		names := make([]string, 0, len(binding))
		for name := range binding {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cmd.Printf("%d  %s = %s\n", i+1, name, binding[name])
		}
	}
	cmd.Printf("%d results\n", len(result.Bindings))
}
