package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search timeline nodes",
		Long:  "Substring search over node keys, titles, organizations, and summaries.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().StringP("profile", "p", "", "Filter by profile")
	cmd.Flags().String("type", "", "Filter by node type")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	nodeType, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	nodes, err := s.Search(cmd.Context(), store.SearchParams{
		Profile: profile,
		Query:   strings.Join(args, " "),
		Type:    nodeType,
		Limit:   limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	b, _ := json.MarshalIndent(nodes, "", "  ")
	fmt.Println(string(b))
}
