package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
	"github.com/journeycanvas/timeline/internal/timeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute timeline positions for a profile",
		Long: "Sort a profile's nodes chronologically, run the single-row layout, and print\n" +
			"each node with its computed position, date range, and duration as JSON.",
		Run: runLayout,
	}

	cmd.Flags().StringP("profile", "p", "", "Profile to lay out (required)")
	cmd.Flags().String("type", "", "Restrict to one node type")

	cmd.MarkFlagRequired("profile")

	RootCmd.AddCommand(cmd)
}

func runLayout(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	nodeType, _ := cmd.Flags().GetString("type")

	cfg := loadConfig()

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	nodes, err := s.List(cmd.Context(), store.ListParams{
		Profile: profile,
		Type:    nodeType,
		Limit:   1000,
	})
	if err != nil {
		exitErr("layout", err)
	}

	entries := timeline.Build(nodes, cfg.Layout, time.Now())

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
