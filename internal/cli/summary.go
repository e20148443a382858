package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Assemble a plain-text profile summary",
		Long: "Pick a profile's most relevant nodes (ongoing and recent first) and pack them\n" +
			"into a character budget, one line per node in chronological order.",
		Run: runSummary,
	}

	cmd.Flags().StringP("profile", "p", "", "Profile to summarize (required)")
	cmd.Flags().String("type", "", "Restrict to one node type")
	cmd.Flags().IntP("budget", "b", 2000, "Max output characters")
	cmd.Flags().Bool("json", false, "Output the scored lines as JSON instead of plain text")

	cmd.MarkFlagRequired("profile")

	RootCmd.AddCommand(cmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	nodeType, _ := cmd.Flags().GetString("type")
	budget, _ := cmd.Flags().GetInt("budget")
	asJSON, _ := cmd.Flags().GetBool("json")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.Summary(cmd.Context(), store.SummaryParams{
		Profile: profile,
		Type:    nodeType,
		Budget:  budget,
	})
	if err != nil {
		exitErr("summary", err)
	}

	if asJSON {
		b, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Print(res.Text)
}
