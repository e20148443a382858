package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List timeline nodes",
		Run:   runList,
	}

	cmd.Flags().StringP("profile", "p", "", "Filter by profile")
	cmd.Flags().String("type", "", "Filter by node type")
	cmd.Flags().StringP("tags", "t", "", "Filter by tags (comma-separated)")
	cmd.Flags().IntP("limit", "l", 100, "Max results")
	cmd.Flags().Bool("keys-only", false, "Only output profile/key pairs")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	nodeType, _ := cmd.Flags().GetString("type")
	tagsStr, _ := cmd.Flags().GetString("tags")
	limit, _ := cmd.Flags().GetInt("limit")
	keysOnly, _ := cmd.Flags().GetBool("keys-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	nodes, err := s.List(cmd.Context(), store.ListParams{
		Profile: profile,
		Type:    nodeType,
		Tags:    splitTags(tagsStr),
		Limit:   limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if keysOnly {
		for _, n := range nodes {
			fmt.Printf("%s/%s\n", n.Profile, n.Key)
		}
		return
	}

	b, _ := json.MarshalIndent(nodes, "", "  ")
	fmt.Println(string(b))
}
