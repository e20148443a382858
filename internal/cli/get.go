package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve a timeline node",
		Run:   runGet,
	}

	cmd.Flags().StringP("profile", "p", "", "Profile (required)")
	cmd.Flags().StringP("key", "k", "", "Key (required)")
	cmd.Flags().Bool("history", false, "Return all versions (newest first)")
	cmd.Flags().IntP("version", "v", 0, "Specific version number")
	cmd.Flags().Bool("links", false, "Include the node's links")

	cmd.MarkFlagRequired("profile")
	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	key, _ := cmd.Flags().GetString("key")
	history, _ := cmd.Flags().GetBool("history")
	version, _ := cmd.Flags().GetInt("version")
	withLinks, _ := cmd.Flags().GetBool("links")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	nodes, err := s.Get(cmd.Context(), store.GetParams{
		Profile: profile,
		Key:     key,
		History: history,
		Version: version,
	})
	if err != nil {
		exitErr("get", err)
	}

	if withLinks {
		links, err := s.Links(cmd.Context(), profile, key)
		if err != nil {
			exitErr("links", err)
		}
		out := struct {
			Node  interface{}  `json:"node"`
			Links []store.Link `json:"links"`
		}{Node: nodes[0], Links: links}
		b, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(b))
		return
	}

	if history || len(nodes) > 1 {
		b, _ := json.MarshalIndent(nodes, "", "  ")
		fmt.Println(string(b))
	} else {
		b, _ := json.MarshalIndent(nodes[0], "", "  ")
		fmt.Println(string(b))
	}
}
