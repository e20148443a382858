package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link two timeline nodes",
		Long: "Create (or remove with --rm) a typed relation between two nodes,\n" +
			"e.g. the internship that led_to the first job, or a project that is part_of a role.",
		Run: runLink,
	}

	cmd.Flags().StringP("profile", "p", "", "Profile of both nodes (required)")
	cmd.Flags().String("from", "", "Source node key (required)")
	cmd.Flags().String("to", "", "Target node key (required)")
	cmd.Flags().String("rel", "relates_to", "Relation: led_to, part_of, relates_to, transitioned_to")
	cmd.Flags().Bool("rm", false, "Remove the relation instead of creating it")

	cmd.MarkFlagRequired("profile")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	RootCmd.AddCommand(cmd)
}

func runLink(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	rel, _ := cmd.Flags().GetString("rel")
	remove, _ := cmd.Flags().GetBool("rm")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	link, err := s.Link(cmd.Context(), store.LinkParams{
		FromProfile: profile,
		FromKey:     from,
		ToProfile:   profile,
		ToKey:       to,
		Rel:         rel,
		Remove:      remove,
	})
	if err != nil {
		exitErr("link", err)
	}

	b, _ := json.Marshal(link)
	fmt.Println(string(b))
}
