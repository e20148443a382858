package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a timeline node",
		Long:  "Soft-delete a node (default) or permanently remove it with --hard.",
		Run:   runRm,
	}

	cmd.Flags().StringP("profile", "p", "", "Profile (required)")
	cmd.Flags().StringP("key", "k", "", "Key (required)")
	cmd.Flags().Bool("all-versions", false, "Delete every version, not just the latest")
	cmd.Flags().Bool("hard", false, "Permanently delete instead of soft-deleting")

	cmd.MarkFlagRequired("profile")
	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	key, _ := cmd.Flags().GetString("key")
	allVersions, _ := cmd.Flags().GetBool("all-versions")
	hard, _ := cmd.Flags().GetBool("hard")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Rm(cmd.Context(), store.RmParams{
		Profile:     profile,
		Key:         key,
		AllVersions: allVersions,
		Hard:        hard,
	}); err != nil {
		exitErr("rm", err)
	}

	fmt.Printf(`{"ok":true,"profile":%q,"key":%q}`+"\n", profile, key)
}
