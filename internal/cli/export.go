package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export nodes as JSON",
		Long:  "Export nodes (including historical versions) as JSON. Filter by profile with -p.",
		Run:   runExport,
	}

	cmd.Flags().StringP("profile", "p", "", "Filter by profile")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	nodes, err := s.ExportAll(cmd.Context(), profile)
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.MarshalIndent(nodes, "", "  ")
	fmt.Println(string(b))
}
