package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles",
		Run:   runProfiles,
	}

	RootCmd.AddCommand(cmd)
}

func runProfiles(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	profiles, err := s.ListProfiles(cmd.Context())
	if err != nil {
		exitErr("list profiles", err)
	}

	b, _ := json.MarshalIndent(profiles, "", "  ")
	fmt.Println(string(b))
}
