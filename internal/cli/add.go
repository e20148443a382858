package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [summary]",
		Short: "Add or update a timeline node",
		Long: "Add or update a timeline node. Updating an existing profile/key creates a new\n" +
			"version. An optional free-text summary can be a positional arg or piped via stdin.",
		Run: runAdd,
	}

	cmd.Flags().StringP("profile", "p", "", "Profile the node belongs to (required)")
	cmd.Flags().StringP("key", "k", "", "Node key (required)")
	cmd.Flags().String("type", "event", "Node type: job, education, project, event, transition, action")
	cmd.Flags().String("title", "", "Node title (required)")
	cmd.Flags().String("org", "", "Organization (company, school, ...)")
	cmd.Flags().String("start", "", "Start date, any reasonable format (e.g. \"Jan 2020\", \"2020-01\", \"2020\")")
	cmd.Flags().String("end", "", "End date; empty or \"present\" means ongoing")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().String("meta", "", "JSON metadata")

	cmd.MarkFlagRequired("profile")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("title")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	key, _ := cmd.Flags().GetString("key")
	nodeType, _ := cmd.Flags().GetString("type")
	title, _ := cmd.Flags().GetString("title")
	org, _ := cmd.Flags().GetString("org")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	tagsStr, _ := cmd.Flags().GetString("tags")
	meta, _ := cmd.Flags().GetString("meta")

	// Summary: positional arg first, then check stdin.
	var summary string
	if len(args) > 0 {
		summary = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			summary = string(b)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	node, err := s.Put(cmd.Context(), store.PutParams{
		Profile:   profile,
		Key:       key,
		Type:      nodeType,
		Title:     title,
		Org:       org,
		Summary:   strings.TrimSpace(summary),
		StartDate: start,
		EndDate:   end,
		Tags:      splitTags(tagsStr),
		Meta:      meta,
	})
	if err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(node)
	fmt.Println(string(b))
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
