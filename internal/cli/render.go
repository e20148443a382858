package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/journeycanvas/timeline/internal/render"
	"github.com/journeycanvas/timeline/internal/store"
	"github.com/journeycanvas/timeline/internal/timeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a profile's timeline as SVG",
		Run:   runRender,
	}

	cmd.Flags().StringP("profile", "p", "", "Profile to render (required)")
	cmd.Flags().String("type", "", "Restrict to one node type")
	cmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")

	cmd.MarkFlagRequired("profile")

	RootCmd.AddCommand(cmd)
}

func runRender(cmd *cobra.Command, args []string) {
	profile, _ := cmd.Flags().GetString("profile")
	nodeType, _ := cmd.Flags().GetString("type")
	out, _ := cmd.Flags().GetString("out")

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
		exitErr("render", err)
	}

	entries := timeline.Build(nodes, cfg.Layout, time.Now())

	items := make([]render.Item, len(entries))
	for i, e := range entries {
		detail := e.DateRange
		if e.Duration != "" && detail != "" {
			detail += " · " + e.Duration
		}
		items[i] = render.Item{
			Title:    e.Node.Title,
			Subtitle: e.Node.Org,
			Detail:   detail,
			X:        e.Position.X,
			Y:        e.Position.Y,
		}
	}

	svg := render.SVG(items, cfg.Render)

	if out == "" {
		fmt.Print(svg)
		return
	}
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		exitErr("write svg", err)
	}
	fmt.Printf(`{"ok":true,"out":%q,"nodes":%d}`+"\n", out, len(items))
}
