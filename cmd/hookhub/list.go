package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hookhub/internal/app"
	"github.com/MrSnakeDoc/hookhub/internal/domain"
	"github.com/MrSnakeDoc/hookhub/internal/sources/yamlfile"
)

var (
	listCategory string
	listJSON     bool
	listYAML     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog, optionally filtered by category",
	Long: `Print the hooks of the configured catalog, in catalog order, followed by
the same "Showing N hooks" line the page displays.

Categories: ` + strings.Join(selectionLabels(), ", "),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", domain.AllLabel, "Category to show")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in the catalog file format")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func runList(cmd *cobra.Command, args []string) error {
	sel, ok := domain.ParseSelection(listCategory)
	if !ok {
		return fmt.Errorf("unknown category %q (want one of: %s)", listCategory, strings.Join(selectionLabels(), ", "))
	}

	cfg, log := setup()
	defer func() { _ = log.Sync() }()

	cat, err := app.LoadCatalog(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	hooks := domain.Filter(cat.Hooks, sel)
	out := cmd.OutOrStdout()

	switch {
	case listJSON:
		return writeJSON(out, sel, hooks)
	case listYAML:
		data, err := yamlfile.Marshal(hooks)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return writeTable(out, hooks)
	}
}

func selectionLabels() []string {
	sels := domain.Selections()
	labels := make([]string, len(sels))
	for i, s := range sels {
		labels[i] = s.Label()
	}
	return labels
}

func writeJSON(w io.Writer, sel domain.Selection, hooks []domain.Hook) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Selected string        `json:"selected"`
		Count    int           `json:"count"`
		Summary  string        `json:"summary"`
		Hooks    []domain.Hook `json:"hooks"`
	}{
		Selected: sel.Label(),
		Count:    len(hooks),
		Summary:  domain.ResultSummary(len(hooks)),
		Hooks:    hooks,
	})
}

func writeTable(w io.Writer, hooks []domain.Hook) error {
	if len(hooks) == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", domain.ResultSummary(0), domain.EmptyStateMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tAUTHOR\tSTARS\tEVENTS")
	for _, h := range hooks {
		stars := "-"
		if h.GitHubStars != nil {
			stars = fmt.Sprint(*h.GitHubStars)
		}
		events := make([]string, len(h.HookTypes))
		for i, e := range h.HookTypes {
			events[i] = e.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", h.Name, h.Category, h.Author, stars, strings.Join(events, ","))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, domain.ResultSummary(len(hooks)))
	return err
}
