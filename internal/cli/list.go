package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listEntry represents a template for display.
type listEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location"`
}

func newListCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"list-templates"},
		Short:   "List available project templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := root.store().List()
			if err != nil {
				return fmt.Errorf("listing templates: %w", err)
			}

			rows := make([]listEntry, 0, len(entries))
			for _, e := range entries {
				row := listEntry{Name: e.Name.String(), Location: e.Location}
				if e.Manifest != nil {
					row.Version = e.Manifest.Version
					row.Description = e.Manifest.Description
				}
				rows = append(rows, row)
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
				return nil
			}

			if asJSON {
				return printListJSON(cmd, rows)
			}
			return printListTable(cmd, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func printListTable(cmd *cobra.Command, rows []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION")
	for _, r := range rows {
		version := r.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, version, r.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, rows []listEntry) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
