package cli

import (
	"encoding/json"
	"fmt"

	"github.com/phoenix-kits/phoenix-kits/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(root *rootOptions) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			b := root.build

			if short {
				fmt.Fprintln(w, b.version)
				return nil
			}

			if asJSON {
				info := map[string]string{
					"version": b.version,
					"commit":  b.commit,
					"date":    b.date,
				}
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(w, string(out))
				return nil
			}

			fmt.Fprintf(w, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), b.version, b.commit, b.date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}
