package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/phoenix-kits/phoenix-kits/internal/engine"
	"github.com/phoenix-kits/phoenix-kits/internal/manifest"
	"github.com/phoenix-kits/phoenix-kits/internal/templates"
	"github.com/spf13/cobra"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

func newDoctorCmd(root *rootOptions) *cobra.Command {
	var checkManifest string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check templates and the tools generated projects need",
		Long: `Run diagnostic checks: every built-in template must resolve and be valid,
and Python tooling must be available to run generated projects.

With --check-manifest, validate a single template.yaml instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if checkManifest != "" {
				return runManifestCheck(w, checkManifest)
			}

			failed := runTemplateCheck(w, root.engine(), root.store())
			runRuntimeCheck(w)
			if failed > 0 {
				return fmt.Errorf("%d template(s) failed checks", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a template manifest file at the given path")
	return cmd
}

// runTemplateCheck reports each known template and returns how many failed.
func runTemplateCheck(w io.Writer, e *engine.TemplateEngine, store *templates.Store) int {
	fmt.Fprintln(w, "Template check:")
	failed := 0
	for _, n := range templates.Names() {
		name := n.String()
		m, err := e.Check(name)
		switch {
		case errors.Is(err, engine.ErrTemplateNotFound):
			fmt.Fprintf(w, "  [MISS] %s not found at %s\n", name, store.Location(name))
			failed++
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			failed++
		case m.Version != "":
			fmt.Fprintf(w, "  [ OK ] %s (v%s)\n", name, m.Version)
		default:
			fmt.Fprintf(w, "  [ OK ] %s\n", name)
		}
	}
	return failed
}

func runRuntimeCheck(w io.Writer) {
	fmt.Fprintln(w, "Runtime check:")
	checkBinary(w, "python3", "python")
	checkBinary(w, "pip3", "pip")
}

// checkBinary reports the first of names found on PATH.
func checkBinary(w io.Writer, names ...string) {
	for _, name := range names {
		if path, err := lookPath(name); err == nil {
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
			return
		}
	}
	fmt.Fprintf(w, "  [MISS] %s not found\n", names[0])
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		fmt.Fprintln(w, "  [ OK ] Valid template manifest")
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
