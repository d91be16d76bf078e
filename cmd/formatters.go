package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"eigenlab/core"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// printStructured emits v on the command's output stream in the format
// selected by --output. JSON output uses the same marshaling as the HTTP
// API, so CLI and API payloads stay identical.
func printStructured(cmd *cobra.Command, v interface{}) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// Round-trip through JSON so custom marshalers (Decomposition's
		// parallel-array shape) apply to YAML too.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic interface{}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
		return err
	default:
		return fmt.Errorf("unknown output format %q: use text, json, or yaml", outputFormat)
	}
}

// formatVector renders a vector as [a, b, c] with trimmed precision.
func formatVector(v core.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.6g", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// printDecomposition renders a decomposition as readable text.
func printDecomposition(cmd *cobra.Command, d *core.Decomposition) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", headerColor.Sprint("Eigendecomposition"))
	for i, p := range d.Eigenpairs {
		if p.IsReal {
			fmt.Fprintf(out, "  λ%d = %s (real)\tv%d = %s\n",
				i+1, successColor.Sprintf("%.6g", p.Value.Real), i+1, formatVector(p.Vector.Real))
		} else {
			fmt.Fprintf(out, "  λ%d = %s (complex)\tv%d = %s + %si\n",
				i+1, infoColor.Sprintf("%.6g%+.6gi", p.Value.Real, p.Value.Imag),
				i+1, formatVector(p.Vector.Real), formatVector(p.Vector.Imag))
		}
	}
	fmt.Fprintf(out, "  determinant = %.6g\n  trace = %.6g\n", d.Determinant, d.Trace)
}
