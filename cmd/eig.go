// Package cmd provides the command-line interface for EigenLab: the same
// numerical operations the HTTP API exposes, runnable from a terminal.
package cmd

import (
	"encoding/json"
	"fmt"

	"eigenlab/core"
	"eigenlab/engine"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CLI output formatters
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

// Global flags for eig commands
var (
	outputFormat string
	noColor      bool
	matrixArg    string
	vectorArg    string
	toleranceArg float64
)

// NewEigCmd creates the `eig` command group.
func NewEigCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eig",
		Short: "Compute eigendecompositions, transforms, and eigenvector checks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newDecomposeCmd())
	rootCmd.AddCommand(newTransformCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newPresetsCmd())

	return rootCmd
}

func newEngine() *engine.Engine {
	return engine.New(zap.NewNop().Sugar())
}

// parseMatrix parses a JSON matrix literal like [[2,0],[0,3]].
func parseMatrix(s string) (core.Matrix, error) {
	var m core.Matrix
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("invalid matrix %q: expected a JSON array of rows, e.g. [[2,0],[0,3]]", s)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("invalid matrix %q: matrix is empty", s)
	}
	return m, nil
}

// parseVector parses a JSON vector literal like [3,4].
func parseVector(s string) (core.Vector, error) {
	var v core.Vector
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("invalid vector %q: expected a JSON array, e.g. [3,4]", s)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("invalid vector %q: vector is empty", s)
	}
	return v, nil
}

func newDecomposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Eigendecompose a 2x2 or 3x3 matrix",
		Example: `  eig decompose -m '[[2,0],[0,3]]'
  eig decompose -m '[[0,-1,0],[1,0,0],[0,0,1]]' -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(matrixArg)
			if err != nil {
				return err
			}
			result, err := newEngine().Decompose(m, len(m))
			if err != nil {
				return err
			}
			if outputFormat != "text" {
				return printStructured(cmd, result)
			}
			printDecomposition(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&matrixArg, "matrix", "m", "", "Matrix as a JSON array of rows (required)")
	_ = cmd.MarkFlagRequired("matrix")
	return cmd
}

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transform",
		Short:   "Apply a matrix transformation to a vector",
		Example: `  eig transform -m '[[0,-1],[1,0]]' -v '[1,0]'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(matrixArg)
			if err != nil {
				return err
			}
			v, err := parseVector(vectorArg)
			if err != nil {
				return err
			}
			transformed, err := newEngine().Transform(m, v)
			if err != nil {
				return err
			}
			if outputFormat != "text" {
				return printStructured(cmd, map[string]core.Vector{"transformed_vector": transformed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				headerColor.Sprint("Transformed:"), formatVector(transformed))
			return nil
		},
	}
	cmd.Flags().StringVarP(&matrixArg, "matrix", "m", "", "Matrix as a JSON array of rows (required)")
	cmd.Flags().StringVarP(&vectorArg, "vector", "v", "", "Vector as a JSON array (required)")
	_ = cmd.MarkFlagRequired("matrix")
	_ = cmd.MarkFlagRequired("vector")
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check whether a vector is an eigenvector of a matrix",
		Example: `  eig check -m '[[2,0],[0,3]]' -v '[1,0]'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(matrixArg)
			if err != nil {
				return err
			}
			v, err := parseVector(vectorArg)
			if err != nil {
				return err
			}
			result, err := newEngine().CheckAlignment(m, v, toleranceArg)
			if err != nil {
				return err
			}
			if outputFormat != "text" {
				return printStructured(cmd, result)
			}
			if result.IsEigenvector {
				fmt.Fprintf(cmd.OutOrStdout(), "%s eigenvalue = %.6g\n",
					successColor.Sprint("Eigenvector:"), *result.Eigenvalue)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", errorColor.Sprint("Not an eigenvector"))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&matrixArg, "matrix", "m", "", "Matrix as a JSON array of rows (required)")
	cmd.Flags().StringVarP(&vectorArg, "vector", "v", "", "Vector as a JSON array (required)")
	cmd.Flags().Float64Var(&toleranceArg, "tolerance", engine.DefaultTolerance, "Alignment tolerance")
	_ = cmd.MarkFlagRequired("matrix")
	_ = cmd.MarkFlagRequired("vector")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the preset matrix catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := core.Presets()
			if outputFormat != "text" {
				return printStructured(cmd, presets)
			}
			for _, dim := range []string{"2d", "3d"} {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", headerColor.Sprintf("%s presets", dim))
				for _, p := range presets[dim] {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %v\n    %s\n",
						infoColor.Sprint(p.Name), p.Matrix, p.Description)
				}
			}
			return nil
		},
	}
}
