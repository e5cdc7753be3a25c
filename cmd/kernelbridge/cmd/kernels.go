package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/kernelbridge/internal/bootstrap"
	"github.com/GriffinCanCode/kernelbridge/internal/infrastructure/config"
)

// kernelsCmd lists the registered kernel types
var kernelsCmd = &cobra.Command{
	Use:   "kernels",
	Short: "List registered kernel types",
	Long:  `Display every kernel type linked into this binary and mark the one bootstrap would select.`,
	Args:  cobra.NoArgs,
	RunE:  runKernels,
}

func init() {
	rootCmd.AddCommand(kernelsCmd)
}

type kernelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Selected    bool   `json:"selected"`
}

func runKernels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	selected := cfg.Kernel.Default
	if cfg.Kernel.Name != "" {
		selected = cfg.Kernel.Name
	}

	var kernels []kernelInfo
	for _, kt := range bootstrap.Types() {
		kernels = append(kernels, kernelInfo{
			Name:        kt.Name,
			Description: kt.Description,
			Selected:    kt.Name == selected,
		})
	}

	return printKernels(cmd.OutOrStdout(), kernels, outputFormat)
}

func printKernels(w io.Writer, kernels []kernelInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(kernels)
	case "table":
		if len(kernels) == 0 {
			fmt.Fprintln(w, "No kernels registered")
			return nil
		}

		table := tablewriter.NewWriter(w)
		table.Header("Name", "Description", "Selected")
		for _, k := range kernels {
			mark := ""
			if k.Selected {
				mark = "*"
			}
			table.Append([]string{k.Name, k.Description, mark})
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
