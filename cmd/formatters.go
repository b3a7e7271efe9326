package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/undercover/internal/controller"
)

// formattersCmd represents the formatters command.
var formattersCmd = newFormattersCmd()

func newFormattersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formatters",
		Short: "List the available output formatters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range controller.FormatterKinds() {
				marker := ""
				if kind == controller.DefaultFormatter {
					marker = " (default)"
				}

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", kind, marker); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(formattersCmd)
}
