package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/output"
)

func templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template [output.xlsx]",
		Short: "Write a blank sales workbook with the expected headers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := output.WriteTemplate(args[0]); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
			slog.Info("template written", slog.String("path", args[0]))
			return nil
		},
	}
}
