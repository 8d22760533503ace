package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/menubcg-go/pkg/menubcg"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/ingest"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/parser"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Classify the menu items of a sales workbook",
		Long: `Read a sales workbook and classify its menu items.

The sheet named DatosVentas is used when present, otherwise the first sheet.
Its first used row must hold the column headers.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("sheet", parser.DefaultSheetName, "sheet to read when present")
	_ = viper.BindPFlag("input.sheet", cmd.Flags().Lookup("sheet"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := thresholdConfig(viper.GetViper())
	if err != nil {
		return err
	}
	out, err := outputConfig(viper.GetViper())
	if err != nil {
		return err
	}

	opts := menubcg.Options{
		SheetName: viper.GetString("input.sheet"),
		Config:    cfg,
	}

	a, err := menubcg.Analyze(args[0], opts)
	if err != nil {
		if !isIngestCondition(err) {
			return fmt.Errorf("analysis failed: %w", err)
		}
		slog.Warn("no items to classify", slog.String("reason", err.Error()))
	}

	for _, reason := range sortedReasons(a.Ingest.Skipped.ByReason) {
		if n := a.Ingest.Skipped.ByReason[reason]; n > 0 {
			slog.Info("skipped rows", slog.String("reason", reason), slog.Int("count", n))
		}
	}

	return writeResult(cmd.OutOrStdout(), a, out)
}

func isIngestCondition(err error) bool {
	return errors.Is(err, ingest.ErrEmptySheet) ||
		errors.Is(err, ingest.ErrMissingRequiredColumns) ||
		errors.Is(err, ingest.ErrNoValidRows)
}
