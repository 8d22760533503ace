// Package main provides the CLI entry point for menubcg.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "menubcg",
		Short: "Classify menu items on a growth-share matrix",
		Long:  `menubcg reads a restaurant sales sheet (product, name, cost, price,
quantity sold) and places every menu item in one of four quadrants:
Star, Cow, QuestionMark or Dog.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/menubcg/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	flags.Float64("cos-threshold", 25, "cost of sales threshold in percent")
	flags.Float64("top-revenue", 25, "cumulative revenue percent that defines Stars")
	flags.Bool("star-cost-guard", true, "only items within the CoS threshold can be Stars")
	flags.String("share-basis", "revenue", "share basis: revenue or units")
	flags.String("size-metric", "revenue", "size metric: revenue or margin")
	flags.Bool("log-axis", false, "use a logarithmic share axis")

	flags.StringP("format", "f", "json", "output format: json, csv, table")
	flags.StringP("output", "o", "", "output file path (default: stdout)")
	flags.Bool("pretty", false, "pretty-print JSON output")
	flags.String("sort", "", "sort csv/table rows by: revenue, qty, price, cost, cos, share, name")
	flags.Bool("asc", false, "sort ascending instead of descending")
	flags.String("search", "", "only keep csv/table rows whose name contains this text")

	bindings := map[string]string{
		"logging.level":          "log-level",
		"logging.format":         "log-format",
		"matrix.cos_threshold":   "cos-threshold",
		"matrix.top_revenue_pct": "top-revenue",
		"matrix.star_cost_guard": "star-cost-guard",
		"matrix.share_basis":     "share-basis",
		"matrix.size_metric":     "size-metric",
		"matrix.log_share_axis":  "log-axis",
		"output.format":          "format",
		"output.path":            "output",
		"output.pretty":          "pretty",
		"output.sort":            "sort",
		"output.ascending":       "asc",
		"output.search":          "search",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(templateCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/menubcg", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MENUBCG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging(level, format string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}

	switch format {
	case "console":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "menubcg %s\n", version)
		},
	}
}
