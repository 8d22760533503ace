package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/menubcg-go/pkg/menubcg"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Classify the built-in demo menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := thresholdConfig(viper.GetViper())
			if err != nil {
				return err
			}
			out, err := outputConfig(viper.GetViper())
			if err != nil {
				return err
			}

			a, err := menubcg.DemoAnalysis(cfg)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), a, out)
		},
	}
}
