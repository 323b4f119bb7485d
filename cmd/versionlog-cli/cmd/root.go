package cmd

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/backbone81/versioned-list/pkg/versionlog"
)

var (
	printMetrics bool
	registry     *prometheus.Registry
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "versionlog-cli",
	Short: "A tool for demonstrating versioned lists.",
	Long: `A tool for demonstrating versioned lists. Every value appended to a versioned list is stamped with a new
version, and the list can be reconstructed as it was at any earlier version.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		registry = prometheus.NewRegistry()
		return versionlog.RegisterMetrics(registry)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !printMetrics {
			return nil
		}
		return writeMetrics(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// writeMetrics prints all metrics gathered during the command in the prometheus text format.
func writeMetrics(cmd *cobra.Command) error {
	metricFamilies, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	for _, metricFamily := range metricFamilies {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), metricFamily); err != nil {
			return fmt.Errorf("writing metric %q: %w", metricFamily.GetName(), err)
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&printMetrics,
		"metrics",
		"m",
		false,
		"Print the collected metrics after the command finished.",
	)
}
