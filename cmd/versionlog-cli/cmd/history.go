package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backbone81/versioned-list/internal/regularlist"
	"github.com/backbone81/versioned-list/pkg/versionlog"
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows which earlier states a regular list and a versioned list remember.",
	Long: `Appends 1 and 2 to a regular list and to a versioned list. Every reference to the regular list sees the
latest content, while the versioned list still knows the content at every version.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "=== List History Comparison ===")

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Regular List Demo:")
		regularList := regularlist.New()
		listV1 := regularList.Append(1)
		listV2 := listV1.Append(2)
		fmt.Fprintf(out, "Original list: %s\n", versionlog.FormatValues(regularList.Values()))
		fmt.Fprintf(out, "Version 1: %s\n", versionlog.FormatValues(listV1.Values()))
		fmt.Fprintf(out, "Version 2: %s\n", versionlog.FormatValues(listV2.Values()))
		fmt.Fprintln(out, "All versions point to the same list!")

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Persistent List Demo:")
		log := versionlog.New()
		log.Append(1)
		log.Append(2)
		for version, values := range log.History() {
			fmt.Fprintf(out, "Version %d: %s\n", version, versionlog.FormatValues(values))
		}
		fmt.Fprintln(out, "Each version keeps its own state!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
