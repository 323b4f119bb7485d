package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backbone81/versioned-list/internal/regularlist"
	"github.com/backbone81/versioned-list/pkg/versionlog"
)

// demoCmd represents the demo command.
var demoCmd = &cobra.Command{
	Use:          "demo",
	Short:        "Compares a regular list with a versioned list.",
	Long:         `Appends 1, 2 and 3 to a regular list and to a versioned list and prints what each of them remembers.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "=== List Implementation Comparison ===")

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Regular List Demo:")
		regularList := regularlist.New()
		regularList.Append(1)
		regularList.Append(2)
		regularList.Append(3)
		fmt.Fprintf(out, "Values: %s\n", versionlog.FormatValues(regularList.Values()))

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Persistent List Demo:")
		log := versionlog.New()
		log.Append(1)
		log.Append(2)
		log.Append(3)
		for version := uint64(1); version <= log.CurrentVersion(); version++ {
			fmt.Fprintf(out, "Version %d: %s\n", version, versionlog.FormatValues(log.SnapshotAsOf(version)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
