package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backbone81/versioned-list/internal/render"
	"github.com/backbone81/versioned-list/internal/script"
	"github.com/backbone81/versioned-list/pkg/versionlog"
)

var (
	runFile   string
	runOutput string
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs a script against a versioned list.",
	Long: `Runs a script against a versioned list. The script is a YAML file with the values to append and the
versions to print snapshots of:

  values: [1, 2, 3]
  versions: [0, 1, 2, 3]

When versions is omitted, every version is printed.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var writeSnapshots func(snapshots []render.Snapshot) error
		switch runOutput {
		case "text":
			writeSnapshots = func(snapshots []render.Snapshot) error {
				return render.WriteText(cmd.OutOrStdout(), snapshots)
			}
		case "yaml":
			writeSnapshots = func(snapshots []render.Snapshot) error {
				return render.WriteYAML(cmd.OutOrStdout(), snapshots)
			}
		default:
			return fmt.Errorf("unsupported output format %q", runOutput)
		}

		runScript, err := script.LoadFile(runFile)
		if err != nil {
			return err
		}
		return writeSnapshots(runScript.Run(versionlog.New(versionlog.WithInitialCapacity(len(runScript.Values)))))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(
		&runFile,
		"file",
		"f",
		"",
		"The YAML script to run.",
	)
	if err := runCmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}

	runCmd.Flags().StringVarP(
		&runOutput,
		"output",
		"o",
		"text",
		"The output format to use. Valid values are text, yaml.",
	)
}
