package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the configured watch targets",
	Long: `Prints each configured watch target with the state of its directory
and the note its uploads relate to, if any. Targets are resolved the
same way the watch command resolves them.`,
	RunE: runTargets,
}

var targetsFileFlag string

func init() {
	targetsCmd.Flags().StringVar(&targetsFileFlag, "targets", "",
		"path to a sync targets JSON file")
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, _ []string) error {
	targets, err := resolveTargets(targetsFileFlag, nil, defaultConfigDir())
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		cmd.Println("No watch targets configured.")
		return nil
	}

	for _, target := range targets {
		status := targetStatus(target.Directory)
		if target.RelationID != "" {
			cmd.Printf("%s [%s] -> note %s\n", target.Directory, status, target.RelationID)
		} else {
			cmd.Printf("%s [%s]\n", target.Directory, status)
		}
	}
	return nil
}

// targetStatus reports whether a target directory is usable.
func targetStatus(dir string) string {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return "missing"
	case err != nil:
		return "unreadable"
	case !info.IsDir():
		return "not a directory"
	default:
		return "ok"
	}
}
