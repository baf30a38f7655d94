// Command taglog is the demo console application. Without arguments it
// prints a fixed transcript exercising the logger and the case
// formatters; the greet subcommand prints a greeting and the local time.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taglog",
	Short: "Severity-tagged line logger demo",
	Long: `Taglog prints a short fixed transcript demonstrating the
severity-tagged line logger and the case formatters.

With --structured, the logger lines are routed through zap instead of
being written verbatim.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		structured, _ := cmd.Flags().GetBool("structured")
		writeTranscript(cmd.OutOrStdout(), structured)
	},
}

var greetCmd = &cobra.Command{
	Use:   "greet [who]",
	Short: "Print a greeting and the local time",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		who := ""
		if len(args) > 0 {
			who = args[0]
		}
		return writeGreeting(cmd.OutOrStdout(), who)
	},
}

func init() {
	rootCmd.Flags().Bool("structured", false, "route logger output through zap")
	rootCmd.AddCommand(greetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
