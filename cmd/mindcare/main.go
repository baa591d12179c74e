// Command mindcare runs the clinic's self-assessment, support chat and site
// pages in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mindcare",
		Short:         "Mantara clinic companion: wellbeing check, support chat and site pages",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newAssessCmd())
	root.AddCommand(newChatCmd())
	root.AddCommand(newPagesCmd())
	return root
}
