package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/helper/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), version.Get())
		},
	}
}

func printVersion(w io.Writer, info version.Info) {
	fmt.Fprintf(w, "helper v%s\n", info.Version)
	fmt.Fprintf(w, "  Git Commit: %s\n", info.GitCommit)
	fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
	fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
}
