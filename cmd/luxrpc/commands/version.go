package commands

import (
	"fmt"
	"runtime"

	"github.com/sebamiro/luxrpc/internal/rpc"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/sebamiro/luxrpc/cmd/luxrpc/commands.Version=..."
var (
	Version = "dev"
	Commit  string
)

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show build and runtime details")
}

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Version:", Version)
		if Commit != "" {
			fmt.Fprintln(out, "Git Commit:", Commit)
		}
		if !verbose {
			return
		}
		fmt.Fprintln(out, "User Agent:", rpc.UserAgent)
		fmt.Fprintln(out, "Architecture:", runtime.GOARCH)
		fmt.Fprintln(out, "Go Version:", runtime.Version())
		fmt.Fprintln(out, "Operating System:", runtime.GOOS)
	},
}
