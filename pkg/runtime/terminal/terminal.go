package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/ebsight/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	sessions commands.SessionFactory
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Sessions commands.SessionFactory
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		sessions: opts.Sessions,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebsight",
		Short: "EBS volume snapshot and performance analyzer",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.sessions, cli.output))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
