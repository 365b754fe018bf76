package cli

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"github.com/voidreamer/anvil/internal/app"
)

type runOptions struct {
	EnvVars []string
}

func newRunCommand() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run [packages...] -- command [args...]",
		Short: "Run a command with a resolved environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringSliceVarP(&opts.EnvVars, "env", "e", nil, "Additional KEY=VALUE environment overrides")
	return cmd
}

func runRun(ctx context.Context, cmd *cobra.Command, args []string, opts runOptions) error {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 || dash == len(args) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command must follow --")
	}

	service := newAppService()
	result, err := service.Run(ctx, app.RunRequest{
		Packages: args[:dash],
		EnvVars:  opts.EnvVars,
		Command:  args[dash:],
	})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		os.Exit(result.ExitCode)
	}
	return nil
}
