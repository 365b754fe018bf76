package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voidreamer/anvil/internal/app"
)

type shellOptions struct {
	Shell string
}

func newShellCommand() *cobra.Command {
	opts := shellOptions{}
	cmd := &cobra.Command{
		Use:   "shell [packages...]",
		Short: "Start an interactive shell with a resolved environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Shell, "shell", "s", "", "Shell to use (defaults to $SHELL)")
	_ = viper.BindPFlag("shell", cmd.Flags().Lookup("shell"))
	return cmd
}

func runShell(ctx context.Context, cmd *cobra.Command, packages []string, opts shellOptions) error {
	service := newAppService()
	shell := resolveString(cmd, opts.Shell, "shell", "shell")
	fmt.Println("Starting shell with resolved environment, type 'exit' to leave.")
	result, err := service.Shell(ctx, app.ShellRequest{
		Packages: packages,
		Shell:    shell,
	})
	if err != nil {
		return err
	}
	fmt.Printf("left %s shell\n", result.Shell)
	return nil
}
