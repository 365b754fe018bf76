package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voidreamer/anvil/internal/app"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [package]",
		Short: "List available packages or versions of one package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runList(cmd.Context(), name)
		},
	}
	return cmd
}

func runList(ctx context.Context, name string) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{Package: name})
	if err != nil {
		return err
	}
	if name != "" {
		fmt.Printf("%s:\n", name)
		for _, version := range result.Versions {
			fmt.Printf("  - %s\n", version)
		}
		return nil
	}
	for _, pkg := range result.Packages {
		fmt.Println(pkg)
	}
	return nil
}
