package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voidreamer/anvil/internal/app"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [package]",
		Short: "Show detailed package information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runInfo(ctx context.Context, name string) error {
	service := newAppService()
	result, err := service.Info(ctx, app.InfoRequest{Package: name})
	if err != nil {
		return err
	}

	fmt.Printf("Name: %s\n", result.Name)
	fmt.Printf("Version: %s\n", result.Version)
	if result.Description != "" {
		fmt.Printf("Description: %s\n", result.Description)
	}
	fmt.Printf("Root: %s\n", result.Root)
	if len(result.Requires) > 0 {
		fmt.Println("Requires:")
		for _, req := range result.Requires {
			fmt.Printf("  - %s\n", req)
		}
	}
	if len(result.Environment) > 0 {
		fmt.Println("Environment:")
		for _, entry := range result.Environment {
			fmt.Printf("  %s: %s\n", entry.Key, entry.Value)
		}
	}
	if len(result.Commands) > 0 {
		fmt.Println("Commands:")
		for _, key := range sortedKeys(result.Commands) {
			fmt.Printf("  %s: %s\n", key, result.Commands[key])
		}
	}
	return nil
}
