package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voidreamer/anvil/internal/app"
)

type envOptions struct {
	Export bool
	JSON   bool
}

func newEnvCommand() *cobra.Command {
	opts := envOptions{}
	cmd := &cobra.Command{
		Use:   "env [packages...]",
		Short: "Resolve packages and print environment variables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Export, "export", "e", false, "Output as shell export statements")
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "Output as JSON")
	_ = viper.BindPFlag("export", cmd.Flags().Lookup("export"))
	_ = viper.BindPFlag("json", cmd.Flags().Lookup("json"))
	return cmd
}

func runEnv(ctx context.Context, cmd *cobra.Command, packages []string, opts envOptions) error {
	service := newAppService()
	result, err := service.Env(ctx, app.EnvRequest{Packages: packages})
	if err != nil {
		return err
	}

	switch {
	case resolveBool(cmd, opts.JSON, "json", "json"):
		data, err := json.MarshalIndent(result.Environment, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case resolveBool(cmd, opts.Export, "export", "export"):
		for _, key := range sortedKeys(result.Environment) {
			value := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(result.Environment[key])
			fmt.Printf("export %s=\"%s\"\n", key, value)
		}
	default:
		for _, key := range sortedKeys(result.Environment) {
			fmt.Printf("%s=%s\n", key, result.Environment[key])
		}
	}
	return nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
