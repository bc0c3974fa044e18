package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"octest/contract"
	"octest/logx"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view <method> [params...]",
	Short: "Invoke a single read-only contract method",
	Long: `This command invokes one view-kind method from the interface file.
Parameters are taken from the command line; any omitted ones are generated
from the method's parameter specs.

Examples:
  octest view get_credits
  octest view dot_product 3 4 5 6`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		method, err := env.iface.FindMethod(args[0])
		if err != nil {
			return err
		}
		if method.Kind != contract.KindView {
			return fmt.Errorf("method %q is %q, not %q", method.Name, method.Kind, contract.KindView)
		}
		params, err := resolveParams(method, args[1:])
		if err != nil {
			return err
		}
		result, err := env.client.CallView(cmd.Context(), env.iface.Contract, method.Name, params, env.wallet.Addr)
		if err != nil {
			return err
		}
		logx.Info("VIEW", method.Label, ": ", result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

// resolveParams uses given args positionally and generates the rest.
func resolveParams(method *contract.MethodSpec, given []string) ([]string, error) {
	if len(given) > len(method.Params) {
		return nil, fmt.Errorf("method %q takes %d params, got %d", method.Name, len(method.Params), len(given))
	}
	strategy := contract.NewRandomStrategy()
	params := make([]string, 0, len(method.Params))
	for i, spec := range method.Params {
		if i < len(given) {
			params = append(params, given[i])
			continue
		}
		v, err := strategy.Generate(spec)
		if err != nil {
			return nil, err
		}
		params = append(params, v)
	}
	return params, nil
}
