package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"octest/contract"
	"octest/logx"
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <method> [params...]",
	Short: "Submit a single state-changing contract call",
	Long: `This command builds, signs and submits one call-kind method from
the interface file, with nonce management and retry. Parameters are taken
from the command line; any omitted ones are generated from the method's
parameter specs.

Examples:
  octest call claim_credits
  octest call increment 5`,
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
		if method.Kind != contract.KindCall {
			return fmt.Errorf("method %q is %q, not %q", method.Name, method.Kind, contract.KindCall)
		}
		params, err := resolveParams(method, args[1:])
		if err != nil {
			return err
		}
		submitter, err := env.newSubmitter()
		if err != nil {
			return err
		}
		hash, err := submitter.Submit(cmd.Context(), env.iface.Contract, method.Name, params)
		if err != nil {
			return err
		}
		logx.Info("CALL", method.Label, ": TX Hash ", hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
}
