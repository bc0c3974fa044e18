package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"octest/client"
	"octest/logx"
	"octest/utils"
)

var balanceAddress string

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show balance and nonce for an account",
	Long: `This command fetches the current balance and nonce for the wallet
address, or for another address given with --address.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		addr := balanceAddress
		if addr == "" {
			addr = env.wallet.Addr
		}
		if err := client.ValidateAddress(addr); err != nil {
			return err
		}
		state, err := env.client.AccountState(cmd.Context(), addr)
		if err != nil {
			return fmt.Errorf("failed to get account state: %w", err)
		}
		logx.Info("BALANCE", addr, ": ", utils.FormatMicroFixed(state.Balance), " OCT, nonce ", state.Nonce)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)

	balanceCmd.Flags().StringVarP(&balanceAddress, "address", "a", "", "address to query (defaults to wallet address)")
}
