package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"octest/logx"
)

type GlobalConfig struct {
	WalletPath    string
	InterfacePath string
	TuningPath    string
	ProfilesPath  string
	Profile       string
}

var globalConfig GlobalConfig

var rootCmd = &cobra.Command{
	Use:   "octest",
	Short: "Contract method exerciser CLI",
	Long:  "Command line interface for exercising a deployed contract's methods against a remote node.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalConfig.WalletPath, "wallet", "w", "wallet.json", "wallet file")
	rootCmd.PersistentFlags().StringVarP(&globalConfig.InterfacePath, "interface", "i", "exec_interface.json", "contract interface file")
	rootCmd.PersistentFlags().StringVarP(&globalConfig.TuningPath, "config", "c", "octest.ini", "tuning file (optional)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.ProfilesPath, "profiles", "", "RPC profiles file (optional)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.Profile, "profile", "", "profile name to select from the profiles file")
}
