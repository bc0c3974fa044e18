package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"octest/contract"
	"octest/history"
	"octest/logx"
	"octest/report"
	"octest/runner"
	"octest/utils"
)

type RunConfig struct {
	Seed       int64
	ReportPath string
}

var runConfig RunConfig

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Exercise every declared contract method",
	Long: `This command walks the contract interface in declaration order,
generates arguments for each method, queries view methods and submits signed
call transactions, and appends one line per outcome to the report file.

Examples:
  # Exercise all methods with the default wallet and interface files
  octest run

  # Reproducible arguments and a custom report location
  octest run --seed 42 --report out/report.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAll(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int64Var(&runConfig.Seed, "seed", 0, "argument generation seed (0 = random)")
	runCmd.Flags().StringVar(&runConfig.ReportPath, "report", "", "report file path (overrides tuning)")
}

func runAll(ctx context.Context) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	logx.Info("CMD", "✅ Wallet loaded: ", env.wallet.Addr)

	state, err := env.client.AccountState(ctx, env.wallet.Addr)
	if err != nil {
		return fmt.Errorf("failed to get account state: %w", err)
	}
	logx.Info("CMD", "💰 Balance: ", utils.FormatMicroFixed(state.Balance), " OCT")

	reportPath := env.tuning.Report.Path
	if runConfig.ReportPath != "" {
		reportPath = runConfig.ReportPath
	}
	sink, err := report.NewWriter(reportPath)
	if err != nil {
		return err
	}
	defer sink.Close()

	submitter, err := env.newSubmitter()
	if err != nil {
		return err
	}

	var strategy contract.Strategy
	if runConfig.Seed != 0 {
		strategy = contract.NewSeededStrategy(runConfig.Seed)
	} else {
		strategy = contract.NewRandomStrategy()
	}

	opts := []runner.Option{
		runner.WithDelay(time.Duration(env.tuning.Pacing.DelaySeconds) * time.Second),
	}
	if env.tuning.History.Path != "" {
		store, err := history.Open(env.tuning.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, runner.WithRecorder(store))
	}

	start := time.Now()
	r := runner.New(env.iface, env.wallet.Addr, env.client, submitter, strategy, sink, opts...)
	if err := r.Run(ctx); err != nil {
		return err
	}
	logx.Info("CMD", fmt.Sprintf("🎯 Done in %.1fs", utils.SecondsBetween(start, time.Now())))
	return nil
}
