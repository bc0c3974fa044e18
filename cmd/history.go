package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"octest/history"
	"octest/logx"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded invocation outcomes",
	Long: `This command lists past method invocations from the history store,
newest first. The store is only written when a history path is configured in
the tuning file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		if env.tuning.History.Path == "" {
			return fmt.Errorf("no history path configured in %s", globalConfig.TuningPath)
		}
		store, err := history.Open(env.tuning.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			logx.Info("HISTORY", "no recorded invocations")
			return nil
		}
		for _, e := range entries {
			logx.Info("HISTORY", formatEntry(e))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max entries to list (0 = all)")
}

func formatEntry(e history.Entry) string {
	at := time.Unix(e.At, 0).Format(time.DateTime)
	outcome := e.Result
	switch {
	case e.Err != "":
		outcome = "Error - " + e.Err
	case e.TxHash != "":
		outcome = "TX Hash " + e.TxHash
	}
	return fmt.Sprintf("%s %s(%s) [%s]: %s", at, e.Method, strings.Join(e.Params, ","), e.Kind, outcome)
}
