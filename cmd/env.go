package cmd

import (
	"fmt"
	"time"

	"octest/client"
	"octest/config"
	"octest/contract"
)

// environment is everything a subcommand needs after startup: validated
// config plus a ready transport. Startup failure here is fatal before any
// network activity.
type environment struct {
	wallet *config.Wallet
	iface  *contract.Interface
	tuning *config.Tuning
	client *client.Client
}

func loadEnvironment() (*environment, error) {
	wallet, err := config.LoadWallet(globalConfig.WalletPath)
	if err != nil {
		return nil, err
	}
	iface, err := config.LoadInterface(globalConfig.InterfacePath)
	if err != nil {
		return nil, err
	}
	tuning, err := config.LoadTuning(globalConfig.TuningPath)
	if err != nil {
		return nil, err
	}

	rpcURL := wallet.RPC
	if globalConfig.ProfilesPath != "" {
		profiles, err := config.LoadProfiles(globalConfig.ProfilesPath)
		if err != nil {
			return nil, err
		}
		rpcURL, err = profiles.Resolve(globalConfig.Profile)
		if err != nil {
			return nil, fmt.Errorf("resolve profile: %w", err)
		}
	}

	rpc := client.NewClient(client.Config{
		BaseURL: rpcURL,
		Timeout: time.Duration(tuning.RPC.TimeoutSeconds) * time.Second,
	})
	return &environment{wallet: wallet, iface: iface, tuning: tuning, client: rpc}, nil
}

func (e *environment) newSubmitter() (*client.Submitter, error) {
	return client.NewSubmitter(e.client, e.wallet.Addr, e.wallet.Seed,
		client.WithRetryPolicy(e.tuning.Retry.Attempts, time.Duration(e.tuning.Retry.BackoffSeconds)*time.Second))
}
