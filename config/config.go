package config

import (
	"fmt"
	"os"

	"octest/client"
	"octest/contract"
	octerr "octest/errors"
	"octest/jsonx"
	"octest/logx"
)

// Wallet is the signing material and node endpoint, loaded once before the
// run. Seed holds the decoded 32-byte Ed25519 seed and never leaves this
// struct after load.
type Wallet struct {
	Priv string `json:"priv"`
	Addr string `json:"addr"`
	RPC  string `json:"rpc"`

	Seed []byte `json:"-"`
}

// LoadWallet reads and validates wallet.json. Malformed or missing files
// are a fatal startup condition; nothing here is retried.
func LoadWallet(path string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	var w Wallet
	if err := jsonx.Unmarshal(data, &w); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	seed, err := client.DecodeSeed(w.Priv)
	if err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	w.Seed = seed
	if err := client.ValidateAddress(w.Addr); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if w.RPC == "" {
		return nil, &octerr.ConfigError{Path: path, Err: fmt.Errorf("missing rpc endpoint")}
	}
	logx.Debug("CONFIG", "loaded wallet for ", w.Addr)
	return &w, nil
}

// LoadInterface reads the contract's declared method surface from
// exec_interface.json.
func LoadInterface(path string) (*contract.Interface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	var iface contract.Interface
	if err := jsonx.Unmarshal(data, &iface); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if err := client.ValidateAddress(iface.Contract); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	if len(iface.Methods) == 0 {
		return nil, &octerr.ConfigError{Path: path, Err: fmt.Errorf("interface declares no methods")}
	}
	logx.Debug("CONFIG", fmt.Sprintf("loaded interface %s with %d methods", iface.Contract, len(iface.Methods)))
	return &iface, nil
}
