package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/mr-tron/base58"

	"octest/utils"
)

const addressPrefix = "oct"

var ErrInvalidAddress = errors.New("client: invalid address format")

// Tx is the unsigned transaction value object. Amount stays a decimal
// string because the wire carries it quoted; OU is the fixed operation-unit
// fee tag. Field order here mirrors the canonical serialization order.
type Tx struct {
	From      string
	To        string
	Amount    string
	Nonce     uint64
	OU        string
	Timestamp float64
}

// AccountState is a snapshot of an account as last observed on chain.
// Balance is the raw µ-unit integer; Nonce is the last consumed nonce, so
// the next transaction must carry Nonce+1.
type AccountState struct {
	Balance *uint256.Int
	Nonce   uint64
}

// DecimalBalance renders the balance as a token amount (×10⁻⁶), trailing
// zeros trimmed.
func (s *AccountState) DecimalBalance() string {
	return utils.FormatMicro(s.Balance)
}

type balanceResponse struct {
	BalanceRaw string `json:"balance_raw"`
	Nonce      uint64 `json:"nonce"`
}

type viewRequest struct {
	Contract string   `json:"contract"`
	Method   string   `json:"method"`
	Params   []string `json:"params"`
	Caller   string   `json:"caller"`
}

type viewResponse struct {
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

type callRequest struct {
	Contract  string   `json:"contract"`
	Method    string   `json:"method"`
	Params    []string `json:"params"`
	Caller    string   `json:"caller"`
	Nonce     uint64   `json:"nonce"`
	Timestamp float64  `json:"timestamp"`
	Signature string   `json:"signature"`
	PublicKey string   `json:"public_key"`
}

type callResponse struct {
	TxHash string `json:"tx_hash"`
}

// ValidateAddress checks the `oct` prefix and that the payload is base58.
func ValidateAddress(addr string) error {
	if !strings.HasPrefix(addr, addressPrefix) {
		return fmt.Errorf("%w: missing %q prefix in %q", ErrInvalidAddress, addressPrefix, addr)
	}
	payload := addr[len(addressPrefix):]
	if payload == "" {
		return fmt.Errorf("%w: empty payload in %q", ErrInvalidAddress, addr)
	}
	if _, err := base58.Decode(payload); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidAddress, addr, err)
	}
	return nil
}
