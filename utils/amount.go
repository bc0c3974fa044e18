package utils

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// DecimalScale represents the scaling factor for amounts (10^6)
	DecimalScale = 1_000_000
)

var scale = uint256.NewInt(DecimalScale)

// FormatMicro renders a raw µ-unit amount as a decimal token amount with
// trailing zeros trimmed: 2500000 -> "2.5", 1000000 -> "1".
func FormatMicro(raw *uint256.Int) string {
	if raw == nil {
		return "0"
	}
	whole := new(uint256.Int)
	frac := new(uint256.Int)
	whole.DivMod(raw, scale, frac)
	if frac.IsZero() {
		return whole.Dec()
	}
	fracStr := strings.TrimRight(fmt.Sprintf("%06d", frac.Uint64()), "0")
	return whole.Dec() + "." + fracStr
}

// FormatMicroFixed renders a raw µ-unit amount with all six fractional
// digits, the form used for console balances: 2500000 -> "2.500000".
func FormatMicroFixed(raw *uint256.Int) string {
	if raw == nil {
		return "0.000000"
	}
	whole := new(uint256.Int)
	frac := new(uint256.Int)
	whole.DivMod(raw, scale, frac)
	return fmt.Sprintf("%s.%06d", whole.Dec(), frac.Uint64())
}
