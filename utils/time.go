package utils

import (
	"strconv"
	"time"
)

// SecondsBetween returns num of seconds between two timestamps
func SecondsBetween(from time.Time, to time.Time) float64 {
	return to.Sub(from).Seconds()
}

// NowWireTimestamp returns the current time as fractional seconds since the
// epoch, the representation transactions carry on the wire.
func NowWireTimestamp() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// FormatWireTimestamp renders a wire timestamp in its canonical textual
// form: shortest decimal that round-trips, never scientific notation, no
// fractional part when the value is whole. Signer and node must agree on
// this rendering byte for byte.
func FormatWireTimestamp(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}
