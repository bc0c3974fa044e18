package client

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"

	"octest/utils"
)

var ErrUnsupportedKey = errors.New("crypto: unsupported private key length")

// Canonicalize produces the byte sequence both client and node sign and
// verify. Field order, quoting and number formatting are part of the wire
// contract: strings quoted, nonce bare, timestamp in its shortest
// round-trip decimal form.
func Canonicalize(tx *Tx) []byte {
	blob := fmt.Sprintf(`{"from":"%s","to_":"%s","amount":"%s","nonce":%d,"ou":"%s","timestamp":%s}`,
		tx.From, tx.To, tx.Amount, tx.Nonce, tx.OU, utils.FormatWireTimestamp(tx.Timestamp))
	return []byte(blob)
}

// SignTx signs the canonical bytes of tx with the Ed25519 key derived from
// a 32-byte seed. Deterministic: same key and fields, same signature.
func SignTx(tx *Tx, seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, ErrUnsupportedKey
	}
	privKey := ed25519.NewKeyFromSeed(seed)
	return ed25519.Sign(privKey, Canonicalize(tx)), nil
}

// Verify reports whether sig is a valid signature over tx's canonical bytes.
func Verify(tx *Tx, pubKey ed25519.PublicKey, sig []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pubKey, Canonicalize(tx), sig)
}

// PublicKeyFromSeed derives the Ed25519 public key for a 32-byte seed.
func PublicKeyFromSeed(seed []byte) (ed25519.PublicKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, ErrUnsupportedKey
	}
	return ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey), nil
}

// EncodeSignature renders a signature for transport.
func EncodeSignature(sig []byte) string {
	return base64.StdEncoding.EncodeToString(sig)
}

// EncodePublicKey renders a public key for transport.
func EncodePublicKey(pubKey ed25519.PublicKey) string {
	return base64.StdEncoding.EncodeToString(pubKey)
}

// DecodeSeed parses the wallet's base64 private key material into a 32-byte
// Ed25519 seed.
func DecodeSeed(b64 string) ([]byte, error) {
	seed, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("crypto: private key is not valid base64: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, ErrUnsupportedKey
	}
	return seed, nil
}
