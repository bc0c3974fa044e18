package client

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func baseTx() *Tx {
	return &Tx{
		From:      "octSender111",
		To:        "octContract1",
		Amount:    "0",
		Nonce:     6,
		OU:        "1",
		Timestamp: 1712345678.25,
	}
}

func TestCanonicalize_GoldenBlob(t *testing.T) {
	blob := Canonicalize(baseTx())
	want := `{"from":"octSender111","to_":"octContract1","amount":"0","nonce":6,"ou":"1","timestamp":1712345678.25}`
	assert.Equal(t, want, string(blob))
}

func TestCanonicalize_WholeSecondTimestamp(t *testing.T) {
	tx := baseTx()
	tx.Timestamp = 1712345678
	blob := Canonicalize(tx)
	assert.Contains(t, string(blob), `"timestamp":1712345678}`)
	assert.NotContains(t, string(blob), "e+")
}

func TestCanonicalize_Deterministic(t *testing.T) {
	assert.Equal(t, Canonicalize(baseTx()), Canonicalize(baseTx()))
}

func TestCanonicalize_EveryFieldChangesOutput(t *testing.T) {
	base := string(Canonicalize(baseTx()))

	mutations := map[string]func(*Tx){
		"from":      func(tx *Tx) { tx.From = "octSender222" },
		"to":        func(tx *Tx) { tx.To = "octContract2" },
		"amount":    func(tx *Tx) { tx.Amount = "1" },
		"nonce":     func(tx *Tx) { tx.Nonce = 7 },
		"ou":        func(tx *Tx) { tx.OU = "2" },
		"timestamp": func(tx *Tx) { tx.Timestamp = 1712345678.5 },
	}
	for field, mutate := range mutations {
		tx := baseTx()
		mutate(tx)
		assert.NotEqual(t, base, string(Canonicalize(tx)), "mutating %s must change canonical bytes", field)
	}
}

func TestSignTx_RoundTrip(t *testing.T) {
	seed := testSeed()
	tx := baseTx()

	sig, err := SignTx(tx, seed)
	require.NoError(t, err)

	pubKey, err := PublicKeyFromSeed(seed)
	require.NoError(t, err)
	assert.True(t, Verify(tx, pubKey, sig))

	// Same key and fields, same signature.
	sig2, err := SignTx(tx, seed)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)
}

func TestVerify_RejectsMutatedMessage(t *testing.T) {
	seed := testSeed()
	tx := baseTx()
	sig, err := SignTx(tx, seed)
	require.NoError(t, err)
	pubKey, err := PublicKeyFromSeed(seed)
	require.NoError(t, err)

	mutated := baseTx()
	mutated.Nonce++
	assert.False(t, Verify(mutated, pubKey, sig))

	otherPub, err := PublicKeyFromSeed(append([]byte{0xff}, testSeed()[1:]...))
	require.NoError(t, err)
	assert.False(t, Verify(tx, otherPub, sig))
}

func TestSignTx_RejectsBadSeed(t *testing.T) {
	_, err := SignTx(baseTx(), []byte("short"))
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}

func TestEncodeSignatureAndPublicKey(t *testing.T) {
	seed := testSeed()
	sig, err := SignTx(baseTx(), seed)
	require.NoError(t, err)
	pubKey, err := PublicKeyFromSeed(seed)
	require.NoError(t, err)

	decodedSig, err := base64.StdEncoding.DecodeString(EncodeSignature(sig))
	require.NoError(t, err)
	assert.Equal(t, sig, decodedSig)

	decodedPub, err := base64.StdEncoding.DecodeString(EncodePublicKey(pubKey))
	require.NoError(t, err)
	assert.Equal(t, []byte(pubKey), decodedPub)
}

func TestDecodeSeed(t *testing.T) {
	seed := testSeed()
	got, err := DecodeSeed(base64.StdEncoding.EncodeToString(seed))
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	_, err = DecodeSeed("not-base64!!!")
	assert.Error(t, err)

	_, err = DecodeSeed(base64.StdEncoding.EncodeToString([]byte("too short")))
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}
