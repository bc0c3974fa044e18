package contract

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func uintPtr(v uint64) *uint64 { return &v }

func TestRandomStrategy_ExampleTakesPrecedence(t *testing.T) {
	s := NewSeededStrategy(1)
	v, err := s.Generate(ParamSpec{Name: "who", Type: "address", Example: strPtr("octAbc"), Max: uintPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, "octAbc", v)
}

func TestRandomStrategy_RespectsDeclaredMax(t *testing.T) {
	s := NewSeededStrategy(42)
	for i := 0; i < 200; i++ {
		v, err := s.Generate(ParamSpec{Name: "n", Type: "u64", Max: uintPtr(5)})
		require.NoError(t, err)
		n, err := strconv.ParseUint(v, 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, uint64(1))
		assert.LessOrEqual(t, n, uint64(5))
	}
}

func TestRandomStrategy_DefaultBound(t *testing.T) {
	s := NewSeededStrategy(42)
	for i := 0; i < 200; i++ {
		v, err := s.Generate(ParamSpec{Name: "n", Type: "u64"})
		require.NoError(t, err)
		n, err := strconv.ParseUint(v, 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, uint64(1))
		assert.LessOrEqual(t, n, uint64(100))
	}
}

func TestRandomStrategy_ZeroMaxIsAnError(t *testing.T) {
	s := NewSeededStrategy(1)
	_, err := s.Generate(ParamSpec{Name: "n", Type: "u64", Max: uintPtr(0)})
	assert.Error(t, err)
}

func TestFixtureStrategy(t *testing.T) {
	s := &FixtureStrategy{Values: map[string]string{"n": "7"}}

	v, err := s.Generate(ParamSpec{Name: "n", Type: "u64"})
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	_, err = s.Generate(ParamSpec{Name: "missing", Type: "u64"})
	assert.Error(t, err)
}

func TestGenerateParams_OrderAndFreshness(t *testing.T) {
	specs := []ParamSpec{
		{Name: "a", Type: "u64", Example: strPtr("1")},
		{Name: "b", Type: "u64", Example: strPtr("2")},
		{Name: "c", Type: "u64", Example: strPtr("3")},
	}
	params, err := GenerateParams(NewSeededStrategy(1), specs)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, params)
}

func TestGenerateParams_PropagatesError(t *testing.T) {
	_, err := GenerateParams(&FixtureStrategy{}, []ParamSpec{{Name: "n"}})
	assert.Error(t, err)
}

func TestFindMethod(t *testing.T) {
	iface := &Interface{
		Contract: "octContract1",
		Methods: []MethodSpec{
			{Name: "get", Kind: KindView},
			{Name: "claim", Kind: KindCall},
		},
	}

	m, err := iface.FindMethod("claim")
	require.NoError(t, err)
	assert.Equal(t, KindCall, m.Kind)

	_, err = iface.FindMethod("absent")
	assert.Error(t, err)
}
