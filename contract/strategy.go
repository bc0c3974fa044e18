package contract

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"
)

const defaultMax = 100

// Strategy materializes one string-encoded argument for a parameter spec.
// Argument generation is policy, not core: the dispatcher takes whichever
// strategy it is handed, so tests substitute a deterministic one.
type Strategy interface {
	Generate(p ParamSpec) (string, error)
}

// RandomStrategy picks the declared example when present, otherwise a
// uniform random integer in [1, max] (max defaulting to 100).
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy() *RandomStrategy {
	return &RandomStrategy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededStrategy returns a RandomStrategy with a fixed seed, for
// reproducible runs.
func NewSeededStrategy(seed int64) *RandomStrategy {
	return &RandomStrategy{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomStrategy) Generate(p ParamSpec) (string, error) {
	if p.Example != nil {
		return *p.Example, nil
	}
	max := uint64(defaultMax)
	if p.Max != nil {
		if *p.Max == 0 {
			return "", fmt.Errorf("param %q declares max 0", p.Name)
		}
		max = *p.Max
	}
	if max > math.MaxInt64 {
		max = math.MaxInt64
	}
	return strconv.FormatUint(1+uint64(s.rng.Int63n(int64(max))), 10), nil
}

// FixtureStrategy resolves parameters from a fixed name -> value map.
type FixtureStrategy struct {
	Values map[string]string
}

func (s *FixtureStrategy) Generate(p ParamSpec) (string, error) {
	v, ok := s.Values[p.Name]
	if !ok {
		return "", fmt.Errorf("no fixture value for param %q", p.Name)
	}
	return v, nil
}

// GenerateParams materializes arguments for every parameter of a method, in
// declaration order.
func GenerateParams(s Strategy, specs []ParamSpec) ([]string, error) {
	params := make([]string, 0, len(specs))
	for _, spec := range specs {
		v, err := s.Generate(spec)
		if err != nil {
			return nil, err
		}
		params = append(params, v)
	}
	return params, nil
}
