package taiwanid

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// categoryDigits are the category digits the generator emits.
// Validation accepts any digit in this position; generation sticks to
// the ordinary 1 (male) and 2 (female) registrations.
var categoryDigits = [2]int{1, 2}

// Generator produces random valid ID numbers. A Generator is safe for
// concurrent use; access to an injected random source is serialized.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand // nil means the process-wide source
	logger zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets a dedicated random source, useful for deterministic
// output in tests. The default is the process-wide math/rand/v2 source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithLogger enables trace-level logging of generated IDs. The default
// logger is a no-op.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) intN(n int) int {
	if g.rng == nil {
		return rand.IntN(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}

// Generate returns a random valid ID number.
func (g *Generator) Generate() string {
	id, _ := g.GeneratePrefix("")
	return id
}

// GeneratePrefix returns a random valid ID number starting with prefix.
//
// An empty prefix gets a uniformly random region letter and a random
// category digit from {1, 2}; a single-letter prefix gets only the
// random category digit. Longer prefixes must be one uppercase letter
// followed by decimal digits. Unconstrained digit positions are filled
// uniformly at random and the final position is solved so the checksum
// holds.
//
// A prefix longer than 9 characters yields ErrPrefixTooLong; a prefix
// violating the letter/digit shape yields ErrInvalidPrefix.
func (g *Generator) GeneratePrefix(prefix string) (string, error) {
	if n := utf8.RuneCountInString(prefix); n > idLength-1 {
		return "", fmt.Errorf("%w: %d characters, at most %d allowed", ErrPrefixTooLong, n, idLength-1)
	}

	buf := make([]byte, 0, idLength)
	switch {
	case prefix == "":
		buf = append(buf, byte('A'+g.intN(26)))
		buf = append(buf, g.categoryDigit())
	case len(prefix) == 1:
		buf = append(buf, prefix[0])
		buf = append(buf, g.categoryDigit())
	default:
		buf = append(buf, prefix...)
	}

	letter := buf[0]
	if letter < 'A' || letter > 'Z' {
		return "", fmt.Errorf("%w: first character %q is not an uppercase letter", ErrInvalidPrefix, letter)
	}

	var a [11]int
	pair := codePairs[letter-'A']
	a[0], a[1] = pair[0], pair[1]
	for i, c := range buf[1:] {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: character %q at position %d is not a digit", ErrInvalidPrefix, c, i+1)
		}
		a[i+2] = int(c - '0')
	}

	for len(buf) < idLength-1 {
		d := g.intN(10)
		a[len(buf)+1] = d
		buf = append(buf, byte('0'+d))
	}
	buf = append(buf, byte('0'+solveCheckDigit(a)))

	id := string(buf)
	g.logger.Trace().Str("prefix", prefix).Str("id", id).Msg("generated id")
	return id, nil
}

func (g *Generator) categoryDigit() byte {
	return byte('0' + categoryDigits[g.intN(len(categoryDigits))])
}

// Validate checks id and returns (valid, reason).
func (g *Generator) Validate(id string) (bool, string) {
	return Validate(id)
}

// Parse validates id and decomposes it into its fields.
func (g *Generator) Parse(id string) (*ParseResult, error) {
	return Parse(id)
}

var defaultGenerator = NewGenerator()

// Generate returns a random valid ID number from the default Generator.
func Generate() string {
	return defaultGenerator.Generate()
}

// GeneratePrefix returns a random valid ID number starting with prefix,
// using the default Generator. See Generator.GeneratePrefix.
func GeneratePrefix(prefix string) (string, error) {
	return defaultGenerator.GeneratePrefix(prefix)
}
