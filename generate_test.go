package taiwanid

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePrefixRoundTrip(t *testing.T) {
	prefixes := []string{"", "A", "Z", "A1", "A2", "F130", "I234567", "Z12345678"}

	g := NewGenerator()
	for _, prefix := range prefixes {
		t.Run("prefix_"+prefix, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				id, err := g.GeneratePrefix(prefix)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(id, prefix), "id %q lost prefix %q", id, prefix)
				assert.Len(t, id, 10)
				valid, reason := Validate(id)
				assert.True(t, valid, "id %q: %s", id, reason)
			}
		})
	}
}

func TestGeneratePrefixErrors(t *testing.T) {
	g := NewGenerator()

	_, err := g.GeneratePrefix("A123456789")
	assert.ErrorIs(t, err, ErrPrefixTooLong)

	_, err = g.GeneratePrefix("A1234567891234")
	assert.ErrorIs(t, err, ErrPrefixTooLong)

	for _, prefix := range []string{"a", "a1", "1", "11", "AX", "A1X", "A 2", "é1"} {
		_, err := g.GeneratePrefix(prefix)
		assert.ErrorIs(t, err, ErrInvalidPrefix, "prefix %q", prefix)
	}

	// Length 9 is the longest workable prefix.
	id, err := g.GeneratePrefix("A12345678")
	require.NoError(t, err)
	assert.True(t, IsValid(id))
}

func TestGenerateCategoryDigit(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 200; i++ {
		id, err := g.GeneratePrefix("A")
		require.NoError(t, err)
		assert.Contains(t, []byte{'1', '2'}, id[1])

		id = g.Generate()
		assert.Contains(t, []byte{'1', '2'}, id[1])
	}
}

func TestGenerateCoversAllLetters(t *testing.T) {
	g := NewGenerator()
	seen := make(map[byte]bool)
	for i := 0; i < 5000; i++ {
		seen[g.Generate()[0]] = true
	}
	for letter := byte('A'); letter <= 'Z'; letter++ {
		assert.True(t, seen[letter], "letter %c never generated", letter)
	}
}

func TestGenerateDeterministicWithRand(t *testing.T) {
	a := NewGenerator(WithRand(rand.New(rand.NewPCG(7, 7))))
	b := NewGenerator(WithRand(rand.New(rand.NewPCG(7, 7))))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerateConcurrent(t *testing.T) {
	g := NewGenerator(WithRand(rand.New(rand.NewPCG(1, 2))))

	var wg sync.WaitGroup
	ids := make([][]string, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ids[w] = append(ids[w], g.Generate())
			}
		}(w)
	}
	wg.Wait()

	for _, batch := range ids {
		for _, id := range batch {
			assert.True(t, IsValid(id), "id %q", id)
		}
	}
}

func TestPackageLevelGenerate(t *testing.T) {
	assert.True(t, IsValid(Generate()))

	id, err := GeneratePrefix("A2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "A2"))
	assert.True(t, IsValid(id))
}
