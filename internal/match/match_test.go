package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	candidates := []string{"pool.min", "pool.max", "db.url", "log.level"}

	tests := []struct {
		name string
		want string
	}{
		{"pool.mn", "pool.min"},
		{"pool_max", "pool.max"},
		{"POOL.MIN", "pool.min"},
		{"loglevel", "log.level"},
		{"completely.unrelated.key", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closest(tt.name, candidates))
		})
	}
}

func TestClosest_NoCandidates(t *testing.T) {
	assert.Equal(t, "", Closest("anything", nil))
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "poolmin", normalize("Pool.Min"))
	assert.Equal(t, "poolmin", normalize("pool_min"))
	assert.Equal(t, "poolmin", normalize("pool-min"))
}
