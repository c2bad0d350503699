package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"last element differs", []int{1, 2, 3}, []int{1, 2, 4}, -1},
		{"first element differs", []int{5}, []int{1, 9, 9}, 1},
		{"strict prefix", []int{1, 2}, []int{1, 2, 3}, -1},
		{"longer", []int{1, 2, 3}, []int{1, 2}, 1},
		{"both empty", nil, nil, 0},
		{"empty is least", nil, []int{0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := Of(tt.a...), Of(tt.b...)

			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a))
			assert.Equal(t, tt.want == 0, Equal(a, b))
			assert.Equal(t, tt.want != 0, NotEqual(a, b))
			assert.Equal(t, tt.want < 0, Less(a, b))
			assert.Equal(t, tt.want > 0, Greater(a, b))
			assert.Equal(t, tt.want <= 0, LessOrEqual(a, b))
			assert.Equal(t, tt.want >= 0, GreaterOrEqual(a, b))
		})
	}
}

func TestCompareIgnoresCapacity(t *testing.T) {
	a, b := Of(1, 2), Of(1, 2)
	require.NoError(t, b.Reserve(16))

	assert.True(t, Equal(a, b))
	assert.False(t, Less(a, b))
	assert.False(t, Less(b, a))
}

func TestCompareFunc(t *testing.T) {
	a := Of("Fox", "owl")
	b := Of("fox", "OWL")

	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, Equal(a, b))
	assert.Equal(t, 0, CompareFunc(a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}))

	lengths := Of(3, 3)
	assert.True(t, EqualFunc(a, lengths, func(s string, n int) bool { return len(s) == n }))
}
