package vector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	fox, err := FromString[byte]("Fox")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := fox.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Fox", buf.String())
	assert.Equal(t, int64(3), n)
}

func TestString(t *testing.T) {
	runes, err := FromString[rune]("Go!")
	require.NoError(t, err)

	assert.Equal(t, "Go!", runes.String())
	assert.Equal(t, "123", Of(1, 2, 3).String())
	assert.Equal(t, "ab", Of("a", "b").String())
	assert.Equal(t, "", New[float64]().String())
}
