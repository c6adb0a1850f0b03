package corpus

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		words := []string{"apple", "Ahorn", "蜜蜂", "apple"}

		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, words))

		c, err := Decode(buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, words, c.Words(), "order, case and duplicates survive")
		assert.Equal(t, len(words), c.Len())
	})

	t.Run("SkipsBlankLines", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte("oak\n\nelm\n\n\nfir\n"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		c, err := Decode(buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, []string{"oak", "elm", "fir"}, c.Words())
	})

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, nil))

		c, err := Decode(buf.Bytes())
		require.NoError(t, err)
		assert.Zero(t, c.Len())
	})

	t.Run("Corrupt", func(t *testing.T) {
		_, err := Decode([]byte("not a gzip stream"))
		assert.Error(t, err)
	})
}
