package hufftext

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftext/alphabet"
	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/errs"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/frame"
)

func TestDefaults(t *testing.T) {
	tr := DefaultTree()
	require.Same(t, tr, DefaultTree())
	require.Same(t, DefaultTable(), DefaultTable())
	require.Equal(t, alphabet.DefaultWeights.Total(), tr.Weight())

	e, _ := alphabet.FromByte('e')
	require.Equal(t, "100", DefaultTable().Lookup(e).String())
}

func TestDefaults_Concurrent(t *testing.T) {
	framed, _, err := CompressFrame([]byte("jumps over"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, _, err := Compress([]byte("the quick brown fox"))
			assert.NoError(t, err)
			assert.NotEmpty(t, data)

			got, err := DecompressFrame(framed)
			assert.NoError(t, err)
			assert.Equal(t, "jumps over", string(got))
		}()
	}
	wg.Wait()
}

func TestCompress_AA(t *testing.T) {
	data, stats, err := Compress([]byte("a a"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x2B, 0x20}, data)
	require.Equal(t, int64(24), stats.OriginalBits)
	require.Equal(t, int64(12), stats.CompressedBits)
	require.InDelta(t, 50.0, stats.SpaceSavings(), 1e-9)

	got, err := Decompress(data, len(data))
	require.NoError(t, err)
	require.Equal(t, "a a", string(got))
}

func TestDecompress_TrailingPadding(t *testing.T) {
	data, stats, err := Compress([]byte("eee"))
	require.NoError(t, err)
	require.Equal(t, 7, stats.PaddingBits)

	// Five or more padding zeros walk to 'l'.
	got, err := Decompress(data, len(data))
	require.NoError(t, err)
	require.Equal(t, "eeel", string(got))

	framed, _, err := CompressFrame([]byte("eee"))
	require.NoError(t, err)
	got, err = DecompressFrame(framed)
	require.NoError(t, err)
	require.Equal(t, "eee", string(got))
}

func TestCompress_InvalidSymbol(t *testing.T) {
	_, _, err := Compress([]byte("abc1"))
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
}

func TestDecompress_MissingSize(t *testing.T) {
	_, err := Decompress([]byte{0x2B}, -1)
	require.ErrorIs(t, err, errs.ErrMissingSizeMetadata)
}

func TestCompressTo_DecompressFrom(t *testing.T) {
	text := "hello world\nignored"

	var packed bytes.Buffer
	stats, err := CompressTo(&packed, strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, int64(11), stats.Symbols)

	data, _, err := Compress([]byte(text))
	require.NoError(t, err)
	require.Equal(t, data, packed.Bytes())

	var out bytes.Buffer
	n, err := DecompressFrom(&out, &packed, int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, int64(out.Len()), n)
	require.True(t, strings.HasPrefix(out.String(), "hello world"))
}

func TestFrame_RoundTrip(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			text := strings.Repeat("a a eee ", 64)
			data, stats, err := CompressFrame([]byte(text), frame.WithCompression(compression))
			require.NoError(t, err)
			require.Equal(t, int64(len(text)), stats.Symbols)

			got, err := DecompressFrame(data)
			require.NoError(t, err)
			require.Equal(t, text, string(got))
		})
	}
}

func TestCompressFrame_InvalidOption(t *testing.T) {
	_, _, err := CompressFrame([]byte("a"), frame.WithCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestSupports(t *testing.T) {
	require.True(t, Supports(format.StrategySerial))
	require.False(t, Supports(format.StrategyParallel))

	_, err := NewEncoder(codec.WithStrategy(format.StrategyParallel))
	require.ErrorIs(t, err, errs.ErrUnimplementedMode)

	enc, err := NewEncoder()
	require.NoError(t, err)
	require.Equal(t, format.StrategySerial, enc.Strategy())
	require.NotNil(t, NewDecoder())
}
