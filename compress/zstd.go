package compress

// ZstdCompressor provides Zstandard compression for framed payloads.
//
// The pure Go implementation from klauspost/compress is used by default;
// building with the gozstd tag (and cgo) switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
