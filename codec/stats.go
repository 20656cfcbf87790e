package codec

// Stats describes a single encode call.
//
// Stats values are scoped to one call.
type Stats struct {
	// Symbols is the number of symbols encoded.
	Symbols int64
	// OriginalBits is the fixed-width size of the input, eight bits per symbol.
	OriginalBits int64
	// CompressedBits is the number of code bits written, excluding padding.
	CompressedBits int64
	// PaddingBits is the number of zero bits appended to the final byte.
	PaddingBits int
	// Bytes is the size of the packed stream.
	Bytes int64
}

// Ratio returns compressed bits divided by original bits.
// Returns 0 when nothing was encoded.
func (s Stats) Ratio() float64 {
	if s.OriginalBits == 0 {
		return 0.0
	}

	return float64(s.CompressedBits) / float64(s.OriginalBits)
}

// SpaceSavings returns the space saved as a percentage (0-100).
// Returns 0 when nothing was encoded.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalBits == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}
