// Package errs defines the sentinel errors returned by hufftext packages.
//
// Errors are wrapped with additional context using fmt.Errorf("%w: ...") and
// should be matched with errors.Is.
package errs

import "errors"

// Encoding errors.
var (
	// ErrInvalidSymbol is returned when the input contains a byte outside the
	// 27-symbol alphabet (lowercase letters and space).
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrUnimplementedMode is returned when parallel compression is requested.
	ErrUnimplementedMode = errors.New("compression mode not implemented")
	// ErrInvalidMode is returned for an unknown compress/decompress selection.
	ErrInvalidMode = errors.New("invalid mode")
)

// Decoding errors.
var (
	// ErrMissingSizeMetadata is returned when a raw stream is decoded without a valid byte count.
	ErrMissingSizeMetadata = errors.New("missing or invalid size metadata")
	// ErrTruncatedStream is returned when the stream ends before the declared number of bits or bytes.
	ErrTruncatedStream = errors.New("truncated stream")
)

// Frame errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidHeaderFlags  = errors.New("invalid header flags")
	ErrInvalidPayloadSize  = errors.New("invalid payload size")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrSymbolCountMismatch = errors.New("decoded symbol count mismatch")
	ErrInvalidCompression  = errors.New("invalid compression type")
)
