// Package endian provides the byte order engines used by frame headers.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so a
// header can be both parsed in place and appended to a buffer with the same
// value:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, symbolCount)
//	n := engine.Uint64(buf[4:12])
//
// The returned engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default for frames.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}
