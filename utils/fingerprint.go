package utils

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

func U64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}

func FingerprintString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func Mix64(a, b uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(U64ToBytes(a))
	_, _ = h.Write(U64ToBytes(b))
	return h.Sum64()
}

// WriteString writes the length of s followed by its bytes, so adjacent
// parts cannot run into each other whatever bytes they contain.
func WriteString(h hash.Hash64, s string) {
	WriteInt(h, len(s))
	_, _ = h.Write([]byte(s))
}

// WriteInt writes a length or index prefix.
func WriteInt(h hash.Hash64, n int) {
	_, _ = h.Write(U64ToBytes(uint64(n)))
}

// AppendString is WriteString for a byte key.
func AppendString(b []byte, s string) []byte {
	b = AppendInt(b, len(s))
	return append(b, s...)
}

// AppendInt is WriteInt for a byte key.
func AppendInt(b []byte, n int) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(n))
}
