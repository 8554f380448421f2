package brdtypes

import "math"

// Key is a record's 32-bit identity. The zero Key means "no pointer",
// the same way a zero OID/filenode means "absent" in the teacher's
// relmap/pg_class decoding — kept as a distinct type so a null pointer
// can never silently pass for a valid record address.
type Key uint32

// NilKey is the zero Key: "no record".
const NilKey Key = 0

// RoundToWord rounds n up to the next multiple of 4, the word-alignment
// every variable-length record's total on-disk size is padded to.
func RoundToWord(n int) int {
	return ((n + 3) / 4) * 4
}

// LocalNtohl byte-swaps a little-endian-native uint32 for display only.
// On-disk integers remain little-endian in memory; nothing downstream of
// this function may use its output for arithmetic or comparisons.
func LocalNtohl(v uint32) uint32 {
	return (v>>24)&0xFF | (v>>8)&0xFF00 | (v<<8)&0xFF0000 | (v<<24)&0xFF000000
}

// DecodeCadenceFP reconstructs an IEEE-754 double stored as two 32-bit
// halves in swapped order: the word appearing first on disk (diskFirst)
// holds the high 32 bits of the double and the word appearing second
// (diskSecond) holds the low 32 bits, the reverse of a plain
// little-endian uint64. Decoding concatenates them high-then-low before
// reinterpreting the bits as a float64.
func DecodeCadenceFP(diskFirst, diskSecond uint32) float64 {
	bits := uint64(diskFirst)<<32 | uint64(diskSecond)
	return math.Float64frombits(bits)
}
