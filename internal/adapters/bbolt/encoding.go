package bbolt

import "encoding/binary"

// ordinalKey encodes a record ordinal as an 8-byte big-endian key, so bbolt's
// byte-sorted iteration order matches dataset order.
func ordinalKey(ord uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], ord)
	return k[:]
}

// ordinalFromKey decodes an 8-byte big-endian record key.
func ordinalFromKey(k []byte) uint64 {
	if len(k) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(k)
}
