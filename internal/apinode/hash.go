package apinode

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/minio/highwayhash"
)

// bodyHashSeed is the fixed 32-byte HighwayHash key used to hash macro
// bodies for equality checks. It is not a secret; a fixed key keeps the hash
// deterministic across runs, which the determinism invariant (spec §8.1)
// requires.
var bodyHashSeed = [highwayhash.Size]byte{
	0x41, 0x52, 0x4d, 0x4f, 0x52, 0x2d, 0x41, 0x50,
	0x49, 0x2d, 0x44, 0x49, 0x46, 0x46, 0x2d, 0x76,
	0x31, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// HashBody returns a stable hex-encoded HighwayHash of a conditional
// -compilation node's body text, for the Hash auxiliary attribute (spec
// §3.1). Two bodies with the same bytes always hash identically.
func HashBody(body []byte) string {
	h := highwayhash.Sum64(body, bodyHashSeed[:])
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], h)
	return hex.EncodeToString(buf[:])
}
