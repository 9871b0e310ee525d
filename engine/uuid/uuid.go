package uuid

import (
	"math/rand"

	guuid "github.com/google/uuid"
)

const (
	// UUID_BYTES is the number of random bytes drawn for an identifier
	UUID_BYTES = 16
	// UUID_LENGTH is the length of the textual form, e.g. 8-4-4-4-12 hex digits
	UUID_LENGTH = 36
)

// GenSeededUUID draws 16 bytes from a pseudo random generator seeded with seed
// and formats them as a 128-bit identifier.
//
// The same seed always yields the same identifier within one build.
func GenSeededUUID(seed int64) string {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, UUID_BYTES)
	r.Read(b) // never fails for math/rand
	id, _ := guuid.FromBytes(b) // len(b) == 16
	return id.String()
}

// IsValid checks whether s has the textual form of an identifier
func IsValid(s string) bool {
	if len(s) != UUID_LENGTH {
		return false
	}
	_, err := guuid.Parse(s)
	return err == nil
}
