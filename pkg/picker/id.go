package picker

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newItemID returns a process-unique id for an accepted file. UUIDv4 from
// the crypto random source; when that source fails, a nanosecond timestamp
// with a random suffix.
func newItemID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	var b [4]byte
	rand.Read(b[:])
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), hex.EncodeToString(b[:]))
}

// newHandle returns an opaque token for a preview handle.
func newHandle() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
