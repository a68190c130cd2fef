package profile

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

// NewID returns a time-ordered ULID string for profile entries and users.
func NewID() string {
	return NewIDAt(time.Now())
}

// NewIDAt returns a ULID with the given timestamp.
func NewIDAt(t time.Time) string {
	entropyLock.Lock()
	defer entropyLock.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
