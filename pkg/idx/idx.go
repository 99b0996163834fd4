// Package idx issues request ids. Every request to the master is tagged
// with a ULID so a channel update can be followed through the logs, and
// installations may send their own id in the X-Request-ID header.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

// maxForeignLen bounds ids accepted from clients so a header cannot bloat
// every log line of a request.
const maxForeignLen = 64

// RequestID identifies one request in the logs.
type RequestID string

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh id for the current time.
func New() RequestID {
	return NewAt(time.Now().UTC())
}

// NewAt returns a fresh id stamped with t. Ids issued within the same
// millisecond still sort in issue order.
func NewAt(t time.Time) RequestID {
	mu.Lock()
	defer mu.Unlock()
	return RequestID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// FromHeader keeps a client supplied id when it is printable and short,
// and issues a new one otherwise.
func FromHeader(v string) RequestID {
	if v == "" || len(v) > maxForeignLen {
		return New()
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x21 || v[i] > 0x7e {
			return New()
		}
	}
	return RequestID(v)
}

func (id RequestID) String() string { return string(id) }
