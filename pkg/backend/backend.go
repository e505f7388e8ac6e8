// Package backend provides the stores hyperstats uses to memoize computed reports.
// The engine is deterministic, so a report computed once for an observation set can be
// served again for any equal set; stores are keyed by the set's Fingerprint.
//
// The main interface IBackend provides methods for:
//   - Getting and setting reports
//   - Counting stored reports
//   - Clearing the store
//
// Backend implementations must satisfy the IBackendConstrain type constraint,
// which currently supports the InMemory and Redis backend types.
package backend

import (
	"context"
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

// IBackendConstrain defines the type constraint for report store implementations.
type IBackendConstrain interface {
	InMemory | Redis
}

// IBackend defines the contract that all report stores must implement.
// Only non-nil reports are ever stored.
type IBackend interface {
	// Get retrieves the report stored under key. ok is false when there is none.
	Get(ctx context.Context, key string) (report *stats.Report, ok bool, err error)
	// Set stores report under key.
	Set(ctx context.Context, key string, report *stats.Report) error
	// Count returns the number of stored reports.
	Count(ctx context.Context) int
	// Clear removes all stored reports.
	Clear(ctx context.Context) error
	// Kind names the backend type.
	Kind() string
}

// Fingerprint returns the store key of set: the xxhash64 of the IEEE-754 bits of every
// observation, in order, hex encoded. Equal sets have equal fingerprints.
func Fingerprint(set observation.Set) string {
	digest := xxhash.New()

	var buf [8]byte
	for _, v := range set.All {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = digest.Write(buf[:])
	}

	return strconv.FormatUint(digest.Sum64(), 16) + "-" + strconv.Itoa(set.Len())
}
