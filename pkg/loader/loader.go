// Package loader reads datasets of one decimal number per line into an observation.Set.
//
// Loading never panics and never signals failure by returning an error alone: the outcome
// is a Result that either carries the Set or the Reason the source could not be used.
// A failed Result never carries a partial Set.
package loader

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/observation"
)

// Reason classifies why a source produced no observation set.
type Reason int

const (
	// ReasonNone means the source loaded successfully.
	ReasonNone Reason = iota
	// ReasonSourceNotFound means the source does not exist.
	ReasonSourceNotFound
	// ReasonNonNumericToken means a line is not a finite real number.
	ReasonNonNumericToken
	// ReasonUnreadable means the source exists but reading it failed or was canceled.
	ReasonUnreadable
)

// String returns the string representation of the Reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonSourceNotFound:
		return "source-not-found"
	case ReasonNonNumericToken:
		return "non-numeric-token"
	case ReasonUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Result is the outcome of loading a dataset.
type Result struct {
	// Set holds the observations; it is empty whenever Err is set.
	Set observation.Set
	// Err describes the failure, nil on success.
	Err error

	reason Reason
}

// OK reports whether the source produced an observation set.
func (r Result) OK() bool {
	return r.Err == nil
}

// Reason returns why loading failed, ReasonNone on success.
func (r Result) Reason() Reason {
	return r.reason
}

// Succeeded returns a successful Result for set.
func Succeeded(set observation.Set) Result {
	return Result{Set: set}
}

// Failed returns a failed Result.
func Failed(reason Reason, err error) Result {
	return Result{Err: err, reason: reason}
}

// Load reads the dataset at path.
func Load(ctx context.Context, path string) Result {
	if path == "" {
		return Failed(ReasonSourceNotFound, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "path"))
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Failed(ReasonSourceNotFound, ewrap.Wrapf(sentinel.ErrSourceNotFound, "%s", path))
		}

		return Failed(ReasonUnreadable, ewrap.Wrapf(sentinel.ErrSourceUnreadable, "%s: %v", path, err))
	}
	defer file.Close()

	return ParseContext(ctx, file)
}

// Parse reads one observation per line from r.
func Parse(r io.Reader) Result {
	return ParseContext(context.Background(), r)
}

// ParseContext is Parse with cancellation checked between lines.
func ParseContext(ctx context.Context, r io.Reader) Result {
	var values []float64

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		if ctx.Err() != nil {
			return Failed(ReasonUnreadable, ewrap.Wrap(sentinel.ErrTimeoutOrCanceled, ctx.Err().Error()))
		}

		line++

		value, err := parseToken(scanner.Text())
		if err != nil {
			return Failed(ReasonNonNumericToken, ewrap.Wrapf(err, "line %d", line))
		}

		values = append(values, value)
	}

	err := scanner.Err()
	if err != nil {
		return Failed(ReasonUnreadable, ewrap.Wrapf(sentinel.ErrSourceUnreadable, "line %d: %v", line+1, err))
	}

	return Succeeded(observation.New(values...))
}

// parseToken turns one line into a finite float64.
func parseToken(raw string) (float64, error) {
	token := strings.TrimSpace(raw)

	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ewrap.Wrapf(sentinel.ErrNonNumericToken, "%q", token)
	}

	return value, nil
}
