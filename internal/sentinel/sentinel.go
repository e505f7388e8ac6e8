// Package sentinel provides standardized error definitions for the hyperstats system.
// This package centralizes all error types used across the hyperstats components,
// ensuring consistent error handling and messaging throughout the application.
//
// The errors defined here cover various scenarios including:
// - Dataset loading failures (missing source, malformed tokens)
// - Component initialization errors (nil clients, missing collectors/serializers)
// - Runtime operation errors (timeouts, cancellations)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrSourceNotFound is returned when the dataset source cannot be located.
	ErrSourceNotFound = ewrap.New("source not found")

	// ErrNonNumericToken is returned when a dataset line is not a finite real number.
	ErrNonNumericToken = ewrap.New("non-numeric token")

	// ErrSourceUnreadable is returned when the dataset source exists but cannot be read.
	ErrSourceUnreadable = ewrap.New("source unreadable")

	// ErrNilClient is returned when a nil client is passed to a backend.
	ErrNilClient = ewrap.New("nil client")

	// ErrInvalidCapacity is returned when an invalid capacity is passed to a backend.
	ErrInvalidCapacity = ewrap.New("capacity cannot be negative")

	// ErrStatsCollectorNotFound is returned when a stats collector is not found.
	ErrStatsCollectorNotFound = ewrap.New("stats collector not found")

	// ErrAlgorithmNotFound is returned when an eviction algorithm is not found.
	ErrAlgorithmNotFound = ewrap.New("algorithm not found")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrUnknownFormat is returned when a report format is not supported.
	ErrUnknownFormat = ewrap.New("unknown report format")

	// ErrUnknownLanguage is returned when no label set exists for a language.
	ErrUnknownLanguage = ewrap.New("unknown report language")

	// ErrNilSink is returned when a report is persisted without a sink.
	ErrNilSink = ewrap.New("nil sink")

	// ErrTimeoutOrCanceled is returned when a timeout or cancellation occurs.
	ErrTimeoutOrCanceled = ewrap.New("the operation timed out or was canceled")

	// ErrMgmtHTTPShutdownTimeout is returned when the management HTTP server fails to shutdown before context deadline.
	ErrMgmtHTTPShutdownTimeout = ewrap.New("management http shutdown timeout")
)
