// Package report renders statistics reports for people and for machines.
//
// The text rendering is a header, the six statistics in the fixed order count, mean,
// median, mode, standard deviation and variance, a blank line and the elapsed time.
// An absent report renders as "no statistics available", never as zeros.
// The encoded renderings wrap the report in an Envelope and use the serializer registry.
//
// Where a rendering goes is decided by the caller: Render writes to any io.Writer and
// Persist writes to a Sink, so the console and the persisted copy are byte-identical.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperstats/internal/libs/serializer"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

// Format selects how a report is rendered.
type Format string

const (
	// FormatText is the labeled, line-oriented rendering.
	FormatText Format = "text"
	// FormatJSON encodes the Envelope as JSON.
	FormatJSON Format = "json"
	// FormatMsgpack encodes the Envelope as MessagePack.
	FormatMsgpack Format = "msgpack"
	// FormatCBOR encodes the Envelope as CBOR.
	FormatCBOR Format = "cbor"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatMsgpack, FormatCBOR:
		return f, nil
	default:
		return "", ewrap.Wrap(sentinel.ErrUnknownFormat, s)
	}
}

// Envelope is the encoded form of a report and its timing.
type Envelope struct {
	Available      bool          `json:"available"          msgpack:"available"`
	Report         *stats.Report `json:"report,omitempty"   msgpack:"report"`
	ElapsedSeconds float64       `json:"elapsed_seconds"    msgpack:"elapsed_seconds"`
}

// NewEnvelope wraps rep, which may be nil, with its elapsed time.
func NewEnvelope(rep *stats.Report, elapsed time.Duration) Envelope {
	return Envelope{
		Available:      rep != nil,
		Report:         rep,
		ElapsedSeconds: elapsed.Seconds(),
	}
}

// Sink opens the destination a persisted report is written to.
type Sink func() (io.WriteCloser, error)

// FileSink creates, or truncates, the file at path.
func FileSink(path string) Sink {
	return func() (io.WriteCloser, error) {
		file, err := os.Create(path)
		if err != nil {
			return nil, ewrap.Wrapf(err, "create %s", path)
		}

		return file, nil
	}
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLabels sets the label set of the text rendering.
func WithLabels(labels Labels) Option {
	return func(r *Reporter) {
		r.labels = labels
	}
}

// WithFormat sets the rendering format.
func WithFormat(format Format) Option {
	return func(r *Reporter) {
		r.format = format
	}
}

// WithSerializerRegistry replaces the registry used by the encoded formats.
func WithSerializerRegistry(registry *serializer.Registry) Option {
	return func(r *Reporter) {
		r.serializers = registry
	}
}

// Reporter renders reports.
type Reporter struct {
	labels      Labels
	format      Format
	serializers *serializer.Registry
}

// New returns a Reporter; by default it renders English text.
func New(opts ...Option) (*Reporter, error) {
	r := &Reporter{
		labels:      LabelsEnglish,
		format:      FormatText,
		serializers: serializer.NewSerializerRegistry(),
	}

	for _, opt := range opts {
		opt(r)
	}

	_, err := ParseFormat(string(r.format))
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Format returns the rendering format.
func (r *Reporter) Format() Format {
	return r.format
}

// Bytes renders rep, which may be nil, and elapsed.
func (r *Reporter) Bytes(rep *stats.Report, elapsed time.Duration) ([]byte, error) {
	switch r.format {
	case FormatJSON:
		return r.encode(serializer.JSON, rep, elapsed, true)
	case FormatMsgpack:
		return r.encode(serializer.Msgpack, rep, elapsed, false)
	case FormatCBOR:
		return r.encode(serializer.CBOR, rep, elapsed, false)
	default:
		return r.text(rep, elapsed), nil
	}
}

// Render writes the rendering of rep to w.
func (r *Reporter) Render(w io.Writer, rep *stats.Report, elapsed time.Duration) error {
	data, err := r.Bytes(rep, elapsed)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	if err != nil {
		return ewrap.Wrap(err, "write report")
	}

	return nil
}

// Persist writes the rendering of rep to the destination opened by sink.
func (r *Reporter) Persist(sink Sink, rep *stats.Report, elapsed time.Duration) error {
	data, err := r.Bytes(rep, elapsed)
	if err != nil {
		return err
	}

	return persist(sink, data)
}

// Deliver renders rep once, writes it to console and persists the same bytes to sink.
// A nil sink skips persistence.
func (r *Reporter) Deliver(console io.Writer, sink Sink, rep *stats.Report, elapsed time.Duration) error {
	data, err := r.Bytes(rep, elapsed)
	if err != nil {
		return err
	}

	_, err = console.Write(data)
	if err != nil {
		return ewrap.Wrap(err, "write report")
	}

	if sink == nil {
		return nil
	}

	return persist(sink, data)
}

// Diagnostic writes the one-line, localized explanation of a failed load of path.
func (r *Reporter) Diagnostic(w io.Writer, reason loader.Reason, path string) error {
	var line string

	switch reason {
	case loader.ReasonSourceNotFound:
		line = fmt.Sprintf(r.labels.SourceNotFound, path)
	case loader.ReasonNonNumericToken:
		line = r.labels.InvalidData
	default:
		line = r.labels.Unreadable
	}

	_, err := fmt.Fprintln(w, line)
	if err != nil {
		return ewrap.Wrap(err, "write diagnostic")
	}

	return nil
}

func persist(sink Sink, data []byte) (err error) {
	if sink == nil {
		return sentinel.ErrNilSink
	}

	w, err := sink()
	if err != nil {
		return err
	}

	defer func() {
		closeErr := w.Close()
		if err == nil && closeErr != nil {
			err = ewrap.Wrap(closeErr, "close sink")
		}
	}()

	_, err = w.Write(data)
	if err != nil {
		return ewrap.Wrap(err, "persist report")
	}

	return nil
}

func (r *Reporter) encode(name string, rep *stats.Report, elapsed time.Duration, newline bool) ([]byte, error) {
	s, err := r.serializers.New(name)
	if err != nil {
		return nil, err
	}

	envelope := NewEnvelope(rep, elapsed)

	data, err := s.Marshal(&envelope)
	if err != nil {
		return nil, err
	}

	if newline {
		data = append(data, '\n')
	}

	return data, nil
}

func (r *Reporter) text(rep *stats.Report, elapsed time.Duration) []byte {
	var buf bytes.Buffer

	buf.WriteString(r.labels.Header)
	buf.WriteByte('\n')

	if rep == nil {
		buf.WriteString(r.labels.NoStatistics)
		buf.WriteByte('\n')
	} else {
		fmt.Fprintf(&buf, "%s: %d\n", r.labels.Count, rep.Count)
		fmt.Fprintf(&buf, "%s: %s\n", r.labels.Mean, formatNumber(rep.Mean))
		fmt.Fprintf(&buf, "%s: %s\n", r.labels.Median, formatNumber(rep.Median))
		fmt.Fprintf(&buf, "%s: %s\n", r.labels.Mode, r.formatMode(rep.Mode))
		fmt.Fprintf(&buf, "%s: %s\n", r.labels.StdDev, formatNumber(rep.StdDev))
		fmt.Fprintf(&buf, "%s: %s\n", r.labels.Variance, formatNumber(rep.Variance))
	}

	fmt.Fprintf(&buf, "\n%s: %s %s\n", r.labels.Elapsed, formatNumber(elapsed.Seconds()), r.labels.Seconds)

	return buf.Bytes()
}

func (r *Reporter) formatMode(mode stats.Mode) string {
	if mode.HasValue() {
		return mode.String()
	}

	return r.labels.NoMode
}

func formatNumber(v float64) string {
	return stats.FormatNumber(v)
}
