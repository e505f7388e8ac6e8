package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/hyperstats/internal/sentinel"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValues []float64
		wantReason Reason
	}{
		{name: "one per line", input: "1\n2.5\n-3\n", wantValues: []float64{1, 2.5, -3}},
		{name: "no trailing newline", input: "4\n5", wantValues: []float64{4, 5}},
		{name: "surrounding whitespace", input: "  7 \n\t8\r\n", wantValues: []float64{7, 8}},
		{name: "scientific notation", input: "1e3\n-2.5E-1\n", wantValues: []float64{1000, -0.25}},
		{name: "empty source", input: "", wantValues: []float64{}},
		{name: "word", input: "1\nabc\n3\n", wantReason: ReasonNonNumericToken},
		{name: "blank line", input: "1\n\n3\n", wantReason: ReasonNonNumericToken},
		{name: "nan", input: "NaN\n", wantReason: ReasonNonNumericToken},
		{name: "infinity", input: "1\n+Inf\n", wantReason: ReasonNonNumericToken},
		{name: "overflow", input: "1e400\n", wantReason: ReasonNonNumericToken},
		{name: "two numbers on a line", input: "1 2\n", wantReason: ReasonNonNumericToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(strings.NewReader(tt.input))

			assert.Equal(t, tt.wantReason, res.Reason())

			if tt.wantReason != ReasonNone {
				assert.False(t, res.OK())
				assert.True(t, errors.Is(res.Err, sentinel.ErrNonNumericToken))
				assert.True(t, res.Set.IsEmpty())

				return
			}

			assert.True(t, res.OK())
			assert.Nil(t, res.Err)
			assert.Equal(t, len(tt.wantValues), res.Set.Len())

			for i, want := range tt.wantValues {
				assert.Equal(t, want, res.Set.At(i))
			}
		})
	}
}

func TestParse_ReportsLineNumber(t *testing.T) {
	res := Parse(strings.NewReader("1\n2\nthree\n"))

	assert.False(t, res.OK())
	assert.True(t, strings.Contains(res.Err.Error(), "line 3"))
	assert.True(t, strings.Contains(res.Err.Error(), "three"))
}

func TestParseContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ParseContext(ctx, strings.NewReader("1\n2\n"))

	assert.False(t, res.OK())
	assert.Equal(t, ReasonUnreadable, res.Reason())
	assert.True(t, errors.Is(res.Err, sentinel.ErrTimeoutOrCanceled))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "data.txt")
	err := os.WriteFile(path, []byte("1.0\n2.0\n2.0\n3.0\n4.0\n"), 0o600)
	assert.Nil(t, err)

	res := Load(context.Background(), path)
	assert.True(t, res.OK())
	assert.Equal(t, []float64{1, 2, 2, 3, 4}, res.Set.Values())
}

func TestLoad_NotFound(t *testing.T) {
	res := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	assert.False(t, res.OK())
	assert.Equal(t, ReasonSourceNotFound, res.Reason())
	assert.True(t, errors.Is(res.Err, sentinel.ErrSourceNotFound))
}

func TestLoad_EmptyPath(t *testing.T) {
	res := Load(context.Background(), "")

	assert.False(t, res.OK())
	assert.Equal(t, ReasonSourceNotFound, res.Reason())
}

func TestLoad_Directory(t *testing.T) {
	res := Load(context.Background(), t.TempDir())

	assert.False(t, res.OK())
	assert.Equal(t, ReasonUnreadable, res.Reason())
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "none", ReasonNone.String())
	assert.Equal(t, "source-not-found", ReasonSourceNotFound.String())
	assert.Equal(t, "non-numeric-token", ReasonNonNumericToken.String())
	assert.Equal(t, "unreadable", ReasonUnreadable.String())
}
