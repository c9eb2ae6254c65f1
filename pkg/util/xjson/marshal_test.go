package xjson

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSpan struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count uint64 `json:"count"`
}

func TestPrettyE(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		contains string
		exact    string
		wantErr  bool
	}{
		{name: "struct", input: testSpan{From: "a", To: "b", Count: 2}, contains: `"count": 2`},
		{name: "nil", input: nil, exact: "null"},
		{name: "slice", input: []string{"x", "y"}, exact: "[\n  \"x\",\n  \"y\"\n]"},
		{name: "empty_struct", input: struct{}{}, exact: "{}"},
		{name: "error_NaN", input: math.NaN(), wantErr: true},
		{name: "error_channel", input: make(chan int), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyE(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, got)
				assert.ErrorIs(t, err, ErrMarshal)
				return
			}
			require.NoError(t, err)
			if tt.exact != "" {
				assert.Equal(t, tt.exact, got)
			} else {
				assert.Contains(t, got, tt.contains)
			}
		})
	}
}

func TestPretty(t *testing.T) {
	assert.Equal(t, `"00:00:00:00:00:00"`, Pretty("00:00:00:00:00:00"))
	assert.Contains(t, Pretty(make(chan int)), "<marshal error:")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testSpan{From: "<a>", To: "b", Count: 1}, false))
	assert.Equal(t, `{"from":"<a>","to":"b","count":1}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, []int{1}, true))
	assert.Equal(t, "[\n  1\n]\n", buf.String())

	err := Write(io.Discard, math.Inf(1), false)
	assert.ErrorIs(t, err, ErrMarshal)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_WriterError(t *testing.T) {
	err := Write(failWriter{}, "x", false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMarshal)
	assert.Contains(t, err.Error(), "disk full")
}
