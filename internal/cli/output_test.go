package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", nil)))
}

func TestExitError_Message(t *testing.T) {
	base := errors.New("boom")
	err := WrapExitError(ExitFailure, "spiral failed", base)
	assert.Equal(t, "spiral failed: boom", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "bare", (&ExitError{Message: "bare"}).Error())
}

func TestWriteText(t *testing.T) {
	cases := []struct {
		name string
		data any
		want string
	}{
		{"Grid", [][]int{{1, 2}, {4, 3}}, "1 2\n4 3\n"},
		{"EmptyGrid", [][]int{}, ""},
		{"Floats", []float64{-3, 0.5, 9}, "-3 0.5 9\n"},
		{"EmptyFloats", []float64{}, "\n"},
		{"String", "qetwry", "qetwry\n"},
		{"Int64", int64(12354), "12354\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := &OutputFormatter{Format: FormatText, Writer: &buf}
			require.NoError(t, f.Success(tc.data))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestTextError_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: FormatText, Writer: &buf}
	require.NoError(t, f.Error(ExitFailure, "nope"))
	assert.Zero(t, buf.Len())
}

func TestParseGrid(t *testing.T) {
	g, err := parseGrid([]string{"1, 2", " 3,4 ", ""})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {}}, g)

	_, err = parseGrid([]string{"1,,2"})
	require.Error(t, err)
}
