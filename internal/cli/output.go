package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The algorithm rejected its input (negative size, non-square grid, …)
	ExitCommandError = 2 // Arguments could not be parsed
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for errors that are not ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response is the envelope written in json and yaml formats.
type Response struct {
	Status string         `json:"status" yaml:"status"`
	Data   any            `json:"data,omitempty" yaml:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty" yaml:"error,omitempty"`
}

// ResponseError describes a failed command in structured output.
type ResponseError struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// OutputFormatter renders command results in the configured format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Success writes a result. Text output is line-oriented: grids print one
// space-separated row per line, sequences print on a single line.
func (f *OutputFormatter) Success(data any) error {
	switch f.Format {
	case FormatJSON:
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	case FormatYAML:
		return f.encodeYAML(Response{Status: "ok", Data: data})
	default:
		return writeText(f.Writer, data)
	}
}

// Error writes a structured error envelope. In text mode it writes nothing;
// the error is logged by the caller instead.
func (f *OutputFormatter) Error(code int, message string) error {
	resp := Response{Status: "error", Error: &ResponseError{Code: code, Message: message}}
	switch f.Format {
	case FormatJSON:
		return json.NewEncoder(f.Writer).Encode(resp)
	case FormatYAML:
		return f.encodeYAML(resp)
	default:
		return nil
	}
}

func (f *OutputFormatter) encodeYAML(v any) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, data any) error {
	var b strings.Builder
	switch v := data.(type) {
	case [][]int:
		for _, row := range v {
			b.WriteString(joinInts(row))
			b.WriteByte('\n')
		}
	case []float64:
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	default:
		fmt.Fprintln(&b, v)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func joinInts(row []int) string {
	parts := make([]string, len(row))
	for i, x := range row {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
