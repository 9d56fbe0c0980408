// Package harness runs the fixed credential and utility scenarios and reports
// each failing check on a writer.
package harness

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Recorder counts failing checks and prints one line for each of them.
// Passing checks print nothing.
type Recorder struct {
	out      io.Writer
	failures int
}

func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Failures returns the number of failed checks so far.
func (r *Recorder) Failures() int {
	return r.failures
}

// Equal records a failure when actual and expected differ.
func (r *Recorder) Equal(name string, actual, expected any) {
	if reflect.DeepEqual(actual, expected) {
		return
	}
	r.failures++
	fmt.Fprintf(r.out, "FAIL [%s]: expected %s, got %s\n", name, Repr(expected), Repr(actual))
}

// True records a failure when condition is false. details is optional.
func (r *Recorder) True(name string, condition bool, details ...string) {
	if condition {
		return
	}
	r.failures++
	msg := strings.Join(details, " ")
	if msg == "" {
		fmt.Fprintf(r.out, "FAIL [%s]\n", name)
		return
	}
	fmt.Fprintf(r.out, "FAIL [%s]: %s\n", name, msg)
}

// Repr renders v the way failure lines show values: strings single-quoted,
// sequences as [a, b], nil as None and booleans as True/False.
func Repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return "'" + strings.ReplaceAll(x, "'", `\'`) + "'"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		s := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Repr(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(v)
}
