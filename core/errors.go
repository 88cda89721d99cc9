package core

import "fmt"

// MalformedRecordError reports a source row that lacks a required field or
// carries an unparseable title token. Row is zero-based in document order.
type MalformedRecordError struct {
	Row    int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at row %d: %s", e.Row, e.Reason)
}

// InvalidCodepointError reports a code point that is not hexadecimal or is
// not a Unicode scalar value.
type InvalidCodepointError struct {
	Entity    string
	Codepoint string
	Err       error
}

func (e *InvalidCodepointError) Error() string {
	msg := fmt.Sprintf("invalid codepoint %q for entity %s", e.Codepoint, e.Entity)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidCodepointError) Unwrap() error {
	return e.Err
}

// IOError reports a source that cannot be read or an artifact that cannot
// be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
