package record

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes a line that could not be decoded.
type ParseError struct {
	Line  string
	Field int // -1 when the line as a whole is malformed
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("record: %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("record: %q: field %d: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes a single line in either format. The trailing newline and the
// legacy trailing comma are optional.
func Parse(line string) (Record, error) {
	var r Record

	s := strings.TrimRight(line, "\r\n")
	s = strings.TrimSuffix(s, ",")

	fields := strings.Split(s, ",")
	if len(fields) != FieldCount {
		return r, &ParseError{
			Line:  line,
			Field: -1,
			Err:   fmt.Errorf("have %d fields, want %d", len(fields), FieldCount),
		}
	}

	for i, field := range fields {
		v, err := strconv.ParseUint(field, 16, 8)
		if err != nil {
			return r, &ParseError{Line: line, Field: i, Err: err}
		}
		r[i] = uint8(v)
	}
	if r[0] > 0x3 {
		return r, &ParseError{
			Line:  line,
			Field: 0,
			Err:   fmt.Errorf("address high bits out of range: %#x", r[0]),
		}
	}
	return r, nil
}
