// Package numeric provides lenient JSON number types for the sheet payloads.
// Clients send hour and cost fields as numbers, numeric strings, empty
// strings or not at all; all of those coerce to a float/int with 0 as the
// default, before any business predicate looks at the value.
package numeric

import (
	"bytes"
	"strconv"
)

var nullLiteral = []byte("null")

// Float unmarshals from a JSON number, a numeric string, "" or null.
// Anything non-numeric becomes 0.
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	*f = 0
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*f = Float(v)
		}
		return nil
	}
	if v, err := strconv.ParseFloat(string(data), 64); err == nil {
		*f = Float(v)
	}
	return nil
}

func (f Float) Value() float64 { return float64(f) }

// Int behaves like Float for integral fields (ids, day numbers).
type Int int64

func (i *Int) UnmarshalJSON(data []byte) error {
	*i = 0
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return nil
		}
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			*i = Int(v)
		} else if v, err := strconv.ParseFloat(s, 64); err == nil {
			*i = Int(int64(v))
		}
		return nil
	}
	if v, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*i = Int(v)
	} else if v, err := strconv.ParseFloat(string(data), 64); err == nil {
		*i = Int(int64(v))
	}
	return nil
}

// OrDefault returns the value, substituting def when it is zero.
func (i Int) OrDefault(def int64) int64 {
	if i == 0 {
		return def
	}
	return int64(i)
}

func (i Int) Value() int64 { return int64(i) }
