package ir

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces a deterministic JSON encoding of v, suitable
// for hashing and for golden-file snapshots: object keys are sorted,
// strings are NFC-normalised before encoding, and floating point values
// use a single unambiguous textual form (including "NaN" and "Infinity",
// which spec.md §4.4 treats as in-band results, not errors).
//
// Supported value types: nil, bool, string, int, int64, float64,
// []any, map[string]any. Any other type is an error.
func MarshalCanonical(v any) ([]byte, error) {
	var buf []byte
	buf, err := appendCanonical(buf, v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func appendCanonical(buf []byte, v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return append(buf, "null"...), nil
	case bool:
		if val {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case string:
		return appendCanonicalString(buf, val), nil
	case int:
		return strconv.AppendInt(buf, int64(val), 10), nil
	case int64:
		return strconv.AppendInt(buf, val, 10), nil
	case float64:
		return appendCanonicalFloat(buf, val), nil
	case []any:
		return appendCanonicalArray(buf, val)
	case map[string]any:
		return appendCanonicalObject(buf, val)
	default:
		return nil, fmt.Errorf("ir: unsupported type for canonical JSON: %T", v)
	}
}

func appendCanonicalString(buf []byte, s string) []byte {
	normalised := norm.NFC.String(s)
	buf = append(buf, '"')
	for _, r := range normalised {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if r < 0x20 {
				buf = append(buf, []byte(fmt.Sprintf("\\u%04x", r))...)
			} else {
				buf = append(buf, []byte(string(r))...)
			}
		}
	}
	return append(buf, '"')
}

// appendCanonicalFloat renders NaN and +/-Inf as bare identifiers
// rather than JSON numbers, matching how this module's own JSON output
// mode reports "unknown" and "infinite/certain" quantities (spec.md
// §4.4). Callers that need strict RFC-8259 JSON should not feed this
// output to a standards-strict decoder.
func appendCanonicalFloat(buf []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(buf, "NaN"...)
	case math.IsInf(f, 1):
		return append(buf, "Infinity"...)
	case math.IsInf(f, -1):
		return append(buf, "-Infinity"...)
	default:
		return strconv.AppendFloat(buf, f, 'g', -1, 64)
	}
}

func appendCanonicalArray(buf []byte, arr []any) ([]byte, error) {
	buf = append(buf, '[')
	for i, elem := range arr {
		if i > 0 {
			buf = append(buf, ',')
		}
		var err error
		buf, err = appendCanonical(buf, elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
	}
	return append(buf, ']'), nil
}

func appendCanonicalObject(buf []byte, obj map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf = append(buf, '{')
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendCanonicalString(buf, k)
		buf = append(buf, ':')
		var err error
		buf, err = appendCanonical(buf, obj[k])
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", k, err)
		}
	}
	return append(buf, '}'), nil
}
