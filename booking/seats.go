package booking

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The seat_numbers column has been written by several generations of code:
// canonical JSON arrays (`["L3","L4"]`), comma-joined labels (`L3, L4`),
// bracket-stripped leftovers and bare single values. EncodeSeats always
// produces the canonical form; DecodeSeats accepts all of them.

// EncodeSeats serializes an ordered seat selection to its canonical JSON
// array form. Blank entries are dropped; an empty result or a duplicate
// label is a ValidationError.
func EncodeSeats(seats []string) (string, error) {
	clean := make([]string, 0, len(seats))
	seen := make(map[string]struct{}, len(seats))
	for _, s := range seats {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			return "", &ValidationError{Message: fmt.Sprintf("kursi %s dipilih lebih dari satu kali", s)}
		}
		seen[s] = struct{}{}
		clean = append(clean, s)
	}
	if len(clean) == 0 {
		return "", &ValidationError{Message: "daftar kursi kosong"}
	}
	encoded, err := json.Marshal(clean)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// DecodeSeats parses a persisted seat_numbers value. It never fails: values
// that cannot be interpreted decode to an empty slice and callers treat that
// as "no seats".
func DecodeSeats(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return trimNonEmpty(arr)
	}

	// Mixed-type JSON arrays from very old writers (numbers next to strings).
	var anyArr []any
	if err := json.Unmarshal([]byte(raw), &anyArr); err == nil {
		out := make([]string, 0, len(anyArr))
		for _, v := range anyArr {
			if s := strings.TrimSpace(stringify(v)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	// Legacy comma-joined form, possibly with stray brackets and quotes.
	cleaned := strings.NewReplacer("[", "", "]", "", `"`, "").Replace(raw)
	return trimNonEmpty(strings.Split(cleaned, ","))
}

// UnionSeats decodes every value and merges the results into a deduplicated
// seat set, keeping first-seen order.
func UnionSeats(values []string) []string {
	seen := make(map[string]struct{})
	var union []string
	for _, v := range values {
		for _, seat := range DecodeSeats(v) {
			if _, ok := seen[seat]; ok {
				continue
			}
			seen[seat] = struct{}{}
			union = append(union, seat)
		}
	}
	return union
}

// JoinSeats renders a seat set the way listing endpoints return it ("L3, L4").
func JoinSeats(seats []string) string {
	return strings.Join(seats, ", ")
}

// NormalizeSeatInput converts the request-body seat_numbers field, which
// clients send as an array, a JSON-encoded array string or a single bare
// value, into a seat slice.
func NormalizeSeatInput(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return trimNonEmpty(val)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return DecodeSeats(val)
	default:
		if s := strings.TrimSpace(stringify(val)); s != "" {
			return []string{s}
		}
		return nil
	}
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
