package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts the API has been observed to return, tried in order after
// RFC3339. Parsed times are always normalized to UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// pickValue returns the first value present in data among the candidate
// keys, checked in priority order.
func pickValue(data map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// toDecimal coerces a wire value to a decimal amount. JSON numbers decode
// as float64; json.Number and numeric strings are accepted as well.
func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %q is not numeric", ErrBadValue, n)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %T is not numeric", ErrBadValue, v)
	}
}

// toIdentifier normalizes an opaque identifier to a string. The server has
// historically sent both numeric and string ids for the same field.
func toIdentifier(v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(id), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case json.Number:
		return id.String(), nil
	default:
		return "", fmt.Errorf("%w: %T is not an identifier", ErrBadValue, v)
	}
}

// toText coerces a scalar wire value to a string.
func toText(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %T is not a string", ErrBadValue, v)
	}
	return s, nil
}

// toTime accepts either a UNIX timestamp in seconds or a date/time string.
// The result is always in UTC.
func toTime(v any) (time.Time, error) {
	switch ts := v.(type) {
	case float64:
		return time.Unix(int64(ts), 0).UTC(), nil
	case int:
		return time.Unix(int64(ts), 0).UTC(), nil
	case int64:
		return time.Unix(ts, 0).UTC(), nil
	case json.Number:
		sec, err := ts.Int64()
		if err != nil {
			return parseDate(ts.String())
		}
		return time.Unix(sec, 0).UTC(), nil
	case string:
		if sec, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64); err == nil {
			return time.Unix(sec, 0).UTC(), nil
		}
		return parseDate(ts)
	default:
		return time.Time{}, fmt.Errorf("%w: %T is not a timestamp", ErrBadValue, v)
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrBadValue, s)
}
