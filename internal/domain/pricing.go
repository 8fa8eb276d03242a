package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price is a nightly rate as supplied by the backend. The backend sends it either as a JSON number
// or as a decimal string; an unusable value is kept with Valid=false instead of failing the decode.
type Price struct {
	Value float64
	Raw   string
	Valid bool
}

// ParsePrice coerces a number or a numeric string into a Price
func ParsePrice(value any) Price {
	switch typed := value.(type) {
	case Price:
		return typed
	case float64:
		return newPrice(typed, strconv.FormatFloat(typed, 'f', -1, 64))
	case float32:
		return newPrice(float64(typed), strconv.FormatFloat(float64(typed), 'f', -1, 32))
	case int:
		return newPrice(float64(typed), strconv.Itoa(typed))
	case int64:
		return newPrice(float64(typed), strconv.FormatInt(typed, 10))
	case json.Number:
		return parsePriceString(typed.String())
	case string:
		return parsePriceString(typed)
	default:
		return Price{}
	}
}

func parsePriceString(raw string) Price {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Price{Raw: raw}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Price{Raw: raw}
	}
	return newPrice(v, trimmed)
}

func newPrice(v float64, raw string) Price {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Price{Raw: raw}
	}
	return Price{Value: v, Raw: raw, Valid: true}
}

// UnmarshalJSON accepts a JSON number, a numeric string or null
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*p = Price{Raw: string(data)}
			return nil
		}
		*p = parsePriceString(s)
		return nil
	}

	*p = parsePriceString(string(data))
	return nil
}

// MarshalJSON writes the numeric value, or null when the rate is unusable
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// CalculateTotal returns nights × rate
func CalculateTotal(nights int, rate Price) (float64, error) {
	if nights < 1 {
		return 0, ErrInvalidNights
	}
	if !rate.Valid {
		return 0, ErrInvalidPrice
	}
	return float64(nights) * rate.Value, nil
}
