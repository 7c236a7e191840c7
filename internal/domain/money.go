package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money mirrors the storefront's money message: an ISO 4217 currency code,
// whole units and nano units (10^-9) of the amount.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Units        int64  `json:"units"`
	Nanos        int64  `json:"nanos"`
}

// String formats the amount with two decimal places, prefixed by the
// currency code when one is set.
func (m Money) String() string {
	units, nanos := m.Units, m.Nanos
	sign := ""
	if units < 0 || nanos < 0 {
		sign = "-"
		units, nanos = abs(units), abs(nanos)
	}

	amount := fmt.Sprintf("%s%d.%02d", sign, units, nanos/10_000_000)
	if m.CurrencyCode == "" {
		return amount
	}
	return m.CurrencyCode + " " + amount
}

// MoneyFromPayload reads a Money out of an untyped order payload node.
// Units and nanos may be numbers or numeric strings; missing ones are zero.
func MoneyFromPayload(v any) (Money, error) {
	if v == nil {
		return Money{}, fmt.Errorf("money: value is missing")
	}

	fields, ok := v.(map[string]any)
	if !ok {
		return Money{}, fmt.Errorf("money: expected an object, got %T", v)
	}

	var m Money
	if code, ok := fields["currency_code"]; ok && code != nil {
		s, ok := code.(string)
		if !ok {
			return Money{}, fmt.Errorf("money: currency_code must be a string, got %T", code)
		}
		m.CurrencyCode = s
	}

	var err error
	if m.Units, err = integerField(fields, "units"); err != nil {
		return Money{}, err
	}
	if m.Nanos, err = integerField(fields, "nanos"); err != nil {
		return Money{}, err
	}
	if m.Units == math.MinInt64 {
		return Money{}, fmt.Errorf("money: units out of range: %d", m.Units)
	}
	if m.Nanos <= -1_000_000_000 || m.Nanos >= 1_000_000_000 {
		return Money{}, fmt.Errorf("money: nanos out of range: %d", m.Nanos)
	}
	// units and nanos must agree in sign.
	if (m.Units > 0 && m.Nanos < 0) || (m.Units < 0 && m.Nanos > 0) {
		return Money{}, fmt.Errorf("money: units %d and nanos %d have different signs", m.Units, m.Nanos)
	}
	return m, nil
}

func integerField(fields map[string]any, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return 0, nil
	}

	switch n := raw.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("money: %s must be an integer, got %v", name, n)
		}
		if n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, fmt.Errorf("money: %s out of range: %v", name, n)
		}
		return int64(n), nil
	case json.Number:
		v, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("money: %s must be an integer: %w", name, err)
		}
		return v, nil
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("money: %s must be an integer: %w", name, err)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("money: %s must be an integer, got %T", name, raw)
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
