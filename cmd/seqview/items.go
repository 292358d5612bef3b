package main

import (
	"strconv"
	"strings"

	"github.com/ydb-platform/ydb-go-seqview"
)

func splitItems(s string) []string {
	if s == "" {
		return []string{}
	}

	return strings.Split(s, ",")
}

// nested turns "a+b" into a nested list, other items are kept as is.
func nested(item string) any {
	if !strings.Contains(item, "+") {
		return item
	}
	parts := strings.Split(item, "+")
	inner := make(seqview.Slice[any], 0, len(parts))
	for _, p := range parts {
		inner = append(inner, p)
	}

	return inner
}

// classify parses a token into the narrowest matching Go value.
func classify(token string) any {
	if i, err := strconv.Atoi(token); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(token); err == nil {
		return b
	}

	return token
}

func joinValues(values []any) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v := v.(type) {
		case seqview.Slice[any]:
			b.WriteByte('[')
			b.WriteString(joinValues(v))
			b.WriteByte(']')
		default:
			b.WriteString(toString(v))
		}
	}

	return b.String()
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return "?"
	}
}
