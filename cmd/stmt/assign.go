package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golobby/stmt"
	"github.com/google/uuid"
)

// parseAssignment reads "column=value" or "column:type=value". Without a
// type the value is text. Types: text, int, bool, time (RFC 3339), uuid,
// raw and null.
func parseAssignment(s string) (string, stmt.Value, error) {
	key, raw, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid assignment %q: expected column=value", s)
	}
	column, typ, _ := strings.Cut(key, ":")
	v, err := parseValue(typ, raw)
	if err != nil {
		return "", nil, fmt.Errorf("invalid assignment %q: %w", s, err)
	}
	return column, v, nil
}

func parseValue(typ, raw string) (stmt.Value, error) {
	switch strings.ToLower(typ) {
	case "", "text":
		return stmt.Text(raw), nil
	case "int":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return stmt.Int(n), nil
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return stmt.Bool(b), nil
	case "time":
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		return stmt.Time(t), nil
	case "uuid":
		u, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		return stmt.UUID(u), nil
	case "raw":
		return stmt.Raw(raw), nil
	case "null":
		return stmt.Null, nil
	default:
		return nil, fmt.Errorf("unknown value type %q", typ)
	}
}
