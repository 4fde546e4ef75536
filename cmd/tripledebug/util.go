package main

import (
	"fmt"
	"strconv"

	"github.com/arx-os/tripcore/internal/triple"
)

// parseSPO parses three positional arguments as subject/predicate/object
// term IDs.
func parseSPO(args []string) (s, p, o uint32, err error) {
	s, err = parseTermID(args[0], "subject")
	if err != nil {
		return 0, 0, 0, err
	}
	p, err = parseTermID(args[1], "predicate")
	if err != nil {
		return 0, 0, 0, err
	}
	o, err = parseTermID(args[2], "object")
	if err != nil {
		return 0, 0, 0, err
	}
	return s, p, o, nil
}

// parseTermOrWildcard parses a pattern field: "*" means triple.Wildcard,
// anything else must be a uint32 term ID.
func parseTermOrWildcard(s string) (uint32, error) {
	if s == "*" {
		return triple.Wildcard, nil
	}
	return parseTermID(s, "term")
}

func parseTermID(s, field string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	if uint32(v) == triple.Wildcard {
		return 0, fmt.Errorf("invalid %s %q: equals the wildcard sentinel", field, s)
	}
	return uint32(v), nil
}
