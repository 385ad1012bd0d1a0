package text

import (
	"fmt"
	"strconv"
	"strings"
)

// InfoLevel selects how much detail a message exposes.
type InfoLevel int

const (
	// EndUser messages are safe to show to anyone.
	EndUser InfoLevel = iota
	// Technical messages add detail meant for developers.
	Technical
	// Internal messages may expose internals and are meant for logs only.
	Internal
)

// String returns the lowercase level name.
func (l InfoLevel) String() string {
	switch l {
	case EndUser:
		return "enduser"
	case Technical:
		return "technical"
	case Internal:
		return "internal"
	}
	return "InfoLevel(" + strconv.Itoa(int(l)) + ")"
}

// ParseInfoLevel parses a level name or its numeric value.
func ParseInfoLevel(s string) (InfoLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enduser", "end_user", "user", "0":
		return EndUser, nil
	case "technical", "tech", "1":
		return Technical, nil
	case "internal", "2":
		return Internal, nil
	}
	return EndUser, fmt.Errorf("unknown info level %q", s)
}

func clampLevel(l InfoLevel) InfoLevel {
	switch {
	case l < EndUser:
		return EndUser
	case l > Internal:
		return Internal
	}
	return l
}
