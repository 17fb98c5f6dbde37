package status

import (
	"fmt"
	"strings"

	"github.com/c2fo/boxsync"
)

// Status strings shared by several operations.
const (
	notLoggedIn           = "not_logged_in"
	notLoggedID           = "not_logged_id"
	applicationRestricted = "application_restricted"
	wrongNode             = "wrong_node"
)

// UnknownStatusError is returned when the service answers with a status an operation does not map.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: %q", boxsync.ErrUnknownStatus, e.Status)
}

// Is matches boxsync.ErrUnknownStatus.
func (e *UnknownStatusError) Is(target error) bool {
	return target == boxsync.ErrUnknownStatus
}

func lookup[T any](table map[string]T, raw string, unknown T) (T, error) {
	if v, ok := table[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return v, nil
	}
	return unknown, &UnknownStatusError{Status: raw}
}

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Status(%d)", i)
	}
	return names[i]
}
