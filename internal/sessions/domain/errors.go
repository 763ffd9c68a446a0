package domain

import "fmt"

// EditSessionNotFoundError indicates no session exists for a file path.
type EditSessionNotFoundError struct {
	Path string
}

func (e *EditSessionNotFoundError) Error() string {
	return fmt.Sprintf("no edit session for %s", e.Path)
}
