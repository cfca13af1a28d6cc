package config

import "fmt"

// Error represents an error in configuration load or validation.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
