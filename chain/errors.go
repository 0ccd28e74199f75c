package chain

import "fmt"

// UnknownNameError is returned when a string resolves to no registered chain
// name, alias, or numeric chain ID. It carries the offending input so
// callers can decide on a fallback.
type UnknownNameError struct {
	Input string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown chain name %q", e.Input)
}
