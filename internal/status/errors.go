package status

import "fmt"

// DuplicateWidgetError reports a Create call for a name that is already
// registered.
type DuplicateWidgetError struct {
	Name string
}

func (e *DuplicateWidgetError) Error() string {
	return fmt.Sprintf("widget %q already registered", e.Name)
}

// UnknownWidgetError reports a strict lookup for a name that was never
// registered.
type UnknownWidgetError struct {
	Name string
}

func (e *UnknownWidgetError) Error() string {
	return fmt.Sprintf("unknown widget %q", e.Name)
}
