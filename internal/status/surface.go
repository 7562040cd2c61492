package status

import "time"

// WidgetState is an immutable snapshot of a widget, delivered to its
// surface on every observable change.
type WidgetState struct {
	Name      string
	UpdateID  string
	Text      string
	Severity  Severity
	Clickable bool
	Sticky    bool
	UpdatedAt time.Time
}

// Empty reports whether the widget currently shows nothing.
func (s WidgetState) Empty() bool {
	return s.Text == ""
}

// Surface renders widget state somewhere visible.
type Surface interface {
	Apply(state WidgetState)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(WidgetState)

func (f SurfaceFunc) Apply(state WidgetState) {
	f(state)
}

// Factory creates the display surface for a newly registered widget.
type Factory func(name string) Surface

// Discard returns a surface that ignores every update.
func Discard() Surface {
	return SurfaceFunc(func(WidgetState) {})
}

// Fanout duplicates every update to all given surfaces, skipping nil
// entries.
func Fanout(surfaces ...Surface) Surface {
	return SurfaceFunc(func(state WidgetState) {
		for _, s := range surfaces {
			if s != nil {
				s.Apply(state)
			}
		}
	})
}
