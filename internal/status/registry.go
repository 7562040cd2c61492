package status

import "sync"

// Registry owns the named widgets of one notification area. Widgets are
// created lazily and live for the lifetime of the registry.
type Registry struct {
	mu      sync.RWMutex
	factory Factory
	widgets map[string]*Widget
	order   []string
}

// NewRegistry returns an empty registry. factory builds the display
// surface for each new widget; a nil factory yields discarding surfaces.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory: factory,
		widgets: make(map[string]*Widget),
	}
}

// Widget returns the widget registered under name, creating it on first
// use. Repeated calls with the same name return the same instance.
func (r *Registry) Widget(name string) *Widget {
	r.mu.RLock()
	w, ok := r.widgets[name]
	r.mu.RUnlock()
	if ok {
		return w
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.widgets[name]; ok {
		return w
	}
	return r.addLocked(name)
}

// Create registers a new widget under name. Registering a name twice
// returns a DuplicateWidgetError.
func (r *Registry) Create(name string) (*Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.widgets[name]; ok {
		return nil, &DuplicateWidgetError{Name: name}
	}
	return r.addLocked(name), nil
}

// Get looks up an existing widget without creating one. Unknown names
// return an UnknownWidgetError.
func (r *Registry) Get(name string) (*Widget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.widgets[name]
	if !ok {
		return nil, &UnknownWidgetError{Name: name}
	}
	return w, nil
}

// Names returns the registered widget names in creation order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) addLocked(name string) *Widget {
	var surface Surface
	if r.factory != nil {
		surface = r.factory(name)
	}
	w := newWidget(name, surface)
	r.widgets[name] = w
	r.order = append(r.order, name)
	return w
}
