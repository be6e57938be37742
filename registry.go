package classdispatch

import (
	"reflect"
	"slices"
	"strings"
)

// Registry is a read-only, live view of a dispatcher's class -> handler
// mapping, including the default handler under the universal base.
type Registry[R any] struct {
	d *Dispatcher[R]
}

// Registry returns a view of the registered handlers. Registrations made
// after the call are visible through the view.
func (d *Dispatcher[R]) Registry() Registry[R] {
	return Registry[R]{d: d}
}

// Get returns the handler registered exactly under cls, without consulting
// ancestors.
func (r Registry[R]) Get(cls reflect.Type) (*Handler[R], bool) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	h, ok := r.d.registry[cls]
	return h, ok
}

func (r Registry[R]) Len() int {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	return len(r.d.registry)
}

// Classes returns the registered classes ordered by their string form.
func (r Registry[R]) Classes() []reflect.Type {
	r.d.mu.RLock()
	classes := make([]reflect.Type, 0, len(r.d.registry))
	for cls := range r.d.registry {
		classes = append(classes, cls)
	}
	r.d.mu.RUnlock()

	slices.SortFunc(classes, func(a, b reflect.Type) int {
		if c := strings.Compare(a.String(), b.String()); c != 0 {
			return c
		}
		return strings.Compare(a.PkgPath(), b.PkgPath())
	})

	return classes
}

// Range calls fn for each registered class in Classes order until fn
// returns false. It iterates over a snapshot, so fn may register handlers.
func (r Registry[R]) Range(fn func(cls reflect.Type, h *Handler[R]) bool) {
	for _, cls := range r.Classes() {
		h, ok := r.Get(cls)
		if !ok {
			continue
		}
		if !fn(cls, h) {
			return
		}
	}
}
