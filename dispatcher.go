package classdispatch

import (
	"reflect"
	"sync"
)

// Dispatcher routes a class to the handler registered for its most specific
// ancestor. It is safe for concurrent use; handlers run outside its lock.
type Dispatcher[R any] struct {
	mu       sync.RWMutex
	name     string
	logger   Logger
	def      *Handler[R]
	registry map[reflect.Type]*Handler[R]
	cache    *sync.Map // map[reflect.Type]*Handler[R], replaced on every registration
}

// Dispatch returns the handler for cls: the first class in Ancestors(cls)
// with a registered handler. A nil cls dispatches to the universal base.
// Repeated calls return the same *Handler until the next registration.
func (d *Dispatcher[R]) Dispatch(cls reflect.Type) *Handler[R] {
	if cls == nil {
		cls = Universal()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if h, ok := d.cache.Load(cls); ok {
		return h.(*Handler[R])
	}

	h := d.find(cls)
	d.cache.Store(cls, h)

	return h
}

func (d *Dispatcher[R]) find(cls reflect.Type) *Handler[R] {
	for _, t := range Ancestors(cls) {
		if h, ok := d.registry[t]; ok {
			return h
		}
	}
	return d.def // unreachable while the universal base is registered
}

// Call dispatches on cls and invokes the selected handler with cls followed
// by args. A nil cls is treated as Universal(). Errors returned by the handler
// are passed through unchanged.
func (d *Dispatcher[R]) Call(cls reflect.Type, args ...any) (R, error) {
	if cls == nil {
		cls = Universal()
	}
	return d.Dispatch(cls).Call(cls, args...)
}

// Default returns the handler the dispatcher was built with.
func (d *Dispatcher[R]) Default() *Handler[R] {
	return d.def
}

// ClearCache drops all resolved lookups.
func (d *Dispatcher[R]) ClearCache() {
	d.mu.Lock()
	d.cache = &sync.Map{}
	d.mu.Unlock()

	d.logger.Debug("dispatch cache cleared", "dispatcher", d.name)
}

func (d *Dispatcher[R]) add(h *Handler[R]) {
	d.mu.Lock()
	_, overwrite := d.registry[h.class]
	d.registry[h.class] = h
	d.cache = &sync.Map{}
	d.mu.Unlock()

	d.logger.Debug(
		"handler registered",
		"dispatcher", d.name,
		"class", h.class.String(),
		"handler", h.Name(),
		"overwrite", overwrite,
	)
}
