package mro

import (
	"reflect"
	"sync"
)

// Cache holds a thread-safe cache of computed resolution orders.
// Go types never change at runtime, so entries are never invalidated.
type Cache struct {
	c cache // map[reflect.Type][]reflect.Type
}

type cache interface {
	Load(key any) (value any, ok bool)
	Store(key any, value any)
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		c: &sync.Map{},
	}
}

// Get returns the order stored for t, if any.
func (c *Cache) Get(t reflect.Type) ([]reflect.Type, bool) {
	if v, ok := c.c.Load(t); ok {
		return v.([]reflect.Type), true
	}

	return nil, false
}

// Put stores the resolution order of t.
func (c *Cache) Put(t reflect.Type, order []reflect.Type) {
	c.c.Store(t, order)
}
