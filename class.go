package classdispatch

import (
	"reflect"
	"strings"

	"github.com/ygrebnov/classdispatch/internal/mro"
)

// Class is the "class of T" marker. A handler whose first parameter is
// Class[T] (or *Class[T]) declares that it accepts T or any class embedding
// T, and can be registered without naming T again. At call time the marker
// carries the class the dispatcher was invoked with.
//
// Class[any] is the bare form and resolves to the universal base.
type Class[T any] struct {
	t reflect.Type
}

// Bound returns T, the class declared by the annotation.
func (c Class[T]) Bound() reflect.Type {
	return ClassOf[T]()
}

// Type returns the class the handler was invoked with, or T for a zero Class.
func (c Class[T]) Type() reflect.Type {
	if c.t == nil {
		return c.Bound()
	}
	return c.t
}

func (c Class[T]) String() string {
	return c.Type().String()
}

func (Class[T]) bind(t reflect.Type) any {
	return Class[T]{t: t}
}

type classRef interface {
	Bound() reflect.Type
	bind(t reflect.Type) any
}

var (
	classPkgPath  = reflect.TypeOf(Class[any]{}).PkgPath()
	classRefType  = reflect.TypeOf((*classRef)(nil)).Elem()
	typeParamType = reflect.TypeOf((*reflect.Type)(nil)).Elem()
)

// classParam reports whether p is Class[T] or *Class[T] and returns a zero
// marker to read T from.
func classParam(p reflect.Type) (classRef, bool) {
	elem := p
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct ||
		elem.PkgPath() != classPkgPath ||
		!strings.HasPrefix(elem.Name(), "Class[") ||
		!elem.Implements(classRefType) {
		return nil, false
	}

	ref, ok := reflect.Zero(elem).Interface().(classRef)
	return ref, ok
}

// ClassOf returns the class of T. It captures the static type of T even
// when T is an interface.
func ClassOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Universal returns the universal base class (interface{}). The default
// handler of every dispatcher is registered under it.
func Universal() reflect.Type {
	return mro.Universal()
}

// IsClass reports whether t can be used as a dispatch key: the universal
// base or a defined (named) type. Unnamed types such as func(), *T or []T
// are not classes.
func IsClass(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return t == Universal() || t.Name() != ""
}

// Ancestors returns the resolution order of cls, most specific first and
// ending with the universal base. The returned slice must not be modified.
func Ancestors(cls reflect.Type) []reflect.Type {
	return mro.Of(cls)
}
