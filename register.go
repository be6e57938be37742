package classdispatch

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/classdispatch/errors"
)

// Request is a parsed registration call. It is one of ExplicitClass,
// ExplicitClassAndHandler or DeriveFromHandler.
type Request interface {
	request()
}

// ExplicitClass names a class; the handler is supplied later via Pending.
type ExplicitClass struct {
	Class reflect.Type
}

// ExplicitClassAndHandler registers Func under Class. Func needs no annotation.
type ExplicitClassAndHandler struct {
	Class reflect.Type
	Func  any
}

// DeriveFromHandler registers Func under the class named by its annotation.
type DeriveFromHandler struct {
	Func any
}

func (ExplicitClass) request()           {}
func (ExplicitClassAndHandler) request() {}
func (DeriveFromHandler) request()       {}

// ParseRequest classifies the arguments of a registration call:
//
//	ParseRequest(cls)         -> ExplicitClass
//	ParseRequest(cls, nil)    -> ExplicitClass
//	ParseRequest(cls, fn)     -> ExplicitClassAndHandler
//	ParseRequest(fn)          -> DeriveFromHandler
//
// A nil handler is treated as no handler, so Register(cls, nil) is the curried
// form. Any target other than a class given together with a handler yields
// errors.ErrAmbiguousRegistration. A target that is neither a class nor a
// handler, or more than one handler, yields errors.ErrInvalidRegistrationKey.
func ParseRequest(target any, fn ...any) (Request, error) {
	if len(fn) > 1 {
		return nil, errorc.With(
			errors.ErrInvalidRegistrationKey,
			errorc.Int(errors.ErrorFieldArgCount, len(fn)),
			errorc.String(errors.ErrorFieldReason, "at most one handler may be given"),
		)
	}
	if len(fn) == 1 && isNil(fn[0]) {
		fn = nil
	}

	cls, isType := target.(reflect.Type)
	if isType && IsClass(cls) {
		if len(fn) == 0 {
			return ExplicitClass{Class: cls}, nil
		}
		return ExplicitClassAndHandler{Class: cls, Func: fn[0]}, nil
	}

	if len(fn) == 1 {
		return nil, errorc.With(
			errors.ErrAmbiguousRegistration,
			errorc.String(errors.ErrorFieldTargetType, typeName(target)),
			errorc.String(errors.ErrorFieldHandlerFunc, funcName(fn[0])),
		)
	}

	if isType {
		return nil, invalidClass(cls)
	}

	if v := reflect.ValueOf(target); v.IsValid() && v.Kind() == reflect.Func && !v.IsNil() {
		return DeriveFromHandler{Func: target}, nil
	}

	return nil, errorc.With(
		errors.ErrInvalidRegistrationKey,
		errorc.String(errors.ErrorFieldTargetType, typeName(target)),
	)
}

// isNil reports whether v is nil or a nil func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && rv.IsNil()
}

// Registration is the result of Register: a *Handler when registration
// completed, or a *Pending when only a class was given.
type Registration[R any] interface {
	Class() reflect.Type
	registration()
}

// Pending is a registration waiting for its handler.
type Pending[R any] struct {
	d     *Dispatcher[R]
	class reflect.Type
}

// Class returns the class the handler will be registered under.
func (p *Pending[R]) Class() reflect.Type {
	return p.class
}

// Register completes the registration of fn under the pending class.
func (p *Pending[R]) Register(fn any) (*Handler[R], error) {
	return p.d.RegisterClass(p.class, fn)
}

func (*Pending[R]) registration() {}

// Register accepts the three registration shapes described in ParseRequest.
// An existing handler for the same class is replaced.
func (d *Dispatcher[R]) Register(target any, fn ...any) (Registration[R], error) {
	req, err := ParseRequest(target, fn...)
	if err != nil {
		return nil, err
	}
	return d.Apply(req)
}

// Apply performs a parsed registration request.
func (d *Dispatcher[R]) Apply(req Request) (Registration[R], error) {
	var (
		h   *Handler[R]
		err error
	)

	switch r := req.(type) {
	case ExplicitClass:
		if !IsClass(r.Class) {
			return nil, invalidClass(r.Class)
		}
		return d.For(r.Class), nil
	case ExplicitClassAndHandler:
		h, err = d.RegisterClass(r.Class, r.Func)
	case DeriveFromHandler:
		h, err = d.RegisterFunc(r.Func)
	default:
		return nil, errorc.With(
			errors.ErrInvalidRegistrationKey,
			errorc.String(errors.ErrorFieldTargetType, typeName(req)),
		)
	}

	if err != nil {
		return nil, err
	}
	return h, nil
}

// For returns a pending registration for cls.
func (d *Dispatcher[R]) For(cls reflect.Type) *Pending[R] {
	return &Pending[R]{d: d, class: cls}
}

// RegisterClass registers fn under cls. fn's first parameter may be
// reflect.Type, Class[T] or *Class[T]; its annotation is not consulted.
func (d *Dispatcher[R]) RegisterClass(cls reflect.Type, fn any) (*Handler[R], error) {
	if !IsClass(cls) {
		return nil, invalidClass(cls)
	}

	h, err := newHandler[R](cls, fn)
	if err != nil {
		return nil, err
	}
	d.add(h)

	return h, nil
}

// RegisterFunc registers fn under the class resolved from its annotation.
func (d *Dispatcher[R]) RegisterFunc(fn any) (*Handler[R], error) {
	cls, err := Resolve(fn)
	if err != nil {
		return nil, err
	}
	return d.RegisterClass(cls, fn)
}

func invalidClass(cls reflect.Type) error {
	if cls == nil {
		return errorc.With(
			errors.ErrInvalidRegistrationKey,
			errorc.String(errors.ErrorFieldTargetType, "<nil>"),
		)
	}
	return errorc.With(
		errors.ErrInvalidRegistrationKey,
		errorc.String(errors.ErrorFieldClassName, cls.String()),
		errorc.String(errors.ErrorFieldClassKind, cls.Kind().String()),
	)
}
