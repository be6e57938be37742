package classdispatch

import (
	"reflect"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/classdispatch/errors"
)

// Func is the plain handler signature. It receives the class directly and
// carries no annotation, so it can only be registered under an explicit class.
type Func[R any] func(cls reflect.Type, args ...any) (R, error)

// Handler is a function registered in a Dispatcher, bound to its class.
// A *Handler keeps its identity for as long as it stays registered.
type Handler[R any] struct {
	class reflect.Type
	fn    any
	name  string
	call  func(cls reflect.Type, args []any) (R, error)
}

// Class returns the class the handler is registered under.
func (h *Handler[R]) Class() reflect.Type {
	return h.class
}

// Func returns the registered function, unchanged.
func (h *Handler[R]) Func() any {
	return h.fn
}

// Name returns the qualified name of the registered function.
func (h *Handler[R]) Name() string {
	return h.name
}

// Call invokes the handler with cls as the first argument.
func (h *Handler[R]) Call(cls reflect.Type, args ...any) (R, error) {
	return h.call(cls, args)
}

func (*Handler[R]) registration() {}

func newHandler[R any](class reflect.Type, fn any) (*Handler[R], error) {
	call, err := compile[R](fn)
	if err != nil {
		return nil, err
	}

	return &Handler[R]{
		class: class,
		fn:    fn,
		name:  funcName(fn),
		call:  call,
	}, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// compile turns fn into a uniform call path. Accepted shapes:
//
//	func(reflect.Type, ...) R | (R, error)
//	func(Class[T], ...) R | (R, error)
//	func(*Class[T], ...) R | (R, error)
//
// Reflection on the signature happens once here; each call only checks and
// converts the extra arguments.
func compile[R any](fn any) (func(reflect.Type, []any) (R, error), error) {
	switch f := fn.(type) {
	case Func[R]:
		if f != nil {
			return func(cls reflect.Type, args []any) (R, error) { return f(cls, args...) }, nil
		}
	case func(reflect.Type, ...any) (R, error):
		if f != nil {
			return func(cls reflect.Type, args []any) (R, error) { return f(cls, args...) }, nil
		}
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, invalidHandler(fn, "nil or not a function")
	}

	ft := v.Type()
	if ft.NumIn() == 0 {
		return nil, invalidHandler(fn, "no class parameter")
	}

	bind, err := classBinder(fn, ft.In(0))
	if err != nil {
		return nil, err
	}

	resultType := ClassOf[R]()
	switch {
	case ft.NumOut() == 1 && ft.Out(0).AssignableTo(resultType):
	case ft.NumOut() == 2 && ft.Out(0).AssignableTo(resultType) && ft.Out(1) == errorType:
	default:
		return nil, errorc.With(
			errors.ErrInvalidHandler,
			errorc.String(errors.ErrorFieldHandlerFunc, funcName(fn)),
			errorc.String(errors.ErrorFieldResultType, resultType.String()),
			errorc.String(errors.ErrorFieldReason, "want results "+resultType.String()+" or ("+resultType.String()+", error)"),
		)
	}

	return func(cls reflect.Type, args []any) (R, error) {
		var zero R

		in, err := callArgs(ft, bind(cls), args)
		if err != nil {
			return zero, err
		}

		out := v.Call(in)

		r := reflect.New(resultType).Elem()
		r.Set(out[0])
		result := *(r.Addr().Interface().(*R))

		if len(out) == 2 && !out[1].IsNil() {
			return result, out[1].Interface().(error)
		}
		return result, nil
	}, nil
}

// classBinder returns a function building the first argument for a class.
func classBinder(fn any, param reflect.Type) (func(reflect.Type) reflect.Value, error) {
	if param == typeParamType {
		return func(cls reflect.Type) reflect.Value {
			return reflect.ValueOf(&cls).Elem()
		}, nil
	}

	ref, ok := classParam(param)
	if !ok {
		return nil, errorc.With(
			errors.ErrInvalidHandler,
			errorc.String(errors.ErrorFieldHandlerFunc, funcName(fn)),
			errorc.String(errors.ErrorFieldParamType, param.String()),
			errorc.String(errors.ErrorFieldReason, "first parameter cannot receive a class"),
		)
	}

	if param.Kind() == reflect.Pointer {
		return func(cls reflect.Type) reflect.Value {
			p := reflect.New(param.Elem())
			p.Elem().Set(reflect.ValueOf(ref.bind(cls)))
			return p
		}, nil
	}

	return func(cls reflect.Type) reflect.Value {
		return reflect.ValueOf(ref.bind(cls))
	}, nil
}

// callArgs checks args against the parameters of ft that follow the class.
func callArgs(ft reflect.Type, first reflect.Value, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn() - 1
	if ft.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || (!ft.IsVariadic() && len(args) > fixed) {
		return nil, errorc.With(
			errors.ErrArgumentMismatch,
			errorc.Int(errors.ErrorFieldArgCount, len(args)),
			errorc.String(errors.ErrorFieldReason, "handler takes "+strconv.Itoa(fixed)+" arguments after the class"),
		)
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, first)
	for i, a := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i + 1)
		} else {
			pt = ft.In(ft.NumIn() - 1).Elem()
		}

		av, ok := argValue(a, pt)
		if !ok {
			return nil, errorc.With(
				errors.ErrArgumentMismatch,
				errorc.Int(errors.ErrorFieldArgIndex, i),
				errorc.String(errors.ErrorFieldArgType, typeName(a)),
				errorc.String(errors.ErrorFieldParamType, pt.String()),
			)
		}
		in = append(in, av)
	}

	return in, nil
}

func argValue(a any, pt reflect.Type) (reflect.Value, bool) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), true
		default:
			return reflect.Value{}, false
		}
	}

	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, false
	}
	return v, true
}

func invalidHandler(fn any, reason string) error {
	return errorc.With(
		errors.ErrInvalidHandler,
		errorc.String(errors.ErrorFieldHandlerFunc, funcName(fn)),
		errorc.String(errors.ErrorFieldReason, reason),
	)
}

func typeName(a any) string {
	if a == nil {
		return "<nil>"
	}
	return reflect.TypeOf(a).String()
}
