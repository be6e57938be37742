package classdispatch

import (
	"reflect"
	"runtime"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/classdispatch/errors"
)

// Resolve returns the class named by the first parameter of fn, which must be
// declared as Class[T] or *Class[T]. Class[any] resolves to the universal base.
//
// Errors:
//   - errors.ErrMissingAnnotation: fn is not a function or has no parameters.
//   - errors.ErrNotTypeOfAnnotation: the first parameter is not a Class marker.
//   - errors.ErrAnnotationArgumentNotClass: T is not a defined type.
func Resolve(fn any) (reflect.Type, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.Type().NumIn() == 0 {
		return nil, errorc.With(
			errors.ErrMissingAnnotation,
			errorc.String(errors.ErrorFieldHandlerFunc, funcName(fn)),
		)
	}

	param := v.Type().In(0)
	ref, ok := classParam(param)
	if !ok {
		return nil, errorc.With(
			errors.ErrNotTypeOfAnnotation,
			errorc.String(errors.ErrorFieldHandlerFunc, funcName(fn)),
			errorc.String(errors.ErrorFieldParamType, param.String()),
		)
	}

	cls := ref.Bound()
	if !IsClass(cls) {
		return nil, errorc.With(
			errors.ErrAnnotationArgumentNotClass,
			errorc.String(errors.ErrorFieldHandlerFunc, funcName(fn)),
			errorc.String(errors.ErrorFieldClassName, cls.String()),
			errorc.String(errors.ErrorFieldClassKind, cls.Kind().String()),
		)
	}

	return cls, nil
}

// funcName returns the fully qualified name of fn, or its type for values
// that are not functions.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() {
		return "<nil>"
	}
	if v.Kind() != reflect.Func {
		return v.Type().String()
	}
	if v.IsNil() {
		return "<nil " + v.Type().String() + ">"
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return v.Type().String()
}
