package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/classdispatch/constants"
)

const Namespace = constants.Namespace

// Sentinel errors for resolver and registration misuses. Use errors.Is to match.
var (
	ErrMissingAnnotation          = errorc.New(Namespace + ": handler has no annotated first parameter")
	ErrNotTypeOfAnnotation        = errorc.New(Namespace + ": first parameter is not annotated as a class (want Class[T])")
	ErrAnnotationArgumentNotClass = errorc.New(Namespace + ": annotation argument is not a runtime class")
	ErrAmbiguousRegistration      = errorc.New(Namespace + ": invalid first argument: not a runtime class, but a handler was given")
	ErrInvalidRegistrationKey     = errorc.New(Namespace + ": invalid first argument: neither a class nor a handler")
	ErrInvalidHandler             = errorc.New(Namespace + ": handler cannot be called with a class")
	ErrArgumentMismatch           = errorc.New(Namespace + ": arguments do not match handler parameters")
	ErrInvalidOption              = errorc.New(Namespace + ": invalid option")
)

// Internal hierarchical segments used to build dotted keys.
const (
	keyHandler = constants.ErrorFieldNamespace + ".handler."
	keyClass   = constants.ErrorFieldNamespace + ".class."
	keyCall    = constants.ErrorFieldNamespace + ".call."
)

// Exported structured error field keys. Keep string values stable for log queries.
const (
	ErrorFieldHandlerFunc = keyHandler + "func"        // classdispatch.handler.func
	ErrorFieldParamType   = keyHandler + "param_type"  // classdispatch.handler.param_type
	ErrorFieldResultType  = keyHandler + "result_type" // classdispatch.handler.result_type
)

const (
	ErrorFieldClassName = keyClass + "name" // classdispatch.class.name
	ErrorFieldClassKind = keyClass + "kind" // classdispatch.class.kind
)

const (
	ErrorFieldArgIndex = keyCall + "arg_index" // classdispatch.call.arg_index
	ErrorFieldArgType  = keyCall + "arg_type"  // classdispatch.call.arg_type
	ErrorFieldArgCount = keyCall + "arg_count" // classdispatch.call.arg_count
)

const (
	ErrorFieldTargetType = constants.ErrorFieldNamespace + ".target_type"
	ErrorFieldOption     = constants.ErrorFieldNamespace + ".option"
	ErrorFieldReason     = constants.ErrorFieldNamespace + ".reason"
)
