package classdispatch

import "github.com/ygrebnov/classdispatch/errors"

// Sentinel errors re-exported from the errors package. Use errors.Is to match.
var (
	ErrMissingAnnotation          = errors.ErrMissingAnnotation
	ErrNotTypeOfAnnotation        = errors.ErrNotTypeOfAnnotation
	ErrAnnotationArgumentNotClass = errors.ErrAnnotationArgumentNotClass
	ErrAmbiguousRegistration      = errors.ErrAmbiguousRegistration
	ErrInvalidRegistrationKey     = errors.ErrInvalidRegistrationKey
	ErrInvalidHandler             = errors.ErrInvalidHandler
	ErrArgumentMismatch           = errors.ErrArgumentMismatch
	ErrInvalidOption              = errors.ErrInvalidOption
)
