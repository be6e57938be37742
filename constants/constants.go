package constants

const Namespace = "classdispatch"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace
