package classdispatch

import (
	"reflect"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/classdispatch/errors"
)

// New builds a Dispatcher around defaultFn, which is registered under the
// universal base and serves every class without a more specific handler.
//
// defaultFn must be annotated: its first parameter is Class[T] or *Class[T]
// for some class T. Resolver errors are returned unchanged.
func New[R any](defaultFn any, opts ...Option) (*Dispatcher[R], error) {
	if _, err := Resolve(defaultFn); err != nil {
		return nil, err
	}

	def, err := newHandler[R](Universal(), defaultFn)
	if err != nil {
		return nil, err
	}

	o := options{
		logger: nopLogger{},
		name:   def.Name(),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	d := &Dispatcher[R]{
		name:     o.name,
		logger:   o.logger,
		def:      def,
		registry: map[reflect.Type]*Handler[R]{Universal(): def},
		cache:    &sync.Map{},
	}
	d.logger.Debug("dispatcher created", "dispatcher", d.name, "default", def.Name())

	return d, nil
}

// Logger receives the dispatcher's diagnostic messages. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type options struct {
	logger Logger
	name   string
}

// Option configures a Dispatcher at construction time.
type Option func(*options) error

// WithLogger sets the logger. Registrations and cache invalidations are
// logged at Debug level; lookups are not logged.
func WithLogger(logger Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errorc.With(errors.ErrInvalidOption, errorc.String(errors.ErrorFieldOption, "WithLogger"))
		}
		o.logger = logger
		return nil
	}
}

// WithName sets the name used in log records. Defaults to the qualified
// name of the default handler.
func WithName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return errorc.With(errors.ErrInvalidOption, errorc.String(errors.ErrorFieldOption, "WithName"))
		}
		o.name = name
		return nil
	}
}
