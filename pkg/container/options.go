package container

import (
	"go.llib.dev/dsa/pkg/logger"
	"go.llib.dev/dsa/pkg/logging"
	"go.llib.dev/dsa/port/option"
)

// ArrayOption configures the containers that own an array buffer:
// Array, ArrayStack and Heap.
type ArrayOption option.Option[ArrayConfig]

type ArrayConfig struct {
	// Logger receives the debug entries about storage growth.
	// When nil, logger.Default is used.
	Logger *logging.Logger
}

func (c ArrayConfig) Configure(o *ArrayConfig) {
	if c.Logger != nil {
		o.Logger = c.Logger
	}
}

// WithLogger sets the logger used to report storage growth.
func WithLogger(l *logging.Logger) ArrayOption {
	return option.Func[ArrayConfig](func(c *ArrayConfig) {
		c.Logger = l
	})
}

func (c ArrayConfig) logger() *logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logger.Default
}

func toArrayConfig(opts []ArrayOption) ArrayConfig {
	return option.ToConfig[ArrayConfig](opts)
}
