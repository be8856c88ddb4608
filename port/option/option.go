// Package option is the shared plumbing behind the functional options of the containers.
package option

type Option[Config any] interface {
	// Configure will configure an option.
	Configure(*Config)
}

// Func (option.Func[Config]) is a default implementation for creating options.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) {
	if fn == nil {
		return
	}
	fn(c)
}

// ToConfig folds the options into a Config value.
// If the Config has an Init method, it is called before the options are applied,
// so defaults can be set there.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if init, ok := any(&c).(initer); ok {
		init.Init()
	}
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}

type initer interface {
	Init()
}
