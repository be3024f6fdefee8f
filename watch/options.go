package watch

import "github.com/signadot/jsonwatch/observe"

const (
	DefaultSeparator    = '.'
	DefaultAscendMarker = '<'
)

type config struct {
	sep           byte
	marker        byte
	newObservable func() observe.Observable
}

type Option func(*config)

// WithObservable sets the constructor of every node's Observable. The
// default is observe.NewEmitter.
func WithObservable(f func() observe.Observable) Option {
	return func(c *config) {
		c.newObservable = f
	}
}

func WithSeparator(sep byte) Option {
	return func(c *config) {
		c.sep = sep
	}
}

func WithAscendMarker(marker byte) Option {
	return func(c *config) {
		c.marker = marker
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		sep:    DefaultSeparator,
		marker: DefaultAscendMarker,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.newObservable == nil {
		c.newObservable = func() observe.Observable {
			return observe.NewEmitter()
		}
	}
	return c
}
