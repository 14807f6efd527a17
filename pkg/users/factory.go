package users

import (
	"github.com/sirupsen/logrus"
)

// Factory creates users from string tags.
// It holds no mutable state and is safe for concurrent use.
type Factory struct {
	logger logrus.FieldLogger
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger used for creation events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFactory creates a Factory. Without options it logs to the logrus
// standard logger.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds a user of the kind named by tag.
//
// An empty tag yields (nil, nil). A non-empty tag that names no kind yields
// a *core.ArgumentError carrying the tag.
func (f *Factory) Create(tag, username string) (*User, error) {
	if tag == "" {
		return nil, nil
	}

	kind, err := ParseKind(tag)
	if err != nil {
		f.logger.WithField("tag", tag).Warn("rejected unknown user type")
		return nil, err
	}

	f.logger.WithFields(logrus.Fields{
		"kind":     kind,
		"username": username,
	}).Debug("user created")

	return &User{kind: kind, username: username}, nil
}

var defaultFactory = NewFactory()

// Create builds a user with the default factory.
func Create(tag, username string) (*User, error) {
	return defaultFactory.Create(tag, username)
}
