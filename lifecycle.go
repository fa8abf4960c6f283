package ioc

import (
	"fmt"
	"strings"
)

// Lifecycle decides how often a binding constructs its implementation.
type Lifecycle int

const (
	// Transient constructs a fresh instance on every resolution.
	Transient Lifecycle = iota + 1

	// Singleton constructs once and reuses the cached instance forever.
	Singleton
)

// String returns the lowercase name of the lifecycle.
func (l Lifecycle) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	default:
		return fmt.Sprintf("lifecycle(%d)", int(l))
	}
}

// Valid reports whether l is one of the declared lifecycles.
func (l Lifecycle) Valid() bool {
	return l == Transient || l == Singleton
}

// ParseLifecycle parses "transient" or "singleton", ignoring case and
// surrounding whitespace.
func ParseLifecycle(s string) (Lifecycle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transient":
		return Transient, nil
	case "singleton":
		return Singleton, nil
	default:
		return 0, fmt.Errorf("unknown lifecycle %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifecycle) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", l)
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lifecycle) UnmarshalText(text []byte) error {
	parsed, err := ParseLifecycle(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
