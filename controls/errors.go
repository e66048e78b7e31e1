package controls

import "fmt"

// ErrorKind classifies binding-document errors. Every kind is itself an error
// so callers can test with errors.Is(err, controls.ErrUnknownTarget).
type ErrorKind uint8

const (
	// ErrConfigShape: the document or a section is not a table, or a
	// required section is missing.
	ErrConfigShape ErrorKind = iota + 1
	// ErrUnknownTarget: no target parser accepts the name.
	ErrUnknownTarget
	// ErrTriggerKindMismatch: the value type or trigger does not fit the
	// target family.
	ErrTriggerKindMismatch
	// ErrUnknownTrigger: the value is not recognised as any trigger.
	ErrUnknownTrigger
	// ErrOutOfRange: an integer does not fit the unsigned 32-bit id it names.
	ErrOutOfRange
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrConfigShape:
		return "malformed controls document"
	case ErrUnknownTarget:
		return "unknown target"
	case ErrTriggerKindMismatch:
		return "trigger kind mismatch"
	case ErrUnknownTrigger:
		return "unknown trigger"
	case ErrOutOfRange:
		return "value out of range"
	default:
		return fmt.Sprintf("controls error %d", uint8(k))
	}
}

// ConfigError is returned by the codec. Detail quotes the offending token.
type ConfigError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

// Is matches the error against its ErrorKind.
func (e *ConfigError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func configErr(kind ErrorKind, format string, args ...any) error {
	return &ConfigError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// AssertionError is raised (as a panic value) in strict mode when the caller
// breaks the press/release protocol, e.g. releases a trigger that is not held.
type AssertionError struct {
	Op     string
	Detail string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("controls: assertion failed in %s: %s", e.Op, e.Detail)
}
