package errors

import "fmt"

// Kind is one of the six error kinds named in spec.md §7. Kinds are never
// collapsed into one another — each maps to its own stable Code.
type Kind string

const (
	// KindFileAccess: a path is missing, unreadable, or unwritable.
	KindFileAccess Kind = "file_access"
	// KindConditionSyntax: a condition string failed to parse.
	KindConditionSyntax Kind = "condition_syntax"
	// KindCyclicInteraction: the sorter detected a cycle.
	KindCyclicInteraction Kind = "cyclic_interaction"
	// KindGitState: a VCS operation failed.
	KindGitState Kind = "git_state"
	// KindInvalidArgument: a caller-supplied path or flag is self-inconsistent.
	KindInvalidArgument Kind = "invalid_argument"
	// KindUndefinedGroup: metadata references an undeclared group.
	KindUndefinedGroup Kind = "undefined_group"
)

// code is the stable integer code per kind, part of the compatibility
// surface across the module boundary (spec.md §6).
var code = map[Kind]int{
	KindFileAccess:        10,
	KindConditionSyntax:   20,
	KindCyclicInteraction: 30,
	KindGitState:          40,
	KindInvalidArgument:   50,
	KindUndefinedGroup:    60,
}

// OrdinatorError is the single tagged error type used across the module
// boundary (spec.md §9 "prefer a single conditional wrapper tagged variant"
// applied to the error catalogue instead of one type per kind).
type OrdinatorError struct {
	Kind        Kind
	Code        int
	Message     string
	Cause       error
	Context     map[string]string
	Suggestions []string
	// Payload carries kind-specific structured data, e.g. the cycle report
	// for KindCyclicInteraction. Callers that care type-assert it.
	Payload any
}

func (e *OrdinatorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *OrdinatorError) Unwrap() error {
	return e.Cause
}

// Is supports errors.Is comparisons keyed on Kind.
func (e *OrdinatorError) Is(target error) bool {
	t, ok := target.(*OrdinatorError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// HasSuggestions reports whether this error carries suggestions.
func (e *OrdinatorError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// Option is a functional option for New.
type Option func(*OrdinatorError)

// WithCause wraps an underlying error.
func WithCause(err error) Option {
	return func(e *OrdinatorError) { e.Cause = err }
}

// WithContext attaches a key/value of structured context.
func WithContext(key, value string) Option {
	return func(e *OrdinatorError) {
		if e.Context == nil {
			e.Context = make(map[string]string)
		}
		e.Context[key] = value
	}
}

// WithSuggestions attaches user-facing suggestions.
func WithSuggestions(suggestions ...string) Option {
	return func(e *OrdinatorError) {
		e.Suggestions = append(e.Suggestions, suggestions...)
	}
}

// WithPayload attaches kind-specific structured data.
func WithPayload(payload any) Option {
	return func(e *OrdinatorError) { e.Payload = payload }
}

// New constructs an OrdinatorError of the given kind.
func New(kind Kind, message string, opts ...Option) *OrdinatorError {
	e := &OrdinatorError{
		Kind:    kind,
		Code:    code[kind],
		Message: message,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Of reports the Kind of err if it is (or wraps) an *OrdinatorError.
func Of(err error) (Kind, bool) {
	var oe *OrdinatorError
	for err != nil {
		if e, ok := err.(*OrdinatorError); ok {
			oe = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if oe == nil {
		return "", false
	}
	return oe.Kind, true
}
