package errors

import "fmt"

// NewFileAccess builds a KindFileAccess error for a path that is missing,
// unreadable, or unwritable.
func NewFileAccess(path string, message string, opts ...Option) *OrdinatorError {
	defaults := []Option{WithContext("path", path)}
	return New(KindFileAccess, message, append(defaults, opts...)...)
}

// NewConditionSyntax builds a KindConditionSyntax error for a condition
// string that failed to parse.
func NewConditionSyntax(condition string, message string, opts ...Option) *OrdinatorError {
	defaults := []Option{WithContext("condition", condition)}
	return New(KindConditionSyntax, message, append(defaults, opts...)...)
}

// NewCyclicInteraction builds a KindCyclicInteraction error. payload should
// be the sorter's cycle report (plugins plus per-edge rule tags).
func NewCyclicInteraction(message string, payload any, opts ...Option) *OrdinatorError {
	defaults := []Option{WithPayload(payload)}
	return New(KindCyclicInteraction, message, append(defaults, opts...)...)
}

// NewGitState builds a KindGitState error for a failed VCS operation.
func NewGitState(message string, opts ...Option) *OrdinatorError {
	return New(KindGitState, message, opts...)
}

// NewInvalidArgument builds a KindInvalidArgument error for a caller-
// supplied path or flag that is self-inconsistent.
func NewInvalidArgument(message string, opts ...Option) *OrdinatorError {
	return New(KindInvalidArgument, message, opts...)
}

// NewUndefinedGroup builds a KindUndefinedGroup error for a metadata entry
// referencing a group name not declared in groups (spec.md §7).
func NewUndefinedGroup(group string, opts ...Option) *OrdinatorError {
	defaults := []Option{WithContext("group", group)}
	return New(KindUndefinedGroup, fmt.Sprintf("undefined group: %s", group), append(defaults, opts...)...)
}
