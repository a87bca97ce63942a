// Package errors provides the six stable error kinds named in spec.md §7
// (FileAccessError, ConditionSyntaxError, CyclicInteractionError,
// GitStateError, InvalidArgument, UndefinedGroup) as a single tagged error
// type with a stable per-kind exit code, optional wrapped cause, and
// structured context.
//
// # Creating errors
//
//	err := errors.New(errors.KindFileAccess, "masterlist.yaml not found",
//	    errors.WithContext("path", path))
//
//	err := errors.NewCyclicInteraction("cyclic interaction detected", cycle,
//	    errors.WithSuggestions("remove one of the conflicting load_after rules"))
//
// # Handling errors
//
//	handler := errors.DefaultHandler()
//	os.Exit(handler.Handle(err))
package errors
