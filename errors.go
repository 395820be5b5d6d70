package rxkit

import (
	"fmt"

	"golang.org/x/text/language"
)

// Stage names the step of Run that failed.
type Stage string

const (
	StagePrepare Stage = "prepare"
	StageExecute Stage = "execute"
	StageParse   Stage = "parse"
)

// StatementPreparationError is returned when a statement can not be built.
type StatementPreparationError struct {
	Err error
}

func (e *StatementPreparationError) Error() string {
	return fmt.Sprintf("unable to prepare statement: %v", e.Err)
}

func (e *StatementPreparationError) Unwrap() error { return e.Err }
func (e *StatementPreparationError) Cause() error  { return e.Err }

// ResultParsingError is returned when the result cursor holds data the runner can not parse.
type ResultParsingError struct {
	Err error
}

func (e *ResultParsingError) Error() string {
	return fmt.Sprintf("unable to parse query results: %v", e.Err)
}

func (e *ResultParsingError) Unwrap() error { return e.Err }
func (e *ResultParsingError) Cause() error  { return e.Err }

// QueryExecutionError is the single error Run returns after cleanup.
type QueryExecutionError struct {
	// Label is the runner's Describe() value
	Label string
	Stage Stage
	Err   error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("query %q failed at %s: %v", e.Label, e.Stage, e.Err)
}

func (e *QueryExecutionError) Unwrap() error { return e.Err }
func (e *QueryExecutionError) Cause() error  { return e.Err }

// ResourceMissingError is returned when no bundle matches the name and locale.
type ResourceMissingError struct {
	Bundle string
	Locale language.Tag
}

func (e *ResourceMissingError) Error() string {
	return fmt.Sprintf("can not find bundle %q for locale %s", e.Bundle, e.Locale)
}

// KeyFormatError is returned when a bundle key is not a base-10 integer.
type KeyFormatError struct {
	Bundle string
	Key    string
	Err    error
}

func (e *KeyFormatError) Error() string {
	return fmt.Sprintf("bundle %q: key %q is not numeric", e.Bundle, e.Key)
}

func (e *KeyFormatError) Unwrap() error { return e.Err }
func (e *KeyFormatError) Cause() error  { return e.Err }

// InvalidArgumentError reports a missing or malformed argument.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Reason)
}

// UnsupportedModeError is returned by NewStringComparator for unknown sort modes.
type UnsupportedModeError struct {
	Mode SortMode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported sort mode %d", int(e.Mode))
}
