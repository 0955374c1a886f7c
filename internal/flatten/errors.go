// Package flatten turns raw extracted resume records into flat per-stint rows.
package flatten

import "fmt"

// ErrorKind classifies why a document could not be decoded into a record.
type ErrorKind string

// Error kinds for per-document decode failures. None of them abort a batch;
// the offending document is skipped and the failure recorded.
const (
	KindEmptyInput      ErrorKind = "EmptyInput"
	KindMalformedSyntax ErrorKind = "MalformedSyntax"
	KindUnexpectedShape ErrorKind = "UnexpectedShape"
)

// OtherKind wraps an unexpected error's concrete type into an error kind,
// for failures outside the enumerated decode taxonomy.
func OtherKind(err error) ErrorKind {
	return ErrorKind(fmt.Sprintf("Other(%T)", err))
}

// ErrorEntry is one structured entry in the batch error log.
type ErrorEntry struct {
	Source  string    `json:"source"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e ErrorEntry) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Kind, e.Message)
}
