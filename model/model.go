// Package model assembles a named model from field descriptors.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takumakei/model-gen-go/field"
)

// ErrInvalidModelName is returned by Build for a name that is empty or
// contains a path separator.
var ErrInvalidModelName = errors.New("invalid model name")

// Data is an assembled model. Fields keep descriptor order.
type Data struct {
	ClassName string
	FileName  string
	Fields    []field.Definition
}

// FieldError locates the descriptor that made Build fail.
type FieldError struct {
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field #%d: %v", e.Index+1, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Build parses descriptors in order and names the model after name.
// It fails on the first descriptor that does not parse.
func Build(name string, descriptors []string) (Data, error) {
	if name == "" {
		return Data{}, fmt.Errorf("%w: must not be empty", ErrInvalidModelName)
	}
	if strings.ContainsAny(name, `/\`) {
		return Data{}, fmt.Errorf("%w %q: must not contain a path separator", ErrInvalidModelName, name)
	}
	fields, idx, err := field.ParseAll(descriptors)
	if err != nil {
		return Data{}, &FieldError{Index: idx, Err: err}
	}
	return New(name, fields), nil
}

// New names the model after name and takes ownership of fields.
func New(name string, fields []field.Definition) Data {
	return Data{
		ClassName: UpperFirst(name),
		FileName:  LowerFirst(name),
		Fields:    fields,
	}
}

// Definition is a model on its way to disk.
type Definition struct {
	Data Data
}

// NewDefinition wraps data.
func NewDefinition(data Data) Definition {
	return Definition{Data: data}
}
