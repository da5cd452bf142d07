// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"errors"
	"fmt"
)

// An ErrorCause classifies the ways a processing run can fail.
type ErrorCause int

const (
	// NoInputFiles indicates that the input path does not exist or
	// names no readable CSV result files.
	NoInputFiles ErrorCause = iota

	// EmptyResult indicates that loading or a filter stage left
	// zero result rows.
	EmptyResult

	// MissingPrimaryParameter indicates that the requested X-axis
	// parameter is not among the parameters found in the input.
	MissingPrimaryParameter

	// InvalidBenchmarkPattern indicates a benchmark filter
	// substring starting with a disallowed character.
	InvalidBenchmarkPattern

	// InvalidRange indicates a malformed or inverted value range.
	InvalidRange
)

var causeNames = [...]string{
	NoInputFiles:            "no input files",
	EmptyResult:             "empty result",
	MissingPrimaryParameter: "missing primary parameter",
	InvalidBenchmarkPattern: "invalid benchmark pattern",
	InvalidRange:            "invalid range",
}

func (c ErrorCause) String() string {
	if int(c) < len(causeNames) {
		return causeNames[c]
	}
	return fmt.Sprintf("ErrorCause(%d)", int(c))
}

// An Error is a failure in the result-processing pipeline. Every
// stage reports failure through this one type so that the top-level
// caller can print the message and stop without distinguishing
// stages.
type Error struct {
	// Cause classifies the failure.
	Cause ErrorCause

	msg string
}

// Errorf returns an *Error with the given cause and a message
// formatted as fmt.Sprintf does.
func Errorf(cause ErrorCause, format string, args ...interface{}) *Error {
	return &Error{cause, fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.msg
}

// Cause returns the cause of err and true if err is a pipeline
// *Error, possibly wrapped. Otherwise it returns false.
func Cause(err error) (ErrorCause, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Cause, true
	}
	return 0, false
}
