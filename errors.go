/*
 * errors.go, part of torsionrings.
 *
 * Copyright 2024 The torsionrings Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package rings

import (
	"errors"
	"fmt"
)

//Error is the error type returned by the functions of this package and its
//subpackages. The Decorate method allows adding information (usually the name
//of the calling function) as the error travels up, without wrapping it in
//something else.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	cause    error
}

//NewError returns a new Error with the given message, file name and
//decoration. cause can be nil.
func NewError(message, filename string, cause error, critical bool, deco ...string) *Error {
	return &Error{message: message, filename: filename, deco: deco, critical: critical, cause: cause}
}

func (err *Error) Error() string {
	msg := err.message
	if err.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.cause)
	}
	if err.filename == "" {
		return msg
	}
	return fmt.Sprintf("file %s: %s", err.filename, msg)
}

//Decorate adds deco to the trail of the error and returns the trail.
//If passed an empty string, it just returns the current trail.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the name of the file associated with the error, if any.
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error should stop the program.
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.cause }

//Is allows comparing against the exported sentinels with errors.Is.
//Only the message is compared.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.message == err.message
}

//errDecorate adds caller to err if err is an *Error, and returns err.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//Sentinels.
var (
	ErrNoData      = &Error{message: "No torsion angle data found", critical: true}
	ErrUnableOpen  = &Error{message: "Unable to open file", critical: true}
	ErrReading     = &Error{message: "Error reading file", critical: true}
	ErrWriting     = &Error{message: "Error writing file", critical: true}
	ErrWrongFormat = &Error{message: "Unknown output format", critical: true}
)

//Errorf builds a critical Error with the same message as the sentinel
//template (so errors.Is matches it), attached to filename and cause.
func Errorf(template *Error, filename string, cause error, deco ...string) *Error {
	return NewError(template.message, filename, cause, template.critical, deco...)
}
