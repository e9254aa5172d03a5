/*
 * errors.go, part of godock.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package dock

/**Note: Several functions in this package panic instead of returning errors.
 * Those are "fundamental" functions that can only fail if the calling program
 * is itself wrong (say, a term registry whose flags and instances diverged, or
 * a parameter cursor that ran dry half-way through an evaluation), so the
 * program should just crash. Errors are reserved for things that can go wrong
 * with correct programs, like reading a payload from a truncated file.**/

// Error is the interface for errors in this library. The Decorate method
// allows to add and retrieve info from the error, without changing its type
// or wrapping it around something else. Each call returns the current
// "decoration" slice of strings. If passed an empty string, it just returns
// the current value without adding anything.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the package. It implements Error.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error. The decoration slice should
// contain a list of the functions in the calling stack, plus, for each
// function, any relevant information, or nothing.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries
	//to alter the receiver, it should work, since err.deco is a slice, and
	//hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that the error implements Error and decorates it with
//the caller's name before returning it. Used with a non-Error error, it
//will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
