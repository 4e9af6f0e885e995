/*
 * errors.go, part of grrm-irc2xyz.
 *
 * Copyright 2025 Yukun Bai <yukunbai{at}gmailDOTcom>
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

package grrm

import "fmt"

//LogError is the concrete error type for problems found while parsing
//a GRRM log. It fulfills grrm.Error. A non-critical LogError means a
//section marker was absent from the log, so the corresponding block
//could not be located at all. A critical one means a located block was
//malformed, and carries the offending line number.
type LogError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based line number, 0 if not applicable.
	deco     []string
	critical bool
}

func (err LogError) Error() string {
	where := ""
	if err.filename != "" {
		where = fmt.Sprintf(" in %s", err.filename)
	}
	if err.line > 0 {
		return fmt.Sprintf("grrm log error%s, line %d: %s", where, err.line, err.message)
	}
	return fmt.Sprintf("grrm log error%s: %s", where, err.message)
}

//Decorate adds new information to the error and returns the resulting
//decoration slice. If passed an empty string it just returns the
//current value.
func (err LogError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical (a malformed block),
//false if it only signals an absent block.
func (err LogError) Critical() bool { return err.critical }

//FileName returns the log file associated to the error, or an empty
//string if the error did not come from a file.
func (err LogError) FileName() string { return err.filename }

//Line returns the 1-based line number where the problem was found, or
//0 when the problem is not tied to a particular line.
func (err LogError) Line() int { return err.line }

//errDecorate asserts that the error implements grrm.Error and
//decorates it with the caller's name before returning it. Used with
//any other error type it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//critical returns true if err reports itself as critical. Errors that
//do not implement Critical at all are taken as critical.
func critical(err error) bool {
	c, ok := err.(interface{ Critical() bool })
	if !ok {
		return true
	}
	return c.Critical()
}
