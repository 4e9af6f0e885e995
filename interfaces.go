/*
 * interfaces.go, part of grrm-irc2xyz.
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

// Traj is the interface for a frame source, such as a trajectory file
// opened for reading. Frames in an IRC trajectory may not all share an
// atom count with their neighbors (though well-formed GRRM output
// does), so each read returns a full Frame rather than filling a
// preallocated matrix.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next returns the next frame of the trajectory. At the normal end
	//of the trajectory it returns a LastFrameError, which is harmless.
	Next() (*Frame, error)
}

// Error is the interface for errors that all packages in this module
// implement. The Decorate method allows to add and retrieve info from
// the error without changing its type or wrapping it around something
// else. Each call returns the current decoration slice; an empty
// string only queries, it is not added.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless
// end-of-trajectory errors, so they can be filtered in a typeswitch
// that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
