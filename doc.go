/*
 * doc.go, part of grrm-irc2xyz.
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

/*Package grrm extracts reaction paths from GRRM program logs.

A GRRM IRC log contains three structural blocks: the initial
transition-state geometry, the forward IRC branch (toward products) and
the backward IRC branch (toward reactants). Each block holds cartesian
geometries in Angstrom and energies in hartree. This package locates the
blocks by their free-text section markers, tokenizes them, and returns
the path as Go structures.

	path, err := grrm.ParseFile("1.log")
	if err != nil {
		//A non-critical error means the TS marker was absent,
		//a critical one means a found section was malformed.
	}
	fwd := path.ForwardTraj()  //TS first, then the forward steps.
	bwd := path.BackwardTraj() //TS first, then the backward steps,
	                           //reversed so the file reads chronologically.

The subpackage traj/xyz writes and reads the resulting frame sequences
as multi-frame XYZ trajectories, optionally compressed. The subpackage
ircplot draws the energy profile along the path. The command irc2xyz
ties the three together.
*/
package grrm
