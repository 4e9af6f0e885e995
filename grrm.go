/*
 * grrm.go, part of grrm-irc2xyz.
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

//Frame labels. They only annotate provenance in the written
//trajectory, nothing is computed from them.
const (
	LabelTS  = "TS"
	LabelFWD = "FWD"
	LabelBWD = "BWD"
)

//Atom contains the per-atom data read from the log, except for the
//coordinates, which live in the Geometry's matrix.
type Atom struct {
	Symbol string
	Mass   float64
}

//NewAtom returns an Atom with the given element symbol and, when the
//element is tabulated, its mass.
func NewAtom(symbol string) *Atom {
	return &Atom{Symbol: symbol, Mass: symbolMass[symbol]}
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("attempted to copy a nil atom")
	}
	Newat := new(Atom)
	*Newat = *A
	return Newat
}

//Geometry is an ordered set of atoms with their cartesian coordinates,
//one point along the reaction path. The order of the Atoms slice
//matches the row order of Coords and is the insertion order from the
//log; the same index means the same atom across every geometry of one
//path. Coords is nil when the geometry is empty.
type Geometry struct {
	Atoms  []*Atom
	Coords *Matrix
}

//Len returns the number of atoms in the geometry.
func (G *Geometry) Len() int {
	if G == nil {
		return 0
	}
	return len(G.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if out of
//range.
func (G *Geometry) Atom(i int) *Atom {
	if i >= G.Len() {
		panic("Geometry: requested Atom out of bounds")
	}
	return G.Atoms[i]
}

//Masses returns a slice with the mass of each atom in the geometry,
//and an error if any of them is not tabulated.
func (G *Geometry) Masses() ([]float64, error) {
	mass := make([]float64, G.Len())
	for i := 0; i < G.Len(); i++ {
		thisatom := G.Atom(i)
		if thisatom.Mass == 0 {
			return nil, LogError{message: fmt.Sprintf("no mass for atom %d (%s)", i, thisatom.Symbol), critical: true, deco: []string{"Masses"}}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

//Step is one point of an IRC path: a geometry together with its
//energy, in the log's native unit (hartree), parsed verbatim.
type Step struct {
	Energy float64
	Geom   *Geometry
}

//Frame is a Step plus a label identifying its provenance (TS, FWD or
//BWD), as written into an output trajectory.
type Frame struct {
	*Step
	Label string
}

//Path holds everything extracted from one GRRM IRC log: the
//transition-state structure and the two branches, each in the
//chronological order of the log.
type Path struct {
	TS       *Step
	Forward  []*Step
	Backward []*Step
}

//ForwardTraj assembles the forward trajectory: the TS frame followed
//by the forward steps in their original order.
func (P *Path) ForwardTraj() []*Frame {
	frames := make([]*Frame, 0, len(P.Forward)+1)
	if P.TS != nil {
		frames = append(frames, &Frame{Step: P.TS, Label: LabelTS})
	}
	for _, s := range P.Forward {
		frames = append(frames, &Frame{Step: s, Label: LabelFWD})
	}
	return frames
}

//BackwardTraj assembles the backward trajectory: the TS frame followed
//by the backward steps in reverse order, so the file reads
//monotonically along the path. Downstream viewers rely on that
//ordering.
func (P *Path) BackwardTraj() []*Frame {
	frames := make([]*Frame, 0, len(P.Backward)+1)
	if P.TS != nil {
		frames = append(frames, &Frame{Step: P.TS, Label: LabelTS})
	}
	for i := len(P.Backward) - 1; i >= 0; i-- {
		frames = append(frames, &Frame{Step: P.Backward[i], Label: LabelBWD})
	}
	return frames
}
