/*
 * parse.go, part of grrm-irc2xyz.
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

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

//The section markers GRRM writes into its logs. They appear as
//substrings of otherwise free-text header lines.
const (
	markerInitial  = "INITIAL STRUCTURE"
	markerFwdStart = "IRC FOLLOWING (FORWARD)"
	markerFwdEnd   = "EQ EXIST WITHIN STEPSIZE"
	markerBwdStart = "IRC FOLLOWING (BACKWARD)"
	markerBwdEnd   = "Energy profile along IRC"
	stepPrefix     = "# STEP"
	energyToken    = "ENERGY"
)

//cursor walks a log line by line. Each block scanner gets a fresh
//cursor, so block order in the file does not matter.
type cursor struct {
	lines []string
	pos   int
}

//seek advances the cursor until the current line contains the
//sentinel, returning false if the input runs out first.
func (c *cursor) seek(sentinel string) bool {
	for ; c.pos < len(c.lines); c.pos++ {
		if strings.Contains(c.lines[c.pos], sentinel) {
			return true
		}
	}
	return false
}

func (c *cursor) eof() bool { return c.pos >= len(c.lines) }

//line returns the current line. Only valid if !c.eof().
func (c *cursor) line() string { return c.lines[c.pos] }

//geomBuilder accumulates the geometry lines of one block. Coordinates
//are staged in a flat slice and wrapped into the matrix only once the
//block is complete.
type geomBuilder struct {
	atoms  []*Atom
	coords []float64
}

//add parses one whitespace-tokenized geometry line. The first token
//has already been matched against symbolRe by the caller.
func (g *geomBuilder) add(fields []string, lineno int) error {
	if len(fields) < 4 {
		return LogError{message: fmt.Sprintf("geometry line for %s has %d tokens, want at least 4", fields[0], len(fields)), line: lineno + 1, critical: true}
	}
	for _, f := range fields[1:4] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return LogError{message: fmt.Sprintf("bad coordinate %q: %v", f, err), line: lineno + 1, critical: true}
		}
		g.coords = append(g.coords, v)
	}
	g.atoms = append(g.atoms, NewAtom(fields[0]))
	return nil
}

//geometry returns the accumulated block as a Geometry.
func (g *geomBuilder) geometry() (*Geometry, error) {
	if len(g.atoms) == 0 {
		return &Geometry{}, nil
	}
	m, err := NewMatrix(g.coords)
	if err != nil {
		return nil, errDecorate(err, "geometry")
	}
	return &Geometry{Atoms: g.atoms, Coords: m}, nil
}

//energyFrom extracts the energy from a tokenized ENERGY line. GRRM
//writes these as "ENERGY = <value> (...)", so the value is the third
//token.
func energyFrom(fields []string, lineno int) (float64, error) {
	if len(fields) < 3 {
		return 0, LogError{message: fmt.Sprintf("ENERGY line has %d tokens, want at least 3", len(fields)), line: lineno + 1, critical: true}
	}
	e, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, LogError{message: fmt.Sprintf("bad energy %q: %v", fields[2], err), line: lineno + 1, critical: true}
	}
	return e, nil
}

//parseTS scans for the first INITIAL STRUCTURE block and returns the
//transition-state step. A missing marker yields a non-critical
//LogError; a block that ends (blank line or EOF) before its ENERGY
//line yields a critical one.
func parseTS(c *cursor) (*Step, error) {
	if !c.seek(markerInitial) {
		return nil, LogError{message: "no " + markerInitial + " block in log"}
	}
	c.pos++
	var g geomBuilder
	for ; !c.eof(); c.pos++ {
		fields := strings.Fields(c.line())
		if len(fields) == 0 {
			break
		}
		if fields[0] == energyToken {
			e, err := energyFrom(fields, c.pos)
			if err != nil {
				return nil, errDecorate(err, "parseTS")
			}
			geom, err := g.geometry()
			if err != nil {
				return nil, errDecorate(err, "parseTS")
			}
			return &Step{Energy: e, Geom: geom}, nil
		}
		if symbolRe.MatchString(fields[0]) {
			if err := g.add(fields, c.pos); err != nil {
				return nil, errDecorate(err, "parseTS")
			}
		}
	}
	return nil, LogError{message: markerInitial + " block ends before its ENERGY line", line: c.pos, critical: true}
}

//parseSteps collects every IRC step between the start and end
//sentinels. An absent start sentinel is not an error: the branch is
//simply empty. Inside a found block, each "# STEP" header is followed
//by geometry lines up to the step's ENERGY line.
func parseSteps(c *cursor, start, end string) ([]*Step, error) {
	if !c.seek(start) {
		return nil, nil
	}
	c.pos++
	var steps []*Step
	for ; !c.eof() && !strings.Contains(c.line(), end); c.pos++ {
		if !strings.HasPrefix(strings.TrimSpace(c.line()), stepPrefix) {
			continue
		}
		c.pos++
		var g geomBuilder
		for ; !c.eof() && !strings.Contains(c.line(), energyToken); c.pos++ {
			fields := strings.Fields(c.line())
			if len(fields) > 0 && symbolRe.MatchString(fields[0]) {
				if err := g.add(fields, c.pos); err != nil {
					return nil, errDecorate(err, "parseSteps")
				}
			}
		}
		if c.eof() {
			return nil, LogError{message: "step block truncated before its ENERGY line", line: c.pos, critical: true}
		}
		e, err := energyFrom(strings.Fields(c.line()), c.pos)
		if err != nil {
			return nil, errDecorate(err, "parseSteps")
		}
		geom, err := g.geometry()
		if err != nil {
			return nil, errDecorate(err, "parseSteps")
		}
		steps = append(steps, &Step{Energy: e, Geom: geom})
	}
	return steps, nil
}

//Parse extracts the TS structure and both IRC branches from the lines
//of a GRRM log. A critical error (malformed block) aborts the parse
//and returns nil. If only the TS marker is absent, Parse still returns
//the Path together with the corresponding non-critical error, and the
//caller decides whether that is fatal; absent branch markers just
//leave the branch empty.
func Parse(lines []string) (*Path, error) {
	path := new(Path)
	var reterr error
	ts, err := parseTS(&cursor{lines: lines})
	if err != nil {
		if critical(err) {
			return nil, errDecorate(err, "Parse")
		}
		reterr = err
	}
	path.TS = ts
	path.Forward, err = parseSteps(&cursor{lines: lines}, markerFwdStart, markerFwdEnd)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	path.Backward, err = parseSteps(&cursor{lines: lines}, markerBwdStart, markerBwdEnd)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	return path, reterr
}

//ParseFile reads a whole GRRM log into memory and parses it. The
//returned errors carry the file name.
func ParseFile(name string) (*Path, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	path, err := Parse(strings.Split(string(b), "\n"))
	if err != nil {
		if lerr, ok := err.(LogError); ok {
			lerr.filename = name
			return path, lerr
		}
		return path, err
	}
	return path, nil
}
