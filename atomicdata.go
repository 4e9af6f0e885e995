/*
 * atomicdata.go, part of grrm-irc2xyz.
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

import "regexp"

//symbolRe matches a chemical element symbol and nothing else: one
//uppercase letter, optionally followed by one lowercase letter. GRRM
//geometry lines are recognized by their first token matching this.
var symbolRe = regexp.MustCompile(`^[A-Z][a-z]?$`)

//A map for assigning mass to elements.
//Note that just the elements common in GRRM searches are present; an
//element not found here gets a zero mass, which Masses reports.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"F":  18.998,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.90,
	"B":  10.81,
	"Si": 28.08,
	"Li": 6.94,
	"Na": 22.99,
	"K":  39.1,
	"Mg": 24.30,
	"Ca": 40.08,
	"Fe": 55.84,
	"Cu": 63.55,
	"Zn": 65.38,
	"Pd": 106.42,
	"Pt": 195.08,
}
