/*
 * xyz_test.go, part of grrm-irc2xyz.
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

package xyz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	grrm "github.com/yukunbai/grrm-irc2xyz"
)

func testFrames(Te *testing.T) []*grrm.Frame {
	mkstep := func(energy, shift float64) *grrm.Step {
		m, err := grrm.NewMatrix([]float64{
			0.0 + shift, 0.0, 0.0,
			0.0 + shift, 0.0, 0.74,
		})
		if err != nil {
			Te.Fatal(err)
		}
		return &grrm.Step{
			Energy: energy,
			Geom:   &grrm.Geometry{Atoms: []*grrm.Atom{grrm.NewAtom("H"), grrm.NewAtom("H")}, Coords: m},
		}
	}
	return []*grrm.Frame{
		{Step: mkstep(-1.0, 0), Label: grrm.LabelTS},
		{Step: mkstep(-1.0001, 0.01), Label: grrm.LabelFWD},
		{Step: mkstep(-1.0002, 0.02), Label: grrm.LabelFWD},
	}
}

func roundTrip(Te *testing.T, name string) {
	frames := testFrames(Te)
	if err := WriteFile(name, frames); err != nil {
		Te.Fatal(err)
	}
	handle, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer handle.Close()
	var r grrm.Traj = handle
	if !r.Readable() {
		Te.Fatal("fresh trajectory handle not readable")
	}
	var got []*grrm.Frame
	for {
		f, err := r.Next()
		if err != nil {
			if _, ok := err.(grrm.LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		got = append(got, f)
	}
	if len(got) != len(frames) {
		Te.Fatalf("read %d frames, want %d", len(got), len(frames))
	}
	for i, f := range got {
		want := frames[i]
		if f.Label != want.Label {
			Te.Errorf("frame %d label %q, want %q", i, f.Label, want.Label)
		}
		if f.Energy != want.Energy {
			Te.Errorf("frame %d energy %v, want %v", i, f.Energy, want.Energy)
		}
		if f.Geom.Len() != want.Geom.Len() {
			Te.Fatalf("frame %d has %d atoms, want %d", i, f.Geom.Len(), want.Geom.Len())
		}
		for j := 0; j < f.Geom.Len(); j++ {
			for k := 0; k < 3; k++ {
				//values survive the fixed 6-decimal formatting.
				if math.Abs(f.Geom.Coords.At(j, k)-want.Geom.Coords.At(j, k)) > 5e-7 {
					Te.Errorf("frame %d atom %d coord %d: %v vs %v", i, j, k, f.Geom.Coords.At(j, k), want.Geom.Coords.At(j, k))
				}
			}
		}
	}
	fmt.Println("round trip ok for", name, "-", len(got), "frames")
}

func TestRoundTrip(Te *testing.T) {
	roundTrip(Te, filepath.Join(Te.TempDir(), "test.xyz"))
}

func TestRoundTripGzip(Te *testing.T) {
	roundTrip(Te, filepath.Join(Te.TempDir(), "test.xyz.gz"))
}

func TestRoundTripZstd(Te *testing.T) {
	roundTrip(Te, filepath.Join(Te.TempDir(), "test.xyz.zst"))
}

func TestFrameLayout(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "layout.xyz")
	if err := WriteFile(name, testFrames(Te)[:1]); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	want := "2\nEnergy=-1.000000 Label=TS\nH 0.000000 0.000000 0.000000\nH 0.000000 0.000000 0.740000\n"
	if string(b) != want {
		Te.Errorf("frame layout:\n%q\nwant:\n%q", b, want)
	}
}

func TestEmptyTrajectory(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "empty.xyz")
	if err := WriteFile(name, nil); err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() != 0 {
		Te.Errorf("empty trajectory wrote %d bytes", fi.Size())
	}
	//and reading it back yields zero frames, cleanly.
	r, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := r.Next(); err == nil {
		Te.Error("Next on an empty trajectory returned a frame")
	} else if _, ok := err.(grrm.LastFrameError); !ok {
		Te.Error("Next on an empty trajectory:", err)
	}
}

func TestWriteAfterClose(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "closed.xyz")
	w, err := NewWriter(name)
	if err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := w.WNext(testFrames(Te)[0]); err == nil {
		Te.Error("WNext on a closed writer did not fail")
	}
}

//The whole pipeline: log text in, two trajectory files out.
func TestEndToEnd(Te *testing.T) {
	log := `INITIAL STRUCTURE
H 0.0 0.0 0.0
H 0.0 0.0 0.74
ENERGY = -1.000000

IRC FOLLOWING (FORWARD)
# STEP 1
H 0.01 0.0 0.0
H 0.01 0.0 0.74
ENERGY = -1.000100
EQ EXIST WITHIN STEPSIZE
`
	path, err := grrm.Parse(strings.Split(log, "\n"))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	fwdout := filepath.Join(dir, "irc_forward.xyz")
	bwdout := filepath.Join(dir, "irc_backward.xyz")
	if err := WriteFile(fwdout, path.ForwardTraj()); err != nil {
		Te.Fatal(err)
	}
	if err := WriteFile(bwdout, path.BackwardTraj()); err != nil {
		Te.Fatal(err)
	}
	counts := map[string]int{fwdout: 2, bwdout: 1}
	for name, want := range counts {
		r, err := New(name)
		if err != nil {
			Te.Fatal(err)
		}
		n := 0
		for {
			if _, err := r.Next(); err != nil {
				if _, ok := err.(grrm.LastFrameError); !ok {
					Te.Error(err)
				}
				break
			}
			n++
		}
		if n != want {
			Te.Errorf("%s has %d frames, want %d", filepath.Base(name), n, want)
		}
	}
}
