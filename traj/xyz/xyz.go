/*
 * xyz.go, part of grrm-irc2xyz.
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

//Package xyz reads and writes multi-frame XYZ trajectory files. Each
//frame is the atom count, a comment line with the frame's energy and
//label, and one line per atom:
//
//	2
//	Energy=-1.000000 Label=TS
//	H 0.000000 0.000000 0.000000
//	H 0.000000 0.000000 0.740000
//
//Files ending in ".gz" or ".zst" are transparently compressed with
//gzip or z-standard, respectively; everything else is written plain.
package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	grrm "github.com/yukunbai/grrm-irc2xyz"
)

//Write!

//XYZW writes a trajectory frame by frame.
type XYZW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

//NewWriter creates (or truncates) the trajectory file name and returns
//a writer for it. The compression is chosen from the file name suffix.
func NewWriter(name string) (*XYZW, error) {
	S := new(XYZW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	S.h, err = anyNewWriter(S.f, name)
	if err != nil {
		S.f.Close()
		return nil, Error{"can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.filename = name
	S.writeable = true
	return S, nil
}

//WNext writes f as the next frame of the trajectory. It does not check
//that the atom count matches the previous frames; geometries along one
//path come from the same parser block, so that consistency is the
//caller's concern.
func (S *XYZW) WNext(f *grrm.Frame) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if f == nil || f.Step == nil {
		return Error{NilFrame, S.filename, []string{"WNext"}, true}
	}
	n := f.Geom.Len()
	if _, err := fmt.Fprintf(S.h, "%d\nEnergy=%.6f Label=%s\n", n, f.Energy, f.Label); err != nil {
		return Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	for i := 0; i < n; i++ {
		_, err := fmt.Fprintf(S.h, "%s %.6f %.6f %.6f\n", f.Geom.Atoms[i].Symbol, f.Geom.Coords.At(i, 0), f.Geom.Coords.At(i, 1), f.Geom.Coords.At(i, 2))
		if err != nil {
			return Error{err.Error(), S.filename, []string{"WNext"}, true}
		}
	}
	return nil
}

//Close flushes and closes the trajectory. The writer can not be used
//after this call.
func (S *XYZW) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	if err := S.h.Close(); err != nil {
		S.f.Close()
		return Error{err.Error(), S.filename, []string{"Close"}, true}
	}
	if err := S.f.Close(); err != nil {
		return Error{err.Error(), S.filename, []string{"Close"}, true}
	}
	return nil
}

//WriteFile writes all the given frames to the trajectory file name and
//closes it. An empty frame slice produces an empty file, not an error.
func WriteFile(name string, frames []*grrm.Frame) error {
	w, err := NewWriter(name)
	if err != nil {
		return err
	}
	for _, f := range frames {
		if err := w.WNext(f); err != nil {
			w.Close()
			return errDecorate(err, "WriteFile")
		}
	}
	return w.Close()
}

//flushCloser adapts a bufio.Writer to io.WriteCloser for the
//uncompressed case; the underlying file is closed separately.
type flushCloser struct {
	*bufio.Writer
}

func (f flushCloser) Close() error { return f.Flush() }

func anyNewWriter(a io.Writer, name string) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriterLevel(a, gzip.BestCompression)
	case strings.HasSuffix(name, ".zst"):
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return flushCloser{bufio.NewWriter(a)}, nil
	}
}

//Read!

//XYZR reads a trajectory frame by frame.
type XYZR struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	filename string
	readable bool
}

//This will cause additional indirections, but each Next call takes
//long enough to make those delays irrelevant. Also, why couldn't
//*zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close closes the object. It can not be used after this call.
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//New opens an XYZ trajectory for reading and returns a pointer to the
//handle. The compression is chosen from the file name suffix, as in
//NewWriter.
func New(name string) (*XYZR, error) {
	S := new(XYZR)
	S.filename = name
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(S.f)
	switch {
	case strings.HasSuffix(name, ".gz"):
		S.z, err = gzip.NewReader(buf)
	case strings.HasSuffix(name, ".zst"):
		var r *zstd.Decoder
		r, err = zstd.NewReader(buf)
		if err == nil {
			S.z = &stdql{r.Close, r}
		}
	}
	if err != nil {
		S.f.Close()
		return nil, Error{"can't set up decompression: " + err.Error(), name, []string{"New"}, true}
	}
	if S.z != nil {
		S.h = bufio.NewReader(S.z)
	} else {
		S.h = buf
	}
	S.readable = true
	return S, nil
}

//Readable returns true if the handle is readable (if it is possible to
//call Next on it).
func (S *XYZR) Readable() bool {
	return S.readable
}

//Next returns the next frame of the trajectory. At the normal end of
//the trajectory it closes the handle and returns a lastFrameError,
//which fulfills grrm.LastFrameError and is harmless.
func (S *XYZR) Next() (*grrm.Frame, error) {
	if !S.readable {
		return nil, Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	line, err := S.h.ReadString('\n')
	if strings.TrimSpace(line) == "" {
		//the trajectory just ended, nothing bad happened here.
		if err == io.EOF {
			S.Close()
			return nil, newlastFrameError(S.filename, "Next")
		}
		return nil, Error{"blank line where an atom count was expected", S.filename, []string{"Next"}, true}
	}
	natoms, err2 := strconv.Atoi(strings.TrimSpace(line))
	if err2 != nil {
		return nil, Error{"can't read atom count: " + err2.Error(), S.filename, []string{"Next"}, true}
	}
	comment, err := S.h.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	frame := &grrm.Frame{Step: &grrm.Step{}}
	frame.Energy, frame.Label, err = parseComment(comment)
	if err != nil {
		return nil, Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	atoms := make([]*grrm.Atom, 0, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err := S.h.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, Error{fmt.Sprintf("frame truncated at atom %d: %v", i, err), S.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{fmt.Sprintf("atom line %d ill formed: %q", i, line), S.filename, []string{"Next"}, true}
		}
		atoms = append(atoms, grrm.NewAtom(fields[0]))
		for _, v := range fields[1:4] {
			c, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("bad coordinate %q: %v", v, err), S.filename, []string{"Next"}, true}
			}
			coords = append(coords, c)
		}
	}
	frame.Geom = &grrm.Geometry{Atoms: atoms}
	if natoms > 0 {
		m, err := grrm.NewMatrix(coords)
		if err != nil {
			return nil, errDecorate(err, "Next")
		}
		frame.Geom.Coords = m
	}
	return frame, nil
}

//parseComment pulls the Energy and Label values out of a frame's
//comment line. Missing keys are not an error, so plain XYZ files from
//other tools stay readable; they just yield a zero energy and an empty
//label.
func parseComment(line string) (float64, string, error) {
	var energy float64
	var label string
	for _, field := range strings.Fields(line) {
		k, v, found := strings.Cut(field, "=")
		if !found {
			continue
		}
		switch k {
		case "Energy":
			e, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, "", fmt.Errorf("bad Energy in comment line: %v", err)
			}
			energy = e
		case "Label":
			label = v
		}
	}
	return energy, label, nil
}

//Close closes the object and marks it as unreadable.
func (S *XYZR) Close() {
	if !S.readable {
		return
	}
	if S.z != nil {
		S.z.Close()
	}
	S.f.Close()
	S.readable = false
}
