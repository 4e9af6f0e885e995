/*
 * main.go, part of grrm-irc2xyz.
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

//irc2xyz converts a GRRM IRC log into two multi-frame XYZ trajectory
//files, one per branch, suitable for visualization in molecular
//viewers.
//
//	irc2xyz [flags] [logfile [fwd_out [bwd_out]]]
package main

import (
	"flag"
	"fmt"
	"os"

	grrm "github.com/yukunbai/grrm-irc2xyz"
	"github.com/yukunbai/grrm-irc2xyz/ircplot"
	"github.com/yukunbai/grrm-irc2xyz/traj/xyz"
)

func main() {
	profile := flag.String("profile", "", "also write an energy-profile plot to `name`.png")
	title := flag.String("title", "Energy profile along IRC", "title for the energy-profile plot")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [logfile [fwd_out [bwd_out]]]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Converts a GRRM log to separate forward/backward .xyz trajectories.")
		flag.PrintDefaults()
	}
	flag.Parse()

	logfile, fwdout, bwdout := "1.log", "irc_forward.xyz", "irc_backward.xyz"
	args := flag.Args()
	if len(args) > 0 {
		logfile = args[0]
	}
	if len(args) > 1 {
		fwdout = args[1]
	}
	if len(args) > 2 {
		bwdout = args[2]
	}

	if _, err := os.Stat(logfile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s not found.\n", logfile)
		os.Exit(1)
	}

	path, err := grrm.ParseFile(logfile)
	if err != nil {
		//this covers both malformed blocks and a log with no TS
		//structure at all; neither is worth writing trajectories for.
		fmt.Fprintf(os.Stderr, "irc2xyz: %v\n", err)
		os.Exit(1)
	}

	fwd := path.ForwardTraj()
	bwd := path.BackwardTraj()

	for _, v := range []struct {
		frames []*grrm.Frame
		out    string
	}{{fwd, fwdout}, {bwd, bwdout}} {
		if err := xyz.WriteFile(v.out, v.frames); err != nil {
			fmt.Fprintf(os.Stderr, "irc2xyz: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Written XYZ trajectory: %s\n", v.out)
	}

	if *profile != "" {
		if err := ircplot.Profile(fwd, bwd, *title, *profile); err != nil {
			fmt.Fprintf(os.Stderr, "irc2xyz: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Written energy profile: %s.png\n", *profile)
	}
}
