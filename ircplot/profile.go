/*
 * profile.go, part of grrm-irc2xyz.
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

//Package ircplot draws the energy profile along an IRC path.
package ircplot

import (
	"fmt"
	"image/color"

	grrm "github.com/yukunbai/grrm-irc2xyz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicProfilePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "IRC step"
	p.Y.Label.Text = "Energy (hartree)"
	p.Add(plotter.NewGrid())
	return p
}

//branchPoints lays a trajectory out on the step axis. The TS frame
//sits at zero; each following frame is one step further in the given
//direction (+1 forward, -1 backward).
func branchPoints(frames []*grrm.Frame, direction float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(frames))
	for i, f := range frames {
		pts = append(pts, plotter.XY{X: direction * float64(i), Y: f.Energy})
	}
	return pts
}

func addBranch(p *plot.Plot, pts plotter.XYs, name string, col color.RGBA) error {
	if len(pts) == 0 {
		return nil
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = col
	points.GlyphStyle.Color = col
	p.Add(line, points)
	p.Legend.Add(name, line)
	return nil
}

/*Profile produces a plot, in png format, of the energy along the IRC
  path described by the two trajectories fwd and bwd (each TS-first, as
  assembled by Path.ForwardTraj and Path.BackwardTraj). The extension
  must not be included in plotname. Returns an error or nil.*/
func Profile(fwd, bwd []*grrm.Frame, title, plotname string) error {
	if len(fwd) == 0 && len(bwd) == 0 {
		return fmt.Errorf("Profile: no frames to plot")
	}
	p := basicProfilePlot(title)
	err := addBranch(p, branchPoints(fwd, 1), "forward", color.RGBA{R: 196, A: 255})
	if err != nil {
		return err
	}
	err = addBranch(p, branchPoints(bwd, -1), "backward", color.RGBA{B: 196, A: 255})
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}
