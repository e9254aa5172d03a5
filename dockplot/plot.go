/*
 * plot.go, part of godock
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package dockplot draws the radial profiles of pairwise scoring terms,
//mostly as a sanity check when parametrizing them.
package dockplot

import (
	"fmt"
	"image/color"

	dock "github.com/rmera/godock"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//samples f from just above zero to end, every step.
func sampleCurve(f func(r float64) float64, step, end float64) plotter.XYs {
	n := int(end / step)
	pts := make(plotter.XYs, 0, n)
	for i := 1; i <= n; i++ {
		r := float64(i) * step
		pts = append(pts, plotter.XY{X: r, Y: f(r)})
	}
	return pts
}

/*RadialProfile samples a usable term for the given type pair, from zero to
  the term's cutoff with the given step, and saves the curve as a png named
  plotname (extension included). Returns an error or nil.*/
func RadialProfile(u dock.Usable, t1, t2 dock.AtomType, step float64, plotname string) error {
	if u == nil {
		panic("Given nil term")
	}
	if step <= 0 {
		return fmt.Errorf("dockplot: nonsensical step %g", step)
	}
	title := fmt.Sprintf("%s  %s-%s", u.Name(), t1, t2)
	p := basicPlot(title, "r (A)", "energy")
	pts := sampleCurve(func(r float64) float64 { return u.EvalPair(t1, t2, r) }, step, u.Cutoff())
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	return p.Save(5*vg.Inch, 5*vg.Inch, plotname)
}

/*ComponentsProfile plots the four separable coefficients of a
  charge-dependent term for the given type pair, one curve each, and saves
  the result as a png named plotname. Returns an error or nil.*/
func ComponentsProfile(cd dock.ChargeDependent, t1, t2 dock.AtomType, step float64, plotname string) error {
	if cd == nil {
		panic("Given nil term")
	}
	if step <= 0 {
		return fmt.Errorf("dockplot: nonsensical step %g", step)
	}
	title := fmt.Sprintf("%s  %s-%s", cd.Name(), t1, t2)
	p := basicPlot(title, "r (A)", "coefficient")
	curves := []struct {
		label string
		f     func(r float64) float64
		col   color.RGBA
	}{
		{"type", func(r float64) float64 { return cd.EvalComponents(t1, t2, r).TypeDependent }, color.RGBA{A: 255}},
		{"qa", func(r float64) float64 { return cd.EvalComponents(t1, t2, r).ACharge }, color.RGBA{R: 255, A: 255}},
		{"qb", func(r float64) float64 { return cd.EvalComponents(t1, t2, r).BCharge }, color.RGBA{G: 200, A: 255}},
		{"qa*qb", func(r float64) float64 { return cd.EvalComponents(t1, t2, r).ABCharge }, color.RGBA{B: 255, A: 255}},
	}
	for _, c := range curves {
		line, err := plotter.NewLine(sampleCurve(c.f, step, cd.Cutoff()))
		if err != nil {
			return err
		}
		line.Color = c.col
		p.Add(line)
		p.Legend.Add(c.label, line)
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, plotname)
}
