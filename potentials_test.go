/*
 * potentials_test.go, part of godock.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package dock

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSlopeStep(Te *testing.T) {
	//increasing ramp
	if !approx(slopeStep(1.5, 0.5, 1.0), 0.5) {
		Te.Errorf("Midpoint of the decreasing ramp should be 0.5")
	}
	if !approx(slopeStep(1.5, 0.5, 2.0), 0) || !approx(slopeStep(1.5, 0.5, 0.1), 1) {
		Te.Errorf("Decreasing ramp is not clamped")
	}
	if !approx(slopeStep(0, 1, 0.25), 0.25) {
		Te.Errorf("Increasing ramp went wrong")
	}
	if !approx(slopeStep(0, 1, -3), 0) || !approx(slopeStep(0, 1, 7), 1) {
		Te.Errorf("Increasing ramp is not clamped")
	}
}

func TestGauss(Te *testing.T) {
	g := NewGauss(0, 0.5, 8.0)
	d0 := OptimalDistance(HydrophobicCarbon, HydrophobicCarbon)
	if !approx(g.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0), 1) {
		Te.Errorf("The gaussian should peak at the optimal distance")
	}
	if got := g.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0+0.5); !approx(got, math.Exp(-1)) {
		Te.Errorf("One width out: got %v, wanted %v", got, math.Exp(-1))
	}
	//an offset term peaks past the contact distance instead
	g3 := NewGauss(3, 2.0, 8.0)
	if !approx(g3.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0+3), 1) {
		Te.Errorf("The offset gaussian should peak at d0+offset")
	}
}

func TestRepulsion(Te *testing.T) {
	rep := NewRepulsion(0, 8.0)
	d0 := OptimalDistance(OxygenAcceptor, NitrogenDonor)
	if got := rep.EvalPair(OxygenAcceptor, NitrogenDonor, d0-0.4); !approx(got, 0.16) {
		Te.Errorf("Penetration of 0.4 should cost 0.16, got %v", got)
	}
	if got := rep.EvalPair(OxygenAcceptor, NitrogenDonor, d0+0.1); !approx(got, 0) {
		Te.Errorf("No penalty past the optimal distance, got %v", got)
	}
}

func TestHydrophobicGating(Te *testing.T) {
	h := NewHydrophobic(0.5, 1.5, 8.0)
	d0 := OptimalDistance(HydrophobicCarbon, HydrophobicCarbon)
	if !approx(h.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0+0.3), 1) {
		Te.Errorf("Tight hydrophobic contact should count fully")
	}
	if !approx(h.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0+1.0), 0.5) {
		Te.Errorf("Mid-ramp hydrophobic contact should count half")
	}
	if !approx(h.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0+2.0), 0) {
		Te.Errorf("Far hydrophobic pair should count nothing")
	}
	//one polar atom is enough to kill the contact
	if !approx(h.EvalPair(HydrophobicCarbon, PolarCarbon, d0+0.3), 0) {
		Te.Errorf("A polar partner should gate the term to zero")
	}
	nh := NewNonHydrophobic(0.5, 1.5, 8.0)
	if !approx(nh.EvalPair(PolarCarbon, OxygenAcceptor, OptimalDistance(PolarCarbon, OxygenAcceptor)+0.3), 1) {
		Te.Errorf("Non-hydrophobic contact should count fully")
	}
	if !approx(nh.EvalPair(HydrophobicCarbon, PolarCarbon, d0+0.3), 0) {
		Te.Errorf("A hydrophobic partner should gate the non-hydrophobic term")
	}
}

func TestNonDirHBond(Te *testing.T) {
	hb := NewNonDirHBond(-0.7, 0, 8.0)
	d0 := OptimalDistance(NitrogenDonor, OxygenAcceptor)
	if !approx(hb.EvalPair(NitrogenDonor, OxygenAcceptor, d0-0.7), 1) {
		Te.Errorf("An h-bond at the good distance should count fully")
	}
	if !approx(hb.EvalPair(NitrogenDonor, OxygenAcceptor, d0-0.35), 0.5) {
		Te.Errorf("Mid-ramp h-bond should count half")
	}
	if !approx(hb.EvalPair(NitrogenDonor, OxygenAcceptor, d0+0.5), 0) {
		Te.Errorf("No reward past the bad distance")
	}
	//acceptor-donor works too, donor-donor doesn't
	if !approx(hb.EvalPair(OxygenAcceptor, NitrogenDonor, d0-0.7), 1) {
		Te.Errorf("The h-bond term should be direction-agnostic")
	}
	if !approx(hb.EvalPair(NitrogenDonor, NitrogenDonor, d0-0.7), 0) {
		Te.Errorf("Two donors can't bond each other")
	}
}

func TestVDW(Te *testing.T) {
	v := NewVDW(4, 8, 0, 100, 8.0)
	d0 := OptimalDistance(HydrophobicCarbon, HydrophobicCarbon)
	if got := v.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0); !approx(got, -1) {
		Te.Errorf("The well minimum should be -1 at the optimal distance, got %v", got)
	}
	if got := v.EvalPair(HydrophobicCarbon, HydrophobicCarbon, 1e-12); !approx(got, 100) {
		Te.Errorf("The repulsive wall should be capped, got %v", got)
	}
	if got := v.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0*3); got >= 0 || got <= -1 {
		Te.Errorf("Far into the tail the well should be weakly attractive, got %v", got)
	}
	//with smoothing, everything within the window sits at the minimum
	vs := NewVDW(4, 8, 0.3, 100, 8.0)
	if got := vs.EvalPair(HydrophobicCarbon, HydrophobicCarbon, d0+0.2); !approx(got, -1) {
		Te.Errorf("Smoothing should flatten the window around the minimum, got %v", got)
	}
}

func TestElectrostatic(Te *testing.T) {
	es := NewElectrostatic(2, 100, 8.0)
	c := es.EvalComponents(PolarCarbon, OxygenAcceptor, 2.0)
	if !approx(c.ABCharge, 0.25) {
		Te.Errorf("1/r^2 at r=2 should be 0.25, got %v", c.ABCharge)
	}
	if c.TypeDependent != 0 || c.ACharge != 0 || c.BCharge != 0 {
		Te.Errorf("All of the electrostatic value belongs in the charge product: %+v", c)
	}
	if got := es.EvalComponents(PolarCarbon, OxygenAcceptor, 1e-12).ABCharge; !approx(got, 100) {
		Te.Errorf("Short-range electrostatics should be capped, got %v", got)
	}
	//an uncharged pair feels nothing, whatever the distance
	a := &Atom{Type: PolarCarbon, Charge: 0}
	b := &Atom{Type: OxygenAcceptor, Charge: 0}
	if got := EvalCharged(es, a, b, 2.0); !approx(got, 0) {
		Te.Errorf("Uncharged pair should score zero, got %v", got)
	}
}

func TestAD4Solvation(Te *testing.T) {
	s := NewAD4Solvation(3.6, 0.01097, 8.0)
	t1, t2 := PolarCarbon, OxygenAcceptor
	r := 2.5
	g := math.Exp(-(r * r) / (2 * 3.6 * 3.6))
	c := s.EvalComponents(t1, t2, r)
	if want := (t1.Solvation()*t2.Volume() + t2.Solvation()*t1.Volume()) * g; !approx(c.TypeDependent, want) {
		Te.Errorf("Type-dependent coefficient: got %v, wanted %v", c.TypeDependent, want)
	}
	if want := 0.01097 * t2.Volume() * g; !approx(c.ACharge, want) {
		Te.Errorf("First-charge coefficient: got %v, wanted %v", c.ACharge, want)
	}
	if want := 0.01097 * t1.Volume() * g; !approx(c.BCharge, want) {
		Te.Errorf("Second-charge coefficient: got %v, wanted %v", c.BCharge, want)
	}
	if c.ABCharge != 0 {
		Te.Errorf("Desolvation has no charge-product part, got %v", c.ABCharge)
	}
}

func TestGyrationPenalty(Te *testing.T) {
	//two heavy atoms 6 A apart: radius of gyration 3
	atoms := []*Atom{
		{Symbol: "C", Type: HydrophobicCarbon},
		{Symbol: "C", Type: HydrophobicCarbon},
	}
	coords := mat.NewDense(2, 3, []float64{0, 0, 0, 6, 0, 0})
	m, err := NewModel(atoms, coords, nil, nil, []Ligand{{0, 2}}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !approx(m.Gyration(), 3) {
		Te.Fatalf("Expected radius of gyration 3, got %v", m.Gyration())
	}
	if got := NewGyrationPenalty(2.0).Eval(m); !approx(got, 1) {
		Te.Errorf("Excess of 1 over the threshold should cost 1, got %v", got)
	}
	if got := NewGyrationPenalty(5.0).Eval(m); !approx(got, 0) {
		Te.Errorf("A compact pose should not be penalized, got %v", got)
	}
}

//TestConfIndependentFormulas checks each whole-structure correction with
//one parameter value and hand-computed results, and that each consumes
//exactly its declared parameter count.
func TestConfIndependentFormulas(Te *testing.T) {
	in := &ConfIndependentInputs{
		NumTors:             4,
		NumHeavyAtoms:       10,
		NumHydrophobicAtoms: 3,
		LigandLengthsSum:    5,
	}
	cases := []struct {
		term ConfIndependent
		want float64
	}{
		{NumTorsDiv{}, 1.0 / (1 + 0.5*4/5.0)},
		{NumTorsAdd{}, 1.0 + 0.5*4},
		{NumTorsSqr{}, 1.0 + 0.5*16},
		{NumTorsSqrt{}, 1.0 + 0.5*2},
		{NumHeavyAtoms{}, 1.0 + 0.5*10},
		{NumHydrophobicAtoms{}, 1.0 + 0.5*3},
		{LigandLength{}, 1.0 + 0.5*5},
		{ConstantTerm{}, 1.5},
	}
	for _, c := range cases {
		it := NewCursor([]float64{0.5})
		got := c.term.Eval(in, 1.0, it)
		if !approx(got, c.want) {
			Te.Errorf("%s: got %v, wanted %v", c.term.Name(), got, c.want)
		}
		if it.Pos() != c.term.Size() {
			Te.Errorf("%s consumed %d parameters, declared %d", c.term.Name(), it.Pos(), c.term.Size())
		}
	}
}
