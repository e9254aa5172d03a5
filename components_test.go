/*
 * components_test.go, part of godock.
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
)

const tolerance = 1e-12

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

//TestComponentsAlgebra checks that adding component sets works
//element-wise and that a plain scalar only lands in the type-dependent
//coefficient.
func TestComponentsAlgebra(Te *testing.T) {
	c1 := Components{1, 2, 3, 4}
	c2 := Components{10, 20, 30, 40}
	c1.Add(c2)
	if c1 != (Components{11, 22, 33, 44}) {
		Te.Errorf("Component addition went wrong: %+v", c1)
	}
	c1.AddScalar(0.5)
	if c1 != (Components{11.5, 22, 33, 44}) {
		Te.Errorf("Scalar addition touched the wrong coefficients: %+v", c1)
	}
	c3 := Components{1, 2, 3, 4}
	c3.Scale(2)
	if c3 != (Components{2, 4, 6, 8}) {
		Te.Errorf("Scaling went wrong: %+v", c3)
	}
}

//TestChargeReconstruction checks the fixed recombination against a direct
//calculation, for a term with known, constant components.
func TestChargeReconstruction(Te *testing.T) {
	term := &flatCharge{boundedBase{termBase{"flat"}, 8.0}, Components{1.0, 0.5, 0.5, 0.0}}
	a := &Atom{Symbol: "C", Type: PolarCarbon, Charge: 2.0}
	b := &Atom{Symbol: "O", Type: OxygenAcceptor, Charge: -1.0}
	got := EvalCharged(term, a, b, 3.0)
	want := 1.0 + 2.0*0.5 + (-1.0)*0.5 + 2.0*(-1.0)*0.0
	if !approx(got, want) {
		Te.Errorf("Reconstructed %v, wanted %v", got, want)
	}
	//the wrapped version used inside the registries must agree
	wrapped := chargeEval{term}
	if !approx(wrapped.Eval(a, b, 3.0), want) {
		Te.Errorf("Wrapped evaluation disagrees with EvalCharged")
	}
}

//TestChargeReconstructionVaries does the same with components that
//actually depend on the distance.
func TestChargeReconstructionVaries(Te *testing.T) {
	es := NewElectrostatic(1, 100, 8.0)
	a := &Atom{Symbol: "N", Type: NitrogenDonor, Charge: -0.3}
	b := &Atom{Symbol: "O", Type: OxygenAcceptor, Charge: 0.2}
	for _, r := range []float64{0.5, 1.0, 2.0, 7.99} {
		c := es.EvalComponents(a.Type, b.Type, r)
		want := c.TypeDependent + a.Charge*c.ACharge + b.Charge*c.BCharge + a.Charge*b.Charge*c.ABCharge
		if got := EvalCharged(es, a, b, r); !approx(got, want) {
			Te.Errorf("At r=%v got %v, wanted %v", r, got, want)
		}
	}
}

//flatCharge is a charge-dependent term returning the same components for
//every input. Only useful for testing.
type flatCharge struct {
	boundedBase
	c Components
}

func (f *flatCharge) EvalComponents(t1, t2 AtomType, r float64) Components {
	return f.c
}
