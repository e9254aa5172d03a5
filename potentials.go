/*
 * potentials.go, part of godock.
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
	"fmt"
	"math"
)

//The standard potential zoo. All the pairwise ones work on the
//surface-to-surface distance, i.e. the separation minus the sum of the
//van der Waals radii of the pair.

const epsilonR = 1e-10 //distances below this count as zero

//slopeStep ramps linearly from 0 at xBad to 1 at xGood, clamped outside,
//whatever the relative order of the two.
func slopeStep(xBad, xGood, x float64) float64 {
	if xBad < xGood {
		if x <= xBad {
			return 0
		}
		if x >= xGood {
			return 1
		}
	} else {
		if x >= xBad {
			return 0
		}
		if x <= xGood {
			return 1
		}
	}
	return (x - xBad) / (xGood - xBad)
}

// Gauss is the attractive gaussian well centered Offset past the optimal
// pair distance, with the given Width.
type Gauss struct {
	UsableBase
	Offset, Width float64
}

// NewGauss returns a gaussian term with the given offset, width and cutoff.
func NewGauss(offset, width, cutoff float64) *Gauss {
	name := fmt.Sprintf("gauss(o=%g,_w=%g,_c=%g)", offset, width, cutoff)
	return &Gauss{NewUsableBase(name, cutoff), offset, width}
}

func (g *Gauss) EvalPair(t1, t2 AtomType, r float64) float64 {
	d := r - (OptimalDistance(t1, t2) + g.Offset)
	return math.Exp(-(d * d) / (g.Width * g.Width))
}

// Repulsion is the quadratic penalty for pairs closer than Offset past
// their optimal distance; zero further out.
type Repulsion struct {
	UsableBase
	Offset float64
}

// NewRepulsion returns a repulsion term with the given offset and cutoff.
func NewRepulsion(offset, cutoff float64) *Repulsion {
	name := fmt.Sprintf("repulsion(o=%g,_c=%g)", offset, cutoff)
	return &Repulsion{NewUsableBase(name, cutoff), offset}
}

func (rep *Repulsion) EvalPair(t1, t2 AtomType, r float64) float64 {
	d := r - (OptimalDistance(t1, t2) + rep.Offset)
	if d > 0 {
		return 0
	}
	return d * d
}

// Hydrophobic rewards contact between two hydrophobic atoms: 1 when their
// surface separation is at Good or below, ramping down to 0 at Bad.
type Hydrophobic struct {
	UsableBase
	Good, Bad float64
}

// NewHydrophobic returns a hydrophobic contact term.
func NewHydrophobic(good, bad, cutoff float64) *Hydrophobic {
	name := fmt.Sprintf("hydrophobic(g=%g,_b=%g,_c=%g)", good, bad, cutoff)
	return &Hydrophobic{NewUsableBase(name, cutoff), good, bad}
}

func (h *Hydrophobic) EvalPair(t1, t2 AtomType, r float64) float64 {
	if !t1.Hydrophobic() || !t2.Hydrophobic() {
		return 0
	}
	return slopeStep(h.Bad, h.Good, r-OptimalDistance(t1, t2))
}

// NonHydrophobic is the same ramp, counted only when neither atom is
// hydrophobic.
type NonHydrophobic struct {
	UsableBase
	Good, Bad float64
}

// NewNonHydrophobic returns a non-hydrophobic contact term.
func NewNonHydrophobic(good, bad, cutoff float64) *NonHydrophobic {
	name := fmt.Sprintf("non_hydrophobic(g=%g,_b=%g,_c=%g)", good, bad, cutoff)
	return &NonHydrophobic{NewUsableBase(name, cutoff), good, bad}
}

func (h *NonHydrophobic) EvalPair(t1, t2 AtomType, r float64) float64 {
	if t1.Hydrophobic() || t2.Hydrophobic() {
		return 0
	}
	return slopeStep(h.Bad, h.Good, r-OptimalDistance(t1, t2))
}

// NonDirHBond rewards donor-acceptor pairs at hydrogen-bonding distance,
// with no directional component: 1 at Good surface separation or below,
// 0 at Bad and beyond.
type NonDirHBond struct {
	UsableBase
	Good, Bad float64
}

// NewNonDirHBond returns a non-directional hydrogen-bond term.
func NewNonDirHBond(good, bad, cutoff float64) *NonDirHBond {
	name := fmt.Sprintf("non_dir_h_bond(g=%g,_b=%g,_c=%g)", good, bad, cutoff)
	return &NonDirHBond{NewUsableBase(name, cutoff), good, bad}
}

func (h *NonDirHBond) EvalPair(t1, t2 AtomType, r float64) float64 {
	if !HBondPossible(t1, t2) {
		return 0
	}
	return slopeStep(h.Bad, h.Good, r-OptimalDistance(t1, t2))
}

// VDW is an M-N Lennard-Jones-style potential with its minimum of -1 at
// the optimal pair distance. M must be the smaller exponent. Smoothing
// flattens the curve in a window around the minimum, and Cap bounds the
// repulsive wall so short contacts don't blow up the score.
type VDW struct {
	UsableBase
	M, N           float64
	Smoothing, Cap float64
}

// NewVDW returns an M-N van der Waals term.
func NewVDW(m, n, smoothing, cap, cutoff float64) *VDW {
	name := fmt.Sprintf("vdw(i=%g,_j=%g,_s=%g,_^=%g,_c=%g)", m, n, smoothing, cap, cutoff)
	return &VDW{NewUsableBase(name, cutoff), m, n, smoothing, cap}
}

func (v *VDW) EvalPair(t1, t2 AtomType, r float64) float64 {
	d0 := OptimalDistance(t1, t2)
	if v.Smoothing > 0 {
		//snap r to the minimum within the smoothing window
		if r > d0+v.Smoothing {
			r -= v.Smoothing
		} else if r < d0-v.Smoothing {
			r += v.Smoothing
		} else {
			r = d0
		}
	}
	if r < epsilonR {
		return v.Cap
	}
	ci := -math.Pow(d0, v.M) * v.N / (v.N - v.M)
	cj := math.Pow(d0, v.N) * v.M / (v.N - v.M)
	e := ci/math.Pow(r, v.M) + cj/math.Pow(r, v.N)
	return math.Min(v.Cap, e)
}

// Electrostatic is the screened Coulomb interaction 1/r^Exponent, capped
// at short range. All of its value sits in the charge-product coefficient,
// so uncharged pairs feel nothing.
type Electrostatic struct {
	boundedBase
	Exponent float64
	Cap      float64
}

// NewElectrostatic returns an electrostatic term with the given distance
// exponent, short-range cap and cutoff.
func NewElectrostatic(exponent, cap, cutoff float64) *Electrostatic {
	name := fmt.Sprintf("electrostatic(i=%g,_^=%g,_c=%g)", exponent, cap, cutoff)
	return &Electrostatic{boundedBase{termBase{name}, cutoff}, exponent, cap}
}

func (e *Electrostatic) EvalComponents(t1, t2 AtomType, r float64) Components {
	tmp := e.Cap
	if r > epsilonR {
		tmp = math.Min(e.Cap, 1.0/math.Pow(r, e.Exponent))
	}
	return Components{ABCharge: tmp}
}

// AD4Solvation is the AutoDock4-style gaussian desolvation term. The
// type-dependent coefficient carries the atomic solvation parameters; the
// per-charge coefficients carry the charge-proportional part, weighted by
// ChargeWeight. The AutoDock model wants charge magnitudes there, so a
// model built for this term should store |q| rather than signed charges,
// or accept the sign sensitivity.
type AD4Solvation struct {
	boundedBase
	Sigma        float64
	ChargeWeight float64
}

// NewAD4Solvation returns a desolvation term with the given gaussian
// width, per-charge solvation weight and cutoff.
func NewAD4Solvation(sigma, chargeWeight, cutoff float64) *AD4Solvation {
	name := fmt.Sprintf("ad4_solvation(d-sigma=%g,_s/q=%g,_c=%g)", sigma, chargeWeight, cutoff)
	return &AD4Solvation{boundedBase{termBase{name}, cutoff}, sigma, chargeWeight}
}

func (s *AD4Solvation) EvalComponents(t1, t2 AtomType, r float64) Components {
	g := math.Exp(-(r * r) / (2 * s.Sigma * s.Sigma))
	var c Components
	c.TypeDependent = (t1.Solvation()*t2.Volume() + t2.Solvation()*t1.Volume()) * g
	c.ACharge = s.ChargeWeight * t2.Volume() * g
	c.BCharge = s.ChargeWeight * t1.Volume() * g
	return c
}

// GyrationPenalty penalizes poses more spread out than Threshold, by the
// excess radius of gyration of the movable heavy atoms. A whole-structure
// effect, so it lives in the intermolecular family.
type GyrationPenalty struct {
	termBase
	Threshold float64
}

// NewGyrationPenalty returns a gyration penalty with the given threshold.
func NewGyrationPenalty(threshold float64) *GyrationPenalty {
	return &GyrationPenalty{termBase{fmt.Sprintf("gyration(t=%g)", threshold)}, threshold}
}

func (g *GyrationPenalty) Eval(m *Model) float64 {
	rg := m.Gyration()
	if rg <= g.Threshold {
		return 0
	}
	return rg - g.Threshold
}

//The conformation-independent terms. Each consumes exactly one parameter
//from the shared sequence; the descriptors they read are in
//ConfIndependentInputs.

// NumTorsDiv divides the running score by a torsion-count factor, the
// usual entropic correction for flexible ligands.
type NumTorsDiv struct{}

func (NumTorsDiv) Name() string { return "num_tors_div" }
func (NumTorsDiv) Size() int    { return 1 }
func (NumTorsDiv) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	w := it.Next()
	return x / (1 + w*in.NumTors/5.0)
}

// NumTorsAdd adds a linear torsion-count penalty.
type NumTorsAdd struct{}

func (NumTorsAdd) Name() string { return "num_tors_add" }
func (NumTorsAdd) Size() int    { return 1 }
func (NumTorsAdd) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	return x + it.Next()*in.NumTors
}

// NumTorsSqr adds a quadratic torsion-count penalty.
type NumTorsSqr struct{}

func (NumTorsSqr) Name() string { return "num_tors_sqr" }
func (NumTorsSqr) Size() int    { return 1 }
func (NumTorsSqr) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	return x + it.Next()*in.NumTors*in.NumTors
}

// NumTorsSqrt adds a square-root torsion-count penalty.
type NumTorsSqrt struct{}

func (NumTorsSqrt) Name() string { return "num_tors_sqrt" }
func (NumTorsSqrt) Size() int    { return 1 }
func (NumTorsSqrt) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	return x + it.Next()*math.Sqrt(in.NumTors)
}

// NumHeavyAtoms adds a linear size penalty on the heavy-atom count.
type NumHeavyAtoms struct{}

func (NumHeavyAtoms) Name() string { return "num_heavy_atoms" }
func (NumHeavyAtoms) Size() int    { return 1 }
func (NumHeavyAtoms) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	return x + it.Next()*in.NumHeavyAtoms
}

// NumHydrophobicAtoms adds a linear penalty on the hydrophobic heavy-atom
// count.
type NumHydrophobicAtoms struct{}

func (NumHydrophobicAtoms) Name() string { return "num_hydrophobic_atoms" }
func (NumHydrophobicAtoms) Size() int    { return 1 }
func (NumHydrophobicAtoms) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	return x + it.Next()*in.NumHydrophobicAtoms
}

// LigandLength adds a penalty on the summed ligand chain lengths.
type LigandLength struct{}

func (LigandLength) Name() string { return "ligand_length" }
func (LigandLength) Size() int    { return 1 }
func (LigandLength) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	return x + it.Next()*in.LigandLengthsSum
}

// ConstantTerm shifts the score by its parameter, regardless of the
// structure.
type ConstantTerm struct{}

func (ConstantTerm) Name() string { return "constant_term" }
func (ConstantTerm) Size() int    { return 1 }
func (ConstantTerm) Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	return x + it.Next()
}
