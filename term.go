/*
 * term.go, part of godock.
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

// A Term is one pluggable unit of the scoring function. The interesting
// behavior lives in the capability interfaces below; a term implements
// whichever of them its physics requires, not all of them.
type Term interface {
	Name() string
}

// DistanceAdditive terms evaluate a contribution from a pair of atoms and
// their separation r. The contribution is defined to be zero beyond
// Cutoff, and the evaluation machinery never calls Eval past it: some
// potentials are numerically unstable (or just meaningless) out there.
// The cutoff boundary itself is inclusive.
type DistanceAdditive interface {
	Term
	Cutoff() float64
	Eval(a, b *Atom, r float64) float64
}

// ChargeDependent terms must separate their value into the four Components
// coefficients, which depend only on the atom types and r. They never
// implement the pair evaluation themselves; the fixed recombination is
// applied in exactly one place (EvalCharged) so that the type/distance part
// can be precalculated while the charge sensitivity stays lazy.
type ChargeDependent interface {
	Term
	Cutoff() float64
	EvalComponents(t1, t2 AtomType, r float64) Components
}

// EvalCharged evaluates a charge-dependent term for a concrete atom pair:
// the separable components for the pair's types, recombined with the pair's
// actual charges.
func EvalCharged(t ChargeDependent, a, b *Atom, r float64) float64 {
	c := t.EvalComponents(a.Type, b.Type, r)
	return c.Apply(a.Charge, b.Charge)
}

//chargeEval turns a ChargeDependent into a DistanceAdditive. This is the
//only Eval a charge-dependent term ever gets.
type chargeEval struct {
	ChargeDependent
}

func (c chargeEval) Eval(a, b *Atom, r float64) float64 {
	return EvalCharged(c.ChargeDependent, a, b, r)
}

// Usable terms are distance-additive terms whose natural signature takes
// the two atom types rather than full atom records; they are the ones a
// type-pair lookup table can hold directly.
type Usable interface {
	Term
	Cutoff() float64
	EvalPair(t1, t2 AtomType, r float64) float64
}

// AsDistanceAdditive adapts a Usable to the two-atom-record signature by
// forwarding to the atom-type evaluator.
func AsDistanceAdditive(u Usable) DistanceAdditive {
	return usableEval{u}
}

type usableEval struct {
	Usable
}

func (u usableEval) Eval(a, b *Atom, r float64) float64 {
	return u.EvalPair(a.Type, b.Type, r)
}

// UsableBase carries the name and cutoff of a usable term, plus a default
// EvalPair that fails loudly. A term embedding it must shadow EvalPair with
// its own; the default exists to catch the author who forgets, not to be
// called. Its zero return is unreachable and must never be read as a
// legitimate zero contribution.
type UsableBase struct {
	name   string
	cutoff float64
}

// NewUsableBase returns a UsableBase with the given name and cutoff.
func NewUsableBase(name string, cutoff float64) UsableBase {
	return UsableBase{name: name, cutoff: cutoff}
}

func (u UsableBase) Name() string    { return u.name }
func (u UsableBase) Cutoff() float64 { return u.cutoff }

func (u UsableBase) EvalPair(t1, t2 AtomType, r float64) float64 {
	panic("godock: usable term " + u.name + " does not implement its atom-type evaluator")
}

// Additive terms evaluate from the whole model and two atom references,
// for potentials that need more than types and distance (bonded topology,
// say). They still carry a cutoff on the pair separation.
type Additive interface {
	Term
	Cutoff() float64
	Eval(m *Model, a, b AtomRef) float64
}

// Intermolecular terms evaluate once per model, with no pairwise
// decomposition, for effects that are inherently global.
type Intermolecular interface {
	Term
	Eval(m *Model) float64
}

// ConfIndependent terms evaluate from the precomputed structural
// descriptors, threading the running score x and a cursor into the shared
// parameter sequence. A term must advance the cursor by exactly Size()
// values, whether it uses them all or not; the flat parameter layout is
// part of the external contract and terms don't get to perturb it.
type ConfIndependent interface {
	Term
	Size() int
	Eval(in *ConfIndependentInputs, x float64, it *Cursor) float64
}

//termBase carries the name shared by every term kind.
type termBase struct {
	name string
}

func (t termBase) Name() string { return t.name }

//boundedBase adds the cutoff of distance-bounded terms.
type boundedBase struct {
	termBase
	cutoff float64
}

func (t boundedBase) Cutoff() float64 { return t.cutoff }
