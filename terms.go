/*
 * terms.go, part of godock.
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

import "math"

// Terms aggregates one registry per capability family and drives the
// evaluation of all of them over a model. It is the unit an external
// optimizer talks to. Assemble it once at startup and treat it as
// read-only afterwards; with that, any number of goroutines can score
// independent models through the same aggregator.
//
// The family order is fixed everywhere (names, sizes, factors, weight
// slots): distance-additive, usable, additive, intermolecular, and then,
// reported separately, conformation-independent.
type Terms struct {
	distanceAdditive TermSet[DistanceAdditive]
	usable           TermSet[Usable]
	additive         TermSet[Additive]
	intermolecular   TermSet[Intermolecular]
	confIndependent  TermSet[ConfIndependent]
}

// NewTerms returns an empty aggregator.
func NewTerms() *Terms {
	return new(Terms)
}

// AddDistanceAdditive registers a distance-additive term. A nonzero e
// enables it.
func (T *Terms) AddDistanceAdditive(e uint, t DistanceAdditive) {
	T.distanceAdditive.Add(e, t)
}

// AddChargeDependent registers a charge-dependent term among the
// distance-additive ones, wrapped so that its pair evaluation is always
// the fixed charge recombination of its components.
func (T *Terms) AddChargeDependent(e uint, t ChargeDependent) {
	T.distanceAdditive.Add(e, chargeEval{t})
}

// AddUsable registers a usable term.
func (T *Terms) AddUsable(e uint, t Usable) {
	T.usable.Add(e, t)
}

// AddAdditive registers an additive term.
func (T *Terms) AddAdditive(e uint, t Additive) {
	T.additive.Add(e, t)
}

// AddIntermolecular registers an intermolecular term.
func (T *Terms) AddIntermolecular(e uint, t Intermolecular) {
	T.intermolecular.Add(e, t)
}

// AddConfIndependent registers a conformation-independent term.
func (T *Terms) AddConfIndependent(e uint, t ConfIndependent) {
	T.confIndependent.Add(e, t)
}

// Names returns the term names across the distance-additive, usable,
// additive and intermolecular families, in that order, each family in
// insertion order. Conformation-independent terms are excluded: their
// parameters are not per-pair slots and are reported on their own.
func (T *Terms) Names(enabledOnly bool) []string {
	out := make([]string, 0, T.Size())
	out = T.distanceAdditive.Names(enabledOnly, out)
	out = T.usable.Names(enabledOnly, out)
	out = T.additive.Names(enabledOnly, out)
	out = T.intermolecular.Names(enabledOnly, out)
	return out
}

// SizeInternal returns the number of enabled terms in the families that
// contribute to the internal (intramolecular) score.
func (T *Terms) SizeInternal() int {
	return T.distanceAdditive.NumEnabled() + T.usable.NumEnabled() + T.additive.NumEnabled()
}

// Size returns the number of enabled terms contributing to the external
// score, which adds the intermolecular family to SizeInternal.
func (T *Terms) Size() int {
	return T.SizeInternal() + T.intermolecular.NumEnabled()
}

// SizeConfIndependent returns the total number of parameters declared by
// the conformation-independent terms (all of them, or only the enabled
// ones). This is not one per term: a term may consume several consecutive
// parameters.
func (T *Terms) SizeConfIndependent(enabledOnly bool) int {
	n := 0
	for i := 0; i < T.confIndependent.Len(); i++ {
		if !enabledOnly || T.confIndependent.Enabled(i) {
			n += T.confIndependent.Term(i).Size()
		}
	}
	return n
}

// MaxRCutoff returns the largest cutoff across all the distance-bounded
// families, enabled or not. Callers use it to size neighbor searches, so
// it must stay conservative.
func (T *Terms) MaxRCutoff() float64 {
	tmp := T.distanceAdditive.MaxCutoff()
	tmp = math.Max(tmp, T.usable.MaxCutoff())
	tmp = math.Max(tmp, T.additive.MaxCutoff())
	return tmp
}

//accumulatePair adds the contributions of one atom pair into the per-term
//accumulators of the three pairwise families. Terms whose cutoff is
//exceeded are skipped without being evaluated; the boundary is inclusive.
func (T *Terms) accumulatePair(m *Model, p Pair, da, us, ad []float64) {
	a := m.AtomAt(p.A)
	b := m.AtomAt(p.B)
	n := 0
	for i := 0; i < T.distanceAdditive.Len(); i++ {
		if !T.distanceAdditive.Enabled(i) {
			continue
		}
		t := T.distanceAdditive.Term(i)
		if p.R <= t.Cutoff() {
			da[n] += t.Eval(a, b, p.R)
		}
		n++
	}
	n = 0
	for i := 0; i < T.usable.Len(); i++ {
		if !T.usable.Enabled(i) {
			continue
		}
		t := T.usable.Term(i)
		if p.R <= t.Cutoff() {
			us[n] += t.EvalPair(a.Type, b.Type, p.R)
		}
		n++
	}
	n = 0
	for i := 0; i < T.additive.Len(); i++ {
		if !T.additive.Enabled(i) {
			continue
		}
		t := T.additive.Term(i)
		if p.R <= t.Cutoff() {
			ad[n] += t.Eval(m, p.A, p.B)
		}
		n++
	}
}

// EvalExternal accumulates, over every inter-structure pair of the model,
// one scalar per enabled term of the pairwise families, then appends one
// scalar per enabled intermolecular term, evaluated once on the whole
// model. The result is the external half of a Factors record, in registry
// order, families concatenated in the fixed order.
func (T *Terms) EvalExternal(m *Model) []float64 {
	da := make([]float64, T.distanceAdditive.NumEnabled())
	us := make([]float64, T.usable.NumEnabled())
	ad := make([]float64, T.additive.NumEnabled())
	for _, p := range m.InterPairs() {
		T.accumulatePair(m, p, da, us, ad)
	}
	out := make([]float64, 0, T.Size())
	out = append(out, da...)
	out = append(out, us...)
	out = append(out, ad...)
	for i := 0; i < T.intermolecular.Len(); i++ {
		if T.intermolecular.Enabled(i) {
			out = append(out, T.intermolecular.Term(i).Eval(m))
		}
	}
	return out
}

// EvalInternal is EvalExternal's intramolecular sibling: it accumulates
// over the model's internal (same-ligand, conformation-sensitive) pairs,
// for the pairwise families only.
func (T *Terms) EvalInternal(m *Model) []float64 {
	da := make([]float64, T.distanceAdditive.NumEnabled())
	us := make([]float64, T.usable.NumEnabled())
	ad := make([]float64, T.additive.NumEnabled())
	for _, p := range m.IntraPairs() {
		T.accumulatePair(m, p, da, us, ad)
	}
	out := make([]float64, 0, T.SizeInternal())
	out = append(out, da...)
	out = append(out, us...)
	out = append(out, ad...)
	return out
}

// EvalConfIndependent threads the running score x and the parameter cursor
// through every enabled conformation-independent term, in registry order,
// and returns the adjusted score. Each term reads exactly its Size()
// values from the cursor; disabled terms read nothing, since the external
// parameter sequence only carries the enabled ones.
func (T *Terms) EvalConfIndependent(in *ConfIndependentInputs, x float64, it *Cursor) float64 {
	for i := 0; i < T.confIndependent.Len(); i++ {
		if !T.confIndependent.Enabled(i) {
			continue
		}
		t := T.confIndependent.Term(i)
		before := it.Pos()
		x = t.Eval(in, x, it)
		if it.Pos()-before != t.Size() {
			panic("godock: conf-independent term " + t.Name() + " advanced the parameter cursor by the wrong amount")
		}
	}
	return x
}

// FilterExternal projects a flat per-slot weight vector (one slot per
// registered term of the external families, in the fixed order) down to
// the enabled slots.
func (T *Terms) FilterExternal(v []float64) []float64 {
	it := NewCursor(v)
	out := make([]float64, 0, T.Size())
	out = T.distanceAdditive.Filter(it, out)
	out = T.usable.Filter(it, out)
	out = T.additive.Filter(it, out)
	out = T.intermolecular.Filter(it, out)
	return out
}

// FilterInternal is FilterExternal for the internal families, i.e. without
// the intermolecular slots. It reads the same vector from the start;
// external and internal slots are aligned by position, not concatenated.
func (T *Terms) FilterInternal(v []float64) []float64 {
	it := NewCursor(v)
	out := make([]float64, 0, T.SizeInternal())
	out = T.distanceAdditive.Filter(it, out)
	out = T.usable.Filter(it, out)
	out = T.additive.Filter(it, out)
	return out
}

// Filter applies FilterExternal and FilterInternal to the two halves of a
// factors record in one call.
func (T *Terms) Filter(f *Factors) *Factors {
	return &Factors{
		External: T.FilterExternal(f.External),
		Internal: T.FilterInternal(f.Internal),
	}
}

// Score runs the whole pipeline for one model: external factors, internal
// factors if asked for, the weighted combination, and the
// conformation-independent adjustment. weights has one slot per registered
// term of the external families; confParams carries the parameters of the
// enabled conformation-independent terms, in registry order. in may be nil
// if no conformation-independent term is registered.
func (T *Terms) Score(m *Model, in *ConfIndependentInputs, weights, confParams []float64, includeInternal bool) float64 {
	f := &Factors{External: T.EvalExternal(m)}
	if includeInternal {
		f.Internal = T.EvalInternal(m)
	}
	x := f.Eval(T.FilterExternal(weights), includeInternal)
	if T.confIndependent.NumEnabled() == 0 {
		return x
	}
	return T.EvalConfIndependent(in, x, NewCursor(confParams))
}
