/*
 * termset.go, part of godock.
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

// TermSet is the registry for one capability family: an insertion-ordered
// collection of term instances, each paired with an enabled flag. The set
// owns its terms; once added, a term belongs to the set for good.
//
// Insertion order is load-bearing. External weight vectors are positional,
// one slot per registered term, and everything downstream (Names, Filter,
// the evaluation loops) walks the set in the same left-to-right order.
// A disabled term still keeps its slot; compacting the layout would break
// every weight vector already out there.
type TermSet[T Term] struct {
	enabled []bool
	terms   []T
}

//this can only fire if the code of TermSet itself is broken, since Add is
//the only mutator. Not a user-facing error.
func (S *TermSet[T]) check() {
	if len(S.enabled) != len(S.terms) {
		panic("godock: term set enabled flags and term instances diverged")
	}
}

// Add appends a term with its enabled flag (nonzero means enabled) at the
// end of the set, taking ownership of the term.
func (S *TermSet[T]) Add(e uint, t T) {
	S.enabled = append(S.enabled, e > 0)
	S.terms = append(S.terms, t)
}

// Len returns the number of registered terms, enabled or not.
func (S *TermSet[T]) Len() int { return len(S.terms) }

// Term returns the i-th registered term. Panics if out of range.
func (S *TermSet[T]) Term(i int) T { return S.terms[i] }

// Enabled returns whether the i-th registered term is enabled.
func (S *TermSet[T]) Enabled(i int) bool { return S.enabled[i] }

// NumEnabled counts the enabled terms.
func (S *TermSet[T]) NumEnabled() int {
	n := 0
	for _, e := range S.enabled {
		if e {
			n++
		}
	}
	return n
}

// Names appends the term names to out, in insertion order, restricted to
// the enabled ones if enabledOnly, and returns the extended slice.
func (S *TermSet[T]) Names(enabledOnly bool, out []string) []string {
	S.check()
	for i, t := range S.terms {
		if !enabledOnly || S.enabled[i] {
			out = append(out, t.Name())
		}
	}
	return out
}

// Filter consumes one value from the cursor per registered term, in a
// single left-to-right pass, and appends to out only the values aligned
// with enabled terms. This is how a flat per-slot weight vector gets
// projected down to the active subset. The cursor panics if it runs out
// of values before every registered term got its slot.
func (S *TermSet[T]) Filter(in *Cursor, out []float64) []float64 {
	S.check()
	for _, e := range S.enabled {
		v := in.Next()
		if e {
			out = append(out, v)
		}
	}
	return out
}

// MaxCutoff returns the largest cutoff among the member terms, or 0 if no
// member has the concept. Disabled terms count too: callers size spatial
// structures with this, and that sizing has to stay conservative.
func (S *TermSet[T]) MaxCutoff() float64 {
	tmp := 0.0
	for _, t := range S.terms {
		if c, ok := any(t).(interface{ Cutoff() float64 }); ok {
			tmp = math.Max(tmp, c.Cutoff())
		}
	}
	return tmp
}
