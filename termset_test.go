/*
 * termset_test.go, part of godock.
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

import "testing"

func threeTermSet() *TermSet[Usable] {
	S := new(TermSet[Usable])
	S.Add(1, NewGauss(0, 0.5, 1.0))
	S.Add(0, NewGauss(3, 2.0, 3.5))
	S.Add(1, NewRepulsion(0, 2.0))
	return S
}

//TestTermSetFilter checks that filtering a per-slot sequence keeps only
//the values aligned with enabled terms, in insertion order.
func TestTermSetFilter(Te *testing.T) {
	S := threeTermSet()
	if S.NumEnabled() != 2 {
		Te.Fatalf("Expected 2 enabled terms, got %d", S.NumEnabled())
	}
	out := S.Filter(NewCursor([]float64{0.1, 0.2, 0.3}), nil)
	if len(out) != 2 || !approx(out[0], 0.1) || !approx(out[1], 0.3) {
		Te.Errorf("Wrong filtered weights: %v", out)
	}
	//the disabled term still consumed its slot: feeding fewer values than
	//registered terms must blow up
	defer func() {
		if recover() == nil {
			Te.Errorf("Filtering with too few input values should panic")
		}
	}()
	S.Filter(NewCursor([]float64{0.1, 0.2}), nil)
}

//TestTermSetNames checks name reporting with and without the enabled
//restriction.
func TestTermSetNames(Te *testing.T) {
	S := threeTermSet()
	all := S.Names(false, nil)
	if len(all) != 3 {
		Te.Fatalf("Expected 3 names, got %v", all)
	}
	enabled := S.Names(true, nil)
	if len(enabled) != 2 || enabled[0] != all[0] || enabled[1] != all[2] {
		Te.Errorf("Wrong enabled names: %v (from %v)", enabled, all)
	}
}

//TestMaxCutoff checks that cutoff sizing is conservative: disabled terms
//count, and a set with no distance concept reports zero.
func TestMaxCutoff(Te *testing.T) {
	S := threeTermSet()
	if !approx(S.MaxCutoff(), 3.5) { //the 3.5 term is disabled, and still counts
		Te.Errorf("Expected max cutoff 3.5, got %v", S.MaxCutoff())
	}
	empty := new(TermSet[Usable])
	if !approx(empty.MaxCutoff(), 0) {
		Te.Errorf("Empty set should have zero max cutoff, got %v", empty.MaxCutoff())
	}
	ci := new(TermSet[ConfIndependent])
	ci.Add(1, ConstantTerm{})
	if !approx(ci.MaxCutoff(), 0) {
		Te.Errorf("Cutoff-less terms should report zero, got %v", ci.MaxCutoff())
	}
}

//TestUsableBaseTrap checks that a usable term that never implemented its
//atom-type evaluator fails loudly instead of quietly contributing zero.
func TestUsableBaseTrap(Te *testing.T) {
	type forgotten struct {
		UsableBase
	}
	var u Usable = forgotten{NewUsableBase("forgotten", 4.0)}
	defer func() {
		if recover() == nil {
			Te.Errorf("The default pair evaluator should panic")
		}
	}()
	u.EvalPair(PolarCarbon, OxygenAcceptor, 2.0)
}

//TestCursor checks the bookkeeping of the shared parameter cursor.
func TestCursor(Te *testing.T) {
	c := NewCursor([]float64{1, 2, 3})
	if c.Next() != 1 || c.Next() != 2 {
		Te.Errorf("Cursor returned values out of order")
	}
	if c.Pos() != 2 || c.Remaining() != 1 {
		Te.Errorf("Wrong cursor bookkeeping: pos %d, remaining %d", c.Pos(), c.Remaining())
	}
	c.Next()
	defer func() {
		if recover() == nil {
			Te.Errorf("Reading past the end should panic")
		}
	}()
	c.Next()
}
