/*
 * precalc.go, part of godock.
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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"
)

//pair keys are canonical: t1 <= t2.
type pairKey struct {
	t1, t2 AtomType
}

func keyFor(t1, t2 AtomType) pairKey {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return pairKey{t1, t2}
}

// Precalculated holds, for every atom-type pair, the weighted sum of the
// separable components of the enabled distance-additive and usable terms,
// sampled uniformly in the squared distance. This is what the components
// contract buys: everything that depends on types and distance is
// tabulated once, and only the cheap charge recombination is left for
// evaluation time. Charge-independent terms land in the type-dependent
// coefficient and ride along for free.
//
// A Precalculated is immutable once built and safe for concurrent reads.
type Precalculated struct {
	cutoff float64
	factor float64 //samples per unit of r^2
	n      int     //samples per table
	tables map[pairKey][]Components
}

// NewPrecalculated tabulates the enabled distance-additive and usable
// terms of t. weights must provide one value per enabled term of those two
// families, in registry order, distance-additive first: the enabled-only
// projection a FilterExternal call produces begins with exactly that.
// factor is the sampling density, in samples per squared Angstrom; the
// original-style default is around 32.
//
// Every enabled distance-additive term must be charge-dependent (i.e.
// type-separable); a term that needs full atom records cannot be indexed
// by types and distance, and trying to tabulate it is an error.
func NewPrecalculated(t *Terms, weights []float64, factor float64) (*Precalculated, error) {
	needed := t.distanceAdditive.NumEnabled() + t.usable.NumEnabled()
	if len(weights) < needed {
		return nil, CError{fmt.Sprintf("Got %d weights for %d tabulated terms", len(weights), needed), []string{"NewPrecalculated"}}
	}
	if factor <= 0 {
		return nil, CError{fmt.Sprintf("Nonsensical sampling factor %g", factor), []string{"NewPrecalculated"}}
	}
	cutoff := math.Max(t.distanceAdditive.MaxCutoff(), t.usable.MaxCutoff())
	if cutoff <= 0 {
		return nil, CError{"No distance-bounded terms to tabulate", []string{"NewPrecalculated"}}
	}
	//make sure every enabled distance-additive term is separable before
	//doing any real work
	for i := 0; i < t.distanceAdditive.Len(); i++ {
		if !t.distanceAdditive.Enabled(i) {
			continue
		}
		if _, ok := any(t.distanceAdditive.Term(i)).(ChargeDependent); !ok {
			return nil, CError{fmt.Sprintf("Term %s is not type-separable, can't tabulate it", t.distanceAdditive.Term(i).Name()), []string{"NewPrecalculated"}}
		}
	}
	P := &Precalculated{
		cutoff: cutoff,
		factor: factor,
		n:      int(cutoff*cutoff*factor) + 3,
		tables: make(map[pairKey][]Components),
	}
	for t1 := AtomType(0); t1 < NumAtomTypes; t1++ {
		for t2 := t1; t2 < NumAtomTypes; t2++ {
			P.tables[pairKey{t1, t2}] = P.buildTable(t, weights, t1, t2)
		}
	}
	return P, nil
}

func (P *Precalculated) buildTable(t *Terms, weights []float64, t1, t2 AtomType) []Components {
	table := make([]Components, P.n)
	for k := range table {
		r := math.Sqrt(float64(k) / P.factor)
		var c Components
		wi := 0
		for i := 0; i < t.distanceAdditive.Len(); i++ {
			if !t.distanceAdditive.Enabled(i) {
				continue
			}
			w := weights[wi]
			wi++
			cd := any(t.distanceAdditive.Term(i)).(ChargeDependent) //checked at construction
			if r > cd.Cutoff() {
				continue
			}
			comp := cd.EvalComponents(t1, t2, r)
			comp.Scale(w)
			c.Add(comp)
		}
		for i := 0; i < t.usable.Len(); i++ {
			if !t.usable.Enabled(i) {
				continue
			}
			w := weights[wi]
			wi++
			u := t.usable.Term(i)
			if r > u.Cutoff() {
				continue
			}
			c.AddScalar(w * u.EvalPair(t1, t2, r))
		}
		table[k] = c
	}
	return table
}

// Cutoff returns the distance beyond which every tabulated value is zero.
func (P *Precalculated) Cutoff() float64 { return P.cutoff }

// EvalComponents returns the interpolated components for a type pair at
// squared distance r2.
func (P *Precalculated) EvalComponents(t1, t2 AtomType, r2 float64) Components {
	if r2 > P.cutoff*P.cutoff {
		return Components{}
	}
	table := P.tables[keyFor(t1, t2)]
	x := r2 * P.factor
	i := int(x)
	if i+1 >= len(table) {
		i = len(table) - 2
	}
	return lerpComponents(table[i], table[i+1], x-float64(i))
}

// Eval returns the tabulated, weighted score contribution for a concrete
// atom pair at squared distance r2, with the charge recombination applied
// on the spot.
func (P *Precalculated) Eval(a, b *Atom, r2 float64) float64 {
	c := P.EvalComponents(a.Type, b.Type, r2)
	if a.Type <= b.Type {
		return c.Apply(a.Charge, b.Charge)
	}
	//tables are canonical in type order, so the per-atom coefficients are
	//stored for the swapped pair
	return c.Apply(b.Charge, a.Charge)
}

//The tables are by far the biggest thing this package ever persists, so
//they go through zstd on their way to disk.

const precalcPayloadVersion byte = 1

// Write serializes the tables to w, zstd-compressed.
func (P *Precalculated) Write(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return CError{"Failed to set up compression: " + err.Error(), []string{"Precalculated.Write"}}
	}
	werr := func(err error) error {
		zw.Close()
		return CError{"Failed to write tables payload: " + err.Error(), []string{"Precalculated.Write"}}
	}
	if _, err := zw.Write([]byte{precalcPayloadVersion}); err != nil {
		return werr(err)
	}
	header := []interface{}{P.cutoff, P.factor, uint32(P.n), uint32(len(P.tables))}
	for _, v := range header {
		if err := binary.Write(zw, binary.LittleEndian, v); err != nil {
			return werr(err)
		}
	}
	//map iteration order is not deterministic, so walk the type pairs in
	//canonical order instead
	for t1 := AtomType(0); t1 < NumAtomTypes; t1++ {
		for t2 := t1; t2 < NumAtomTypes; t2++ {
			table, ok := P.tables[pairKey{t1, t2}]
			if !ok {
				continue
			}
			if err := binary.Write(zw, binary.LittleEndian, [2]int32{int32(t1), int32(t2)}); err != nil {
				return werr(err)
			}
			for _, c := range table {
				if err := binary.Write(zw, binary.LittleEndian, [4]float64{c.TypeDependent, c.ACharge, c.BCharge, c.ABCharge}); err != nil {
					return werr(err)
				}
			}
		}
	}
	if err := zw.Close(); err != nil {
		return CError{"Failed to finish compression: " + err.Error(), []string{"Precalculated.Write"}}
	}
	return nil
}

// WriteFile serializes the tables to the named file.
func (P *Precalculated) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "Precalculated.WriteFile"}}
	}
	defer f.Close()
	if err := P.Write(f); err != nil {
		return errDecorate(err, "Precalculated.WriteFile")
	}
	return nil
}

// ReadPrecalculatedFile reads tables from a file written by WriteFile.
func ReadPrecalculatedFile(name string) (*Precalculated, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "ReadPrecalculatedFile"}}
	}
	defer f.Close()
	P, err := ReadPrecalculated(f)
	if err != nil {
		return nil, errDecorate(err, "ReadPrecalculatedFile")
	}
	return P, nil
}

// ReadPrecalculated reads tables previously serialized with Write.
func ReadPrecalculated(r io.Reader) (*Precalculated, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, CError{"Failed to set up decompression: " + err.Error(), []string{"ReadPrecalculated"}}
	}
	defer zr.Close()
	rerr := func(err error) (*Precalculated, error) {
		return nil, CError{"Failed to read tables payload: " + err.Error(), []string{"ReadPrecalculated"}}
	}
	var version [1]byte
	if _, err := io.ReadFull(zr, version[:]); err != nil {
		return rerr(err)
	}
	if version[0] != precalcPayloadVersion {
		return nil, CError{fmt.Sprintf("Unknown tables payload version %d", version[0]), []string{"ReadPrecalculated"}}
	}
	P := &Precalculated{tables: make(map[pairKey][]Components)}
	var n, npairs uint32
	if err := binary.Read(zr, binary.LittleEndian, &P.cutoff); err != nil {
		return rerr(err)
	}
	if err := binary.Read(zr, binary.LittleEndian, &P.factor); err != nil {
		return rerr(err)
	}
	if err := binary.Read(zr, binary.LittleEndian, &n); err != nil {
		return rerr(err)
	}
	if err := binary.Read(zr, binary.LittleEndian, &npairs); err != nil {
		return rerr(err)
	}
	P.n = int(n)
	for p := uint32(0); p < npairs; p++ {
		var types [2]int32
		if err := binary.Read(zr, binary.LittleEndian, &types); err != nil {
			return rerr(err)
		}
		table := make([]Components, P.n)
		for k := range table {
			var raw [4]float64
			if err := binary.Read(zr, binary.LittleEndian, &raw); err != nil {
				return rerr(err)
			}
			table[k] = Components{raw[0], raw[1], raw[2], raw[3]}
		}
		P.tables[pairKey{AtomType(types[0]), AtomType(types[1])}] = table
	}
	return P, nil
}
