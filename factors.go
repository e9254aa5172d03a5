/*
 * factors.go, part of godock.
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

	"gonum.org/v1/gonum/floats"
)

// Factors is the accumulated scoring record for one model: one scalar per
// enabled term, split into the external (intermolecular) and internal
// (intramolecular) contributions. The two halves are combined against the
// same weight vector, aligned from its start, so the number of weights
// needed is the longer of the two, not their sum.
type Factors struct {
	External []float64
	Internal []float64
}

// Size returns the total number of stored contributions.
func (F *Factors) Size() int { return len(F.External) + len(F.Internal) }

// NumWeights returns how many weights Eval will look at.
func (F *Factors) NumWeights() int {
	if len(F.External) > len(F.Internal) {
		return len(F.External)
	}
	return len(F.Internal)
}

// Eval dot-products the external contributions against the first
// len(External) weights and, if includeInternal, adds the dot product of
// the internal contributions against the first len(Internal) weights of
// the same vector. The factors must already be filtered down to enabled
// slots and so must the weights; Eval does no filtering of its own.
func (F *Factors) Eval(weights []float64, includeInternal bool) float64 {
	e := floats.Dot(F.External, weights[:len(F.External)])
	if !includeInternal {
		return e
	}
	return e + floats.Dot(F.Internal, weights[:len(F.Internal)])
}

//The factors payload: a version byte, the two lengths, and the raw
//scalars, little endian. No reflection needed for six fixed fields' worth
//of slices.

const factorsPayloadVersion byte = 1

// Encode writes the factors record to w as a fixed-layout binary payload.
func (F *Factors) Encode(w io.Writer) error {
	if _, err := w.Write([]byte{factorsPayloadVersion}); err != nil {
		return CError{"Failed to write factors payload: " + err.Error(), []string{"Factors.Encode"}}
	}
	for _, s := range [][]float64{F.External, F.Internal} {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
			return CError{"Failed to write factors payload: " + err.Error(), []string{"Factors.Encode"}}
		}
		if err := binary.Write(w, binary.LittleEndian, s); err != nil {
			return CError{"Failed to write factors payload: " + err.Error(), []string{"Factors.Encode"}}
		}
	}
	return nil
}

// DecodeFactors reads a factors record previously written by Encode.
func DecodeFactors(r io.Reader) (*Factors, error) {
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, CError{"Failed to read factors payload: " + err.Error(), []string{"DecodeFactors"}}
	}
	if version[0] != factorsPayloadVersion {
		return nil, CError{fmt.Sprintf("Unknown factors payload version %d", version[0]), []string{"DecodeFactors"}}
	}
	F := new(Factors)
	for _, dst := range []*[]float64{&F.External, &F.Internal} {
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, CError{"Failed to read factors payload: " + err.Error(), []string{"DecodeFactors"}}
		}
		s := make([]float64, n)
		if err := binary.Read(r, binary.LittleEndian, s); err != nil {
			return nil, CError{"Failed to read factors payload: " + err.Error(), []string{"DecodeFactors"}}
		}
		*dst = s
	}
	return F, nil
}
