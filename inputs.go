/*
 * inputs.go, part of godock.
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
)

// ConfIndependentInputs are the scalar whole-structure descriptors
// consumed by the conformation-independent terms. They depend on the
// topology only, never on the pose, so they are extracted once per model
// and read-only afterwards. All counts are kept as float64 since that is
// how the terms consume them.
type ConfIndependentInputs struct {
	NumTors             float64 //active torsions (rotatable heavy-heavy bonds)
	NumRotors           float64
	NumHeavyAtoms       float64
	NumHydrophobicAtoms float64
	LigandMaxNumHBonds  float64 //donors+acceptors of the richest ligand
	NumLigands          float64
	LigandLengthsSum    float64 //longest chain of each ligand, in bonds, summed
}

// NewConfIndependentInputs extracts the descriptors from a model.
func NewConfIndependentInputs(m *Model) *ConfIndependentInputs {
	in := new(ConfIndependentInputs)
	in.NumLigands = float64(len(m.Ligands()))
	for _, l := range m.Ligands() {
		hbonds := 0
		for i := l.Begin; i < l.End; i++ {
			t := m.Atom(i).Type
			if t.Donor() {
				hbonds++
			}
			if t.Acceptor() {
				hbonds++
			}
		}
		if float64(hbonds) > in.LigandMaxNumHBonds {
			in.LigandMaxNumHBonds = float64(hbonds)
		}
		in.LigandLengthsSum += float64(m.LigandLength(l))
	}
	for _, b := range m.bonds {
		if b.Rotatable && m.Atom(b.A).Type.Heavy() && m.Atom(b.B).Type.Heavy() {
			in.NumTors++
		}
	}
	for i := 0; i < m.Len(); i++ {
		t := m.Atom(i).Type
		if !t.Heavy() {
			continue
		}
		in.NumHeavyAtoms++
		if t.Hydrophobic() {
			in.NumHydrophobicAtoms++
		}
		//every rotatable heavy-heavy bond is seen from both of its ends
		in.NumRotors += 0.5 * float64(m.AtomRotors(i))
	}
	return in
}

// Names returns the descriptor names, in the same order as Slice.
func (in *ConfIndependentInputs) Names() []string {
	return []string{
		"num_tors",
		"num_rotors",
		"num_heavy_atoms",
		"num_hydrophobic_atoms",
		"ligand_max_num_h_bonds",
		"num_ligands",
		"ligand_lengths_sum",
	}
}

// Slice returns the descriptors as a flat sequence, in the Names order.
func (in *ConfIndependentInputs) Slice() []float64 {
	return []float64{
		in.NumTors,
		in.NumRotors,
		in.NumHeavyAtoms,
		in.NumHydrophobicAtoms,
		in.LigandMaxNumHBonds,
		in.NumLigands,
		in.LigandLengthsSum,
	}
}

const inputsPayloadVersion byte = 1

// Encode writes the descriptor record to w as a fixed-layout binary
// payload: a version byte and the seven scalars, little endian.
func (in *ConfIndependentInputs) Encode(w io.Writer) error {
	if _, err := w.Write([]byte{inputsPayloadVersion}); err != nil {
		return CError{"Failed to write descriptors payload: " + err.Error(), []string{"ConfIndependentInputs.Encode"}}
	}
	if err := binary.Write(w, binary.LittleEndian, in.Slice()); err != nil {
		return CError{"Failed to write descriptors payload: " + err.Error(), []string{"ConfIndependentInputs.Encode"}}
	}
	return nil
}

// DecodeConfIndependentInputs reads a descriptor record previously
// written by Encode.
func DecodeConfIndependentInputs(r io.Reader) (*ConfIndependentInputs, error) {
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, CError{"Failed to read descriptors payload: " + err.Error(), []string{"DecodeConfIndependentInputs"}}
	}
	if version[0] != inputsPayloadVersion {
		return nil, CError{fmt.Sprintf("Unknown descriptors payload version %d", version[0]), []string{"DecodeConfIndependentInputs"}}
	}
	data := make([]float64, 7)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, CError{"Failed to read descriptors payload: " + err.Error(), []string{"DecodeConfIndependentInputs"}}
	}
	return &ConfIndependentInputs{
		NumTors:             data[0],
		NumRotors:           data[1],
		NumHeavyAtoms:       data[2],
		NumHydrophobicAtoms: data[3],
		LigandMaxNumHBonds:  data[4],
		NumLigands:          data[5],
		LigandLengthsSum:    data[6],
	}, nil
}
