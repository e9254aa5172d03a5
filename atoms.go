/*
 * atoms.go, part of godock.
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

import "fmt"

// AtomType is the docking atom type of an atom. It is much coarser than an
// element: it encodes the element together with its polar/hydrophobic and
// hydrogen-bonding character, which is all the scoring terms ever look at.
type AtomType int

const (
	Hydrogen AtomType = iota
	PolarHydrogen
	HydrophobicCarbon //carbon bonded only to carbon or hydrogen
	PolarCarbon       //carbon bonded to at least one heteroatom
	Nitrogen
	NitrogenDonor
	NitrogenAcceptor
	NitrogenDonorAcceptor
	Oxygen
	OxygenDonor
	OxygenAcceptor
	OxygenDonorAcceptor
	Sulfur
	Phosphorus
	Fluorine
	Chlorine
	Bromine
	Iodine
	Metal
	NumAtomTypes //keep this one last
)

//per-type data for the scoring terms. Radii in Angstrom, volumes in
//Angstrom^3, solvation parameters in kcal/(mol*A^3). The solvation numbers
//follow the AutoDock4 desolvation model.
type typeData struct {
	name        string
	radius      float64
	volume      float64
	solvation   float64
	heavy       bool
	hydrophobic bool
	donor       bool
	acceptor    bool
}

var typeTable = [NumAtomTypes]typeData{
	Hydrogen:              {"H", 1.0, 0.0, 0.00051, false, false, false, false},
	PolarHydrogen:         {"HD", 1.0, 0.0, 0.00051, false, false, false, false},
	HydrophobicCarbon:     {"C_H", 1.9, 33.51, -0.00143, true, true, false, false},
	PolarCarbon:           {"C_P", 1.9, 33.51, -0.00143, true, false, false, false},
	Nitrogen:              {"N_P", 1.8, 22.45, -0.00162, true, false, false, false},
	NitrogenDonor:         {"N_D", 1.8, 22.45, -0.00162, true, false, true, false},
	NitrogenAcceptor:      {"N_A", 1.8, 22.45, -0.00162, true, false, false, true},
	NitrogenDonorAcceptor: {"N_DA", 1.8, 22.45, -0.00162, true, false, true, true},
	Oxygen:                {"O_P", 1.7, 17.16, -0.00251, true, false, false, false},
	OxygenDonor:           {"O_D", 1.7, 17.16, -0.00251, true, false, true, false},
	OxygenAcceptor:        {"O_A", 1.7, 17.16, -0.00251, true, false, false, true},
	OxygenDonorAcceptor:   {"O_DA", 1.7, 17.16, -0.00251, true, false, true, true},
	Sulfur:                {"S_P", 2.0, 33.51, -0.00214, true, false, false, false},
	Phosphorus:            {"P_P", 2.1, 38.79, -0.00110, true, false, false, false},
	Fluorine:              {"F_H", 1.5, 15.45, -0.00110, true, true, false, false},
	Chlorine:              {"Cl_H", 1.8, 35.82, -0.00110, true, true, false, false},
	Bromine:               {"Br_H", 2.0, 42.57, -0.00110, true, true, false, false},
	Iodine:                {"I_H", 2.2, 55.06, -0.00110, true, true, false, false},
	Metal:                 {"Met_D", 1.2, 1.70, -0.00110, true, false, true, false},
}

func (t AtomType) data() typeData {
	if t < 0 || t >= NumAtomTypes {
		panic(fmt.Sprintf("godock: unknown atom type %d", int(t)))
	}
	return typeTable[t]
}

func (t AtomType) String() string { return t.data().name }

// Radius returns the van der Waals radius assigned to the type, in A.
func (t AtomType) Radius() float64 { return t.data().radius }

// Volume returns the atomic volume used by the desolvation terms, in A^3.
func (t AtomType) Volume() float64 { return t.data().volume }

// Solvation returns the atomic solvation parameter of the type.
func (t AtomType) Solvation() float64 { return t.data().solvation }

// Heavy returns whether the type is a non-hydrogen.
func (t AtomType) Heavy() bool { return t.data().heavy }

// Hydrophobic returns whether the type counts as hydrophobic for the
// hydrophobic contact terms.
func (t AtomType) Hydrophobic() bool { return t.data().hydrophobic }

// Donor returns whether the type can donate a hydrogen bond.
func (t AtomType) Donor() bool { return t.data().donor }

// Acceptor returns whether the type can accept a hydrogen bond.
func (t AtomType) Acceptor() bool { return t.data().acceptor }

// HBondPossible returns whether a pair of types can form a hydrogen bond
// between them, in either direction.
func HBondPossible(t1, t2 AtomType) bool {
	return (t1.Donor() && t2.Acceptor()) || (t1.Acceptor() && t2.Donor())
}

// OptimalDistance is the separation at which a pair of types sits at
// van der Waals contact, i.e. the sum of their radii.
func OptimalDistance(t1, t2 AtomType) float64 {
	return t1.Radius() + t2.Radius()
}

// Atom contains the per-atom information the scoring machinery needs: the
// docking type and the partial charge, plus some identity data for
// bookkeeping. Coordinates live in the Model, not here.
type Atom struct {
	Name   string //PDB-style atom name, if any
	Symbol string
	Type   AtomType
	Charge float64 //partial charge, in e
	MolID  int
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	newat := new(Atom)
	*newat = *A
	return newat
}

// Bond is a covalent bond between two atoms of the movable part of a model,
// given as indexes. Rotatable marks the bond as an active torsion.
type Bond struct {
	A, B      int
	Rotatable bool
}
