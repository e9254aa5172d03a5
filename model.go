/*
 * model.go, part of godock.
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

	"gonum.org/v1/gonum/mat"
)

// AtomRef points at one atom of a Model, which keeps movable (ligand) and
// grid (receptor) atoms in two separate lists.
type AtomRef struct {
	Index  int
	InGrid bool
}

// Ligand is a half-open range [Begin,End) of movable atom indexes
// belonging to one ligand.
type Ligand struct {
	Begin, End int
}

// Len returns the number of atoms in the ligand.
func (L Ligand) Len() int { return L.End - L.Begin }

// Pair is one atom pair together with its current separation distance.
type Pair struct {
	A, B AtomRef
	R    float64
}

// Model is the structure being scored: the movable atoms with their
// coordinates, the rigid receptor ("grid") atoms with theirs, the division
// of the movable atoms into ligands, and the covalent bonds among the
// movable atoms. Coordinates are n x 3 matrices, one row per atom.
//
// A Model is meant to be built once and then only have its coordinates
// replaced between scoring calls; the topology is read-only after
// construction.
type Model struct {
	atoms   []*Atom
	grid    []*Atom
	coords  *mat.Dense
	gcoords *mat.Dense
	ligands []Ligand
	bonds   []*Bond
	neigh   [][]int //adjacency among movable atoms, built from bonds
}

// NewModel builds a Model from its parts. grid and gcoords may both be nil
// for a ligand-only model (say, for scoring internal geometry). It returns
// an error if the coordinate matrices don't match the atom lists, or if a
// ligand range or bond index is out of bounds.
func NewModel(atoms []*Atom, coords *mat.Dense, grid []*Atom, gcoords *mat.Dense, ligands []Ligand, bonds []*Bond) (*Model, error) {
	if atoms == nil || coords == nil {
		return nil, CError{"Supplied nil atoms or coordinates", []string{"NewModel"}}
	}
	r, c := coords.Dims()
	if r != len(atoms) || c != 3 {
		return nil, CError{fmt.Sprintf("Coordinates %dx%d don't match the %d movable atoms", r, c, len(atoms)), []string{"NewModel"}}
	}
	if (grid == nil) != (gcoords == nil) {
		return nil, CError{"Grid atoms and grid coordinates must be both given or both nil", []string{"NewModel"}}
	}
	if grid != nil {
		gr, gc := gcoords.Dims()
		if gr != len(grid) || gc != 3 {
			return nil, CError{fmt.Sprintf("Grid coordinates %dx%d don't match the %d grid atoms", gr, gc, len(grid)), []string{"NewModel"}}
		}
	}
	for _, l := range ligands {
		if l.Begin < 0 || l.End > len(atoms) || l.Begin >= l.End {
			return nil, CError{fmt.Sprintf("Ligand range [%d,%d) out of bounds", l.Begin, l.End), []string{"NewModel"}}
		}
	}
	M := &Model{atoms: atoms, grid: grid, coords: coords, gcoords: gcoords, ligands: ligands, bonds: bonds}
	M.neigh = make([][]int, len(atoms))
	for _, b := range bonds {
		if b.A < 0 || b.A >= len(atoms) || b.B < 0 || b.B >= len(atoms) {
			return nil, CError{fmt.Sprintf("Bond %d-%d out of bounds", b.A, b.B), []string{"NewModel"}}
		}
		M.neigh[b.A] = append(M.neigh[b.A], b.B)
		M.neigh[b.B] = append(M.neigh[b.B], b.A)
	}
	return M, nil
}

// Len returns the number of movable atoms.
func (M *Model) Len() int { return len(M.atoms) }

// GridLen returns the number of grid (receptor) atoms.
func (M *Model) GridLen() int { return len(M.grid) }

// Atom returns the movable atom with index i. Panics if out of range.
func (M *Model) Atom(i int) *Atom {
	if i < 0 || i >= len(M.atoms) {
		panic("Model: requested movable atom out of bounds")
	}
	return M.atoms[i]
}

// GridAtom returns the grid atom with index i. Panics if out of range.
func (M *Model) GridAtom(i int) *Atom {
	if i < 0 || i >= len(M.grid) {
		panic("Model: requested grid atom out of bounds")
	}
	return M.grid[i]
}

// AtomAt resolves an AtomRef against the right atom list.
func (M *Model) AtomAt(ref AtomRef) *Atom {
	if ref.InGrid {
		return M.GridAtom(ref.Index)
	}
	return M.Atom(ref.Index)
}

// SetCoords replaces the coordinates of the movable atoms. The new matrix
// must have the same shape as the old one. This is what an optimizer calls
// between evaluations of the same model.
func (M *Model) SetCoords(coords *mat.Dense) {
	r, c := coords.Dims()
	if r != len(M.atoms) || c != 3 {
		panic(fmt.Sprintf("Model: wrong number of coordinates (%dx%d)", r, c))
	}
	M.coords = coords
}

func (M *Model) coordOf(ref AtomRef) (x, y, z float64) {
	m := M.coords
	if ref.InGrid {
		m = M.gcoords
	}
	return m.At(ref.Index, 0), m.At(ref.Index, 1), m.At(ref.Index, 2)
}

// Distance returns the current separation between two atoms, in A.
func (M *Model) Distance(a, b AtomRef) float64 {
	ax, ay, az := M.coordOf(a)
	bx, by, bz := M.coordOf(b)
	dx, dy, dz := ax-bx, ay-by, az-bz
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// InterPairs enumerates the pairs that count as inter-structure for
// scoring: every movable atom against every grid atom, with their current
// distances. The slice is rebuilt on each call, as the distances change
// with the pose.
func (M *Model) InterPairs() []Pair {
	ret := make([]Pair, 0, len(M.atoms)*len(M.grid))
	for i := range M.atoms {
		a := AtomRef{i, false}
		for j := range M.grid {
			b := AtomRef{j, true}
			ret = append(ret, Pair{a, b, M.Distance(a, b)})
		}
	}
	return ret
}

// IntraPairs enumerates the pairs that count for the internal (ligand
// conformation) score: pairs of movable atoms within the same ligand whose
// topological separation is more than three bonds, so that their distance
// can actually change with the torsions. Pairs at three bonds or less have
// fixed or nearly fixed geometry and are excluded.
func (M *Model) IntraPairs() []Pair {
	ret := make([]Pair, 0, len(M.atoms))
	for _, l := range M.ligands {
		for i := l.Begin; i < l.End; i++ {
			a := AtomRef{i, false}
			for j := i + 1; j < l.End; j++ {
				if M.bondsBetween(i, j, 3) <= 3 {
					continue
				}
				b := AtomRef{j, false}
				ret = append(ret, Pair{a, b, M.Distance(a, b)})
			}
		}
	}
	return ret
}

//bondsBetween returns the number of bonds in the shortest path from i to j,
//or limit+1 if they are further apart than limit (or disconnected). Plain
//BFS; the bond graphs here are tiny.
func (M *Model) bondsBetween(i, j, limit int) int {
	if i == j {
		return 0
	}
	dist := map[int]int{i: 0}
	queue := []int{i}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if dist[curr] >= limit {
			continue
		}
		for _, n := range M.neigh[curr] {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[curr] + 1
			if n == j {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return limit + 1
}

// Ligands returns the ligand ranges of the model.
func (M *Model) Ligands() []Ligand { return M.ligands }

// Bonds returns the indexes of the movable atoms bonded to atom i.
func (M *Model) Bonded(i int) []int { return M.neigh[i] }

// NumBondedHeavyAtoms counts the heavy atoms bonded to movable atom i.
func (M *Model) NumBondedHeavyAtoms(i int) int {
	n := 0
	for _, j := range M.neigh[i] {
		if M.atoms[j].Type.Heavy() {
			n++
		}
	}
	return n
}

// AtomRotors counts the rotatable bonds that join movable atom i to a
// heavy atom.
func (M *Model) AtomRotors(i int) int {
	n := 0
	for _, b := range M.bonds {
		if !b.Rotatable {
			continue
		}
		if b.A == i && M.atoms[b.B].Type.Heavy() {
			n++
		} else if b.B == i && M.atoms[b.A].Type.Heavy() {
			n++
		}
	}
	return n
}

// LigandLength returns the length, in bonds, of the longest simple chain
// within the ligand. Two breadth-first sweeps: the farthest atom from an
// arbitrary start is one end of the longest path in a tree, and ligand bond
// graphs are trees or nearly so.
func (M *Model) LigandLength(l Ligand) int {
	far, _ := M.farthestInLigand(l, l.Begin)
	_, d := M.farthestInLigand(l, far)
	return d
}

func (M *Model) farthestInLigand(l Ligand, start int) (int, int) {
	dist := map[int]int{start: 0}
	queue := []int{start}
	best, bestd := start, 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range M.neigh[curr] {
			if n < l.Begin || n >= l.End {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[curr] + 1
			if dist[n] > bestd {
				best, bestd = n, dist[n]
			}
			queue = append(queue, n)
		}
	}
	return best, bestd
}

// Gyration returns the radius of gyration of the movable heavy atoms, a
// cheap measure of how spread out the current pose is.
func (M *Model) Gyration() float64 {
	var cx, cy, cz float64
	n := 0
	for i, at := range M.atoms {
		if !at.Type.Heavy() {
			continue
		}
		cx += M.coords.At(i, 0)
		cy += M.coords.At(i, 1)
		cz += M.coords.At(i, 2)
		n++
	}
	if n == 0 {
		return 0
	}
	fn := float64(n)
	cx, cy, cz = cx/fn, cy/fn, cz/fn
	acc := 0.0
	for i, at := range M.atoms {
		if !at.Type.Heavy() {
			continue
		}
		dx := M.coords.At(i, 0) - cx
		dy := M.coords.At(i, 1) - cy
		dz := M.coords.At(i, 2) - cz
		acc += dx*dx + dy*dy + dz*dz
	}
	return math.Sqrt(acc / fn)
}
