/*
 * doc.go, part of godock.
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

/*Package dock implements the energy-scoring core of a molecular docking
engine: a framework for composing independently pluggable potential terms
into a single weighted score for how favorably two structures (or a
ligand's own geometry) interact.

Terms come in several capability families (pairwise distance terms,
charge-dependent terms with a separable decomposition, whole-structure
terms, and conformation-independent corrections), each kept in its own
insertion-ordered registry with per-term enable flags. A Terms aggregator
drives the evaluation of all of them over a Model, accumulating external
(intermolecular) and internal (intramolecular) contributions into a
Factors record that a search algorithm then collapses against its weight
vector.

Charge-dependent terms never evaluate their charge-weighted value
directly. They expose four coefficients indexed by atom types and
distance only, and the actual charges enter through one fixed linear
recombination at the very end. That is what lets Precalculated tabulate
the whole pairwise score per type pair and squared distance, with the
charge sensitivity applied lazily per atom pair.

The package scores poses; it does not generate or refine them. Search,
file I/O and full molecular representation belong to the caller.*/
package dock
