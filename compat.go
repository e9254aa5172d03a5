/*
 * compat.go, part of godock.
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

//Conversions to the legacy go.matrix type. Some of the older analysis
//tools still take their numeric input as DenseMatrix column vectors, from
//before the gonum migration; these let them consume the two persistable
//records without modification.

import "github.com/skelterjohn/go.matrix"

// DenseMatrix returns the factors record as a single-column DenseMatrix,
// external contributions first, then internal.
func (F *Factors) DenseMatrix() *matrix.DenseMatrix {
	data := make([]float64, 0, F.Size())
	data = append(data, F.External...)
	data = append(data, F.Internal...)
	return matrix.MakeDenseMatrix(data, len(data), 1)
}

// DenseMatrix returns the descriptor record as a single-column
// DenseMatrix, in the Slice order.
func (in *ConfIndependentInputs) DenseMatrix() *matrix.DenseMatrix {
	data := in.Slice()
	return matrix.MakeDenseMatrix(data, len(data), 1)
}
