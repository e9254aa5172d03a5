/*
 * components.go, part of godock.
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

// Components is the separable decomposition of a charge-dependent term's
// value: four coefficients that depend only on the two atom types and the
// separation, never on the actual charges. The full value for a concrete
// atom pair is recovered with Apply. Keeping the charges out of the
// coefficients is what makes the per-type-pair radial tables in
// Precalculated possible at all.
type Components struct {
	TypeDependent float64 //no charge adjustment
	ACharge       float64 //to be multiplied by the first atom's charge
	BCharge       float64 //to be multiplied by the second atom's charge
	ABCharge      float64 //to be multiplied by the product of both charges
}

// Add adds rhs into the receiver, component-wise.
func (c *Components) Add(rhs Components) {
	c.TypeDependent += rhs.TypeDependent
	c.ACharge += rhs.ACharge
	c.BCharge += rhs.BCharge
	c.ABCharge += rhs.ABCharge
}

// AddScalar adds in a charge-independent contribution, which by definition
// only touches the type-dependent coefficient.
func (c *Components) AddScalar(v float64) {
	c.TypeDependent += v
}

// Scale multiplies every coefficient by v. Scaling commutes with Apply, so
// weighting a term's components and then applying charges equals weighting
// the applied value.
func (c *Components) Scale(v float64) {
	c.TypeDependent *= v
	c.ACharge *= v
	c.BCharge *= v
	c.ABCharge *= v
}

// Apply reconstructs the charge-weighted value for a pair with partial
// charges qa and qb. This recombination is fixed; no term gets to
// special-case it.
func (c Components) Apply(qa, qb float64) float64 {
	return c.TypeDependent + qa*c.ACharge + qb*c.BCharge + qa*qb*c.ABCharge
}

//linear interpolation between two component sets, used by the radial tables.
func lerpComponents(c0, c1 Components, frac float64) Components {
	return Components{
		TypeDependent: c0.TypeDependent + frac*(c1.TypeDependent-c0.TypeDependent),
		ACharge:       c0.ACharge + frac*(c1.ACharge-c0.ACharge),
		BCharge:       c0.BCharge + frac*(c1.BCharge-c0.BCharge),
		ABCharge:      c0.ABCharge + frac*(c1.ABCharge-c0.ABCharge),
	}
}
