/*
 * cursor.go, part of godock.
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

// Cursor walks a flat sequence of scalars left to right, one value per
// call. Term-set filtering and conformation-independent evaluation both
// consume their inputs through one of these, which is what keeps the
// external weight/parameter layouts positional and predictable.
type Cursor struct {
	data []float64
	pos  int
}

// NewCursor returns a Cursor at the start of data. The slice is not
// copied; the caller should not modify it while the cursor is in use.
func NewCursor(data []float64) *Cursor {
	return &Cursor{data: data}
}

// Next returns the value under the cursor and advances it. Running a
// cursor dry means the caller's bookkeeping of slots is broken, so it
// panics rather than returning an error.
func (c *Cursor) Next() float64 {
	if c.pos >= len(c.data) {
		panic("godock: parameter cursor ran past the end of its sequence")
	}
	v := c.data[c.pos]
	c.pos++
	return v
}

// Pos returns how many values have been consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns how many values are left.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }
