/*
 * adsorb.go, part of adsorb.
 *
 * Copyright 2026 Raul Mera <rauldotmeraatusachdotcl>
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

package adsorb

import (
	"fmt"
	"math"
	"sort"
)

// AnchorSet holds the two periodic images of the anchor surface that are
// nearest to each other along the tracked axis, in ascending order. It is
// built once per run and not modified afterwards.
type AnchorSet struct {
	low  float64
	high float64
}

// NewAnchorSet builds an AnchorSet from the raw anchor coordinates read from a
// structural snapshot. The values are de-duplicated (exact comparison, as they
// come parsed from the same text) and sorted. It returns an error if fewer than
// two distinct positions remain, as the adsorption band is then undefined.
// If more than two distinct positions are given, the two lowest are taken.
func NewAnchorSet(raw []float64) (*AnchorSet, error) {
	uniq := make([]float64, 0, 2)
	for _, v := range raw {
		repeated := false
		for _, w := range uniq {
			if v == w {
				repeated = true
				break
			}
		}
		if !repeated {
			uniq = append(uniq, v)
		}
	}
	if len(uniq) < 2 {
		return nil, fmt.Errorf("adsorb.NewAnchorSet: got %d distinct anchor positions, need at least 2", len(uniq))
	}
	sort.Float64s(uniq)
	return &AnchorSet{low: uniq[0], high: uniq[1]}, nil
}

// Low returns the lower anchor position.
func (A *AnchorSet) Low() float64 {
	return A.low
}

// High returns the higher anchor position.
func (A *AnchorSet) High() float64 {
	return A.high
}

// Gap returns the separation between the two anchor positions.
func (A *AnchorSet) Gap() float64 {
	return A.high - A.low
}

func (A *AnchorSet) String() string {
	return fmt.Sprintf("anchors: %6.3f %6.3f", A.low, A.high)
}

// BandDistance returns the distance from the position z to the nearest edge of
// the adsorption band defined by the anchors in A, on a periodic box of length
// box along the tracked axis. Positions inside the band give negative values.
//
// The coordinate is taken to the local frame of the lower anchor; if it falls
// below it, the box length is added _once_. The precondition is therefore that
// no tracked position lies more than one box length outside the anchor frame.
// The shortest way to the band can be past the higher anchor or through the
// opposite periodic boundary; both candidates are tried.
func BandDistance(z float64, A *AnchorSet, box float64) float64 {
	zp := z - A.low
	if zp < 0 {
		zp += box
	}
	d1 := zp - A.Gap()
	d2 := box - zp
	return math.Min(d1, d2)
}
