/*
 * options.go, part of adsorb.
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

import "runtime"

// The default width added around the anchor band; a polymer strictly closer
// than this is counted as adsorbed.
const DefaultRegion = 0.700

// Options holds the tunable parameters of the adsorption classification.
type Options struct {
	region float64
	cpus   int
}

// DefaultOptions returns an Options with the default settings.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.region = DefaultRegion
	ret.cpus = runtime.NumCPU()
	return ret
}

// Region returns the adsorption region width (the distance threshold of the
// classification) and sets it, if a valid value is given.
func (r *Options) Region(region ...float64) float64 {
	ret := r.region
	if len(region) > 0 && region[0] > 0 {
		r.region = region[0]
	}
	return ret
}

// Cpus returns the number of goroutines to use in the concurrent
// classification and sets it, if a valid value is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}
