/*
 * doc.go, part of adsorb.
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

/*Package adsorb post-processes molecular dynamics output to determine, frame by frame,
whether flexible polymer chains (PEG) are adsorbed on a pair of periodic anchor
positions (a gold surface), and to condition the radius of gyration of the chains
on that adsorption state.

	**Capabilities**

    Extracts the two periodic anchor positions and the box length along the
	tracked axis from a GROMACS structural snapshot (subpackage traj/gro).

    Reads per-polymer z trajectories and radius-of-gyration time series in
	xmgrace-style text format, plain or compressed (subpackage traj/xvg).

    Classifies every polymer in every frame as adsorbed or free, using a
	periodic-boundary distance to the anchor band, sequentially or
	concurrently (frames are independent).

    Builds fixed-width histograms of the radius of gyration for all frames,
	adsorbed frames and free frames (subpackage histo), writes them as
	two-column tables and, optionally, plots them (subpackage adsplot).

The classification applied here assumes a single contiguous adsorption band
per periodic box, i.e. exactly one low/high anchor pair. It is not a general
circular-distance machinery and will give wrong answers for more anchors.
*/
package adsorb
