/*
 * output.go, part of adsorb.
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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rmera/adsorb/histo"
)

// WriteHistogram writes a histogram as a two-column table, the center of each
// bin followed by its count, one bin per line.
func WriteHistogram(d *histo.Data, w io.Writer) error {
	centers := d.Centers()
	counts := d.View()
	for i, v := range centers {
		_, err := fmt.Fprintln(w, v, counts[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// HistogramFile persists a histogram to a file named after the given label,
// as in rghisto_ads.dat for the label "ads".
func HistogramFile(d *histo.Data, label string) error {
	name := fmt.Sprintf("rghisto_%s.dat", label)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("couldn't create the histogram file %s: %w", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteHistogram(d, w); err != nil {
		return fmt.Errorf("couldn't write the histogram file %s: %w", name, err)
	}
	return w.Flush()
}

// WriteClassification writes one line per frame: the frame index, the radius
// of gyration for that frame, and the indexes of the adsorbed polymers, if
// any. The classification and the gyration series must be frame-aligned.
func WriteClassification(res [][]int, rg []float64, w io.Writer) error {
	if len(res) != len(rg) {
		return fmt.Errorf("adsorb.WriteClassification: %d gyration values for %d classified frames", len(rg), len(res))
	}
	for i, v := range res {
		_, err := fmt.Fprintf(w, "%6d %10.5f", i, rg[i])
		if err != nil {
			return err
		}
		for _, p := range v {
			if _, err := fmt.Fprintf(w, " %d", p); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// ClassificationFile persists the per-frame classification table to the named
// file.
func ClassificationFile(res [][]int, rg []float64, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("couldn't create the classification file %s: %w", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteClassification(res, rg, w); err != nil {
		return fmt.Errorf("couldn't write the classification file %s: %w", name, err)
	}
	return w.Flush()
}
