/*
 * classify.go, part of adsorb.
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

import "fmt"

// Classify returns the indexes of the polymers in frame whose periodic
// distance to the anchor band is strictly smaller than the region width in o.
// A polymer sitting exactly at the threshold is _not_ adsorbed. An empty
// frame just gives an empty set. Classification is stateless, so the
// adsorption state of a polymer is free to change between frames.
func Classify(frame []float64, A *AnchorSet, box float64, options ...*Options) []int {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	ret := make([]int, 0, len(frame))
	for i, z := range frame {
		if BandDistance(z, A, box) < o.region {
			ret = append(ret, i)
		}
	}
	return ret
}

// ClassifyTraj applies Classify to every frame of a trajectory, returning one
// set of adsorbed indexes per frame, in frame order. The anchor set and box
// are checked once, before any frame is touched.
func ClassifyTraj(frames [][]float64, A *AnchorSet, box float64, options ...*Options) ([][]int, error) {
	if err := checkClassifyInput(A, box); err != nil {
		return nil, err
	}
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	ret := make([][]int, len(frames))
	for i, frame := range frames {
		ret[i] = Classify(frame, A, box, o)
	}
	return ret, nil
}

// ClassifyTrajConc does the same work as ClassifyTraj but processes frames on
// o.Cpus() concurrent workers. Frames are independent, so the only care needed
// is to keep the output in frame order, which the per-index writes guarantee.
func ClassifyTrajConc(frames [][]float64, A *AnchorSet, box float64, options ...*Options) ([][]int, error) {
	if err := checkClassifyInput(A, box); err != nil {
		return nil, err
	}
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	cpus := o.cpus
	if cpus > len(frames) {
		cpus = len(frames)
	}
	if cpus <= 1 {
		return ClassifyTraj(frames, A, box, o)
	}
	ret := make([][]int, len(frames))
	done := make(chan bool, cpus)
	for w := 0; w < cpus; w++ {
		go func(start int) {
			for i := start; i < len(frames); i += cpus {
				ret[i] = Classify(frames[i], A, box, o)
			}
			done <- true
		}(w)
	}
	for w := 0; w < cpus; w++ {
		<-done
	}
	return ret, nil
}

func checkClassifyInput(A *AnchorSet, box float64) error {
	if A == nil {
		return fmt.Errorf("adsorb.ClassifyTraj: nil anchor set")
	}
	if box <= 0 {
		return fmt.Errorf("adsorb.ClassifyTraj: non-positive box length %v", box)
	}
	return nil
}

// Probability returns the fraction of frames in which at least one polymer is
// adsorbed. An empty classification gives 0.
func Probability(res [][]int) float64 {
	if len(res) == 0 {
		return 0
	}
	count := 0
	for _, v := range res {
		if len(v) > 0 {
			count++
		}
	}
	return float64(count) / float64(len(res))
}

// Partition splits the radius-of-gyration series rg into the values for all
// frames, for the frames with at least one adsorbed polymer, and for the
// remaining ("free") frames, using the frame-aligned classification res.
// The two series must have the same length, one value per frame.
func Partition(rg []float64, res [][]int) (all, ads, free []float64, err error) {
	if len(rg) != len(res) {
		return nil, nil, nil, fmt.Errorf("adsorb.Partition: %d gyration values for %d classified frames", len(rg), len(res))
	}
	all = make([]float64, len(rg))
	copy(all, rg)
	ads = make([]float64, 0, len(rg))
	free = make([]float64, 0, len(rg))
	for i, v := range rg {
		if len(res[i]) > 0 {
			ads = append(ads, v)
		} else {
			free = append(free, v)
		}
	}
	return all, ads, free, nil
}
