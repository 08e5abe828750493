package histo

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Data is a fixed-width histogram built once from a sample set. The binning
// follows the convention of the original PEG adsorption analysis: for B bins
// the bin width is (max-min)/(B-1), not (max-min)/B, and the value reported
// for each bin is the center of its range, min+(i+0.5)*width. The convention
// is kept as-is for output compatibility; don't "fix" the divisor.
type Data struct {
	normalized bool
	total      int
	min        float64
	width      float64
	counts     []float64
	centers    []float64
}

// New builds a histogram with the given number of bins from rawdata. The input
// is not modified. Degenerate sample sets are valid: an empty one produces an
// all-zero histogram, and one with a single distinct value puts every sample
// in the first bin instead of dividing by a zero width.
func New(rawdata []float64, bins int) (*Data, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("histo.New: the number of bins must be positive, got %d", bins)
	}
	d := new(Data)
	d.counts = make([]float64, bins)
	d.centers = make([]float64, bins)
	if len(rawdata) == 0 {
		return d, nil
	}
	d.min = floats.Min(rawdata)
	max := floats.Max(rawdata)
	if bins > 1 {
		d.width = (max - d.min) / float64(bins-1)
	}
	for i := range d.centers {
		d.centers[i] = d.min + (float64(i)+0.5)*d.width
	}
	for _, v := range rawdata {
		d.counts[d.index(v)]++
	}
	d.total = len(rawdata)
	return d, nil
}

// index maps a sample to its bin. The floor formula puts a value equal to max
// in the last bin, but floating point rounding could push it one past the end,
// so the result is always clamped to a valid bin.
func (D *Data) index(v float64) int {
	if D.width <= 0 {
		return 0
	}
	i := int(math.Floor((v - D.min) / D.width))
	if i < 0 {
		i = 0
	}
	if i >= len(D.counts) {
		i = len(D.counts) - 1
	}
	return i
}

// Bins returns the number of bins.
func (D *Data) Bins() int {
	return len(D.counts)
}

// Total returns the number of samples the histogram was built from.
func (D *Data) Total() int {
	return D.total
}

// Width returns the bin width.
func (D *Data) Width() float64 {
	return D.width
}

// View returns the bin counts, without copying. For an un-normalized
// histogram they are non-negative integers summing to Total().
func (D *Data) View() []float64 {
	return D.counts
}

// Copy copies the bin counts to dest, if given and large enough, or to a new
// slice otherwise.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.counts), dest...)
	return floats.ScaleTo(d, 1, D.counts)
}

// Centers returns the representative value of each bin, the center of its
// range. The centers increase strictly with the bin index whenever the
// histogram was built from more than one distinct value.
func (D *Data) Centers() []float64 {
	return D.centers
}

// CopyCenters copies the bin centers to dest, if given and large enough, or
// to a new slice otherwise.
func (D *Data) CopyCenters(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.centers), dest...)
	return floats.ScaleTo(d, 1, D.centers)
}

// Sum returns the sum of the counts.
func (D *Data) Sum() float64 {
	return floats.Sum(D.counts)
}

// Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize normalizes the histogram so the counts sum to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize takes the histogram back to plain counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

// normalizes or un-normalizes the histogram depending
// on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.counts)
}

// String prints a -hopefully- pretty representation of the histogram,
// centers on one line, counts on the next.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	c := make([]string, 0, len(D.counts))
	h := make([]string, 0, len(D.counts))
	for i, v := range D.counts {
		c = append(c, fmt.Sprintf("%9.3f", D.centers[i]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(c, " "), strings.Join(h, " "))
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
		}
	} else {
		d = make([]float64, N)
	}
	return d
}
