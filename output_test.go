package adsorb

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rmera/adsorb/histo"
)

func TestWriteHistogram(Te *testing.T) {
	d, err := histo.New([]float64{1, 2, 2, 3}, 3)
	if err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteHistogram(d, &b); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		Te.Fatalf("Expected one line per bin, got %d: %q", len(lines), b.String())
	}
	for _, l := range lines {
		if len(strings.Fields(l)) != 2 {
			Te.Errorf("Expected two columns, got %q", l)
		}
	}
}

func TestWriteClassification(Te *testing.T) {
	res := [][]int{{0, 1}, {}, {1}}
	rg := []float64{1.5, 2.5, 3.5}
	var b bytes.Buffer
	if err := WriteClassification(res, rg, &b); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		Te.Fatalf("Expected one line per frame, got %d", len(lines))
	}
	//frame index, Rg, then the adsorbed polymers, if any
	f0 := strings.Fields(lines[0])
	if len(f0) != 4 || f0[0] != "0" || f0[2] != "0" || f0[3] != "1" {
		Te.Errorf("Wrong first line: %q", lines[0])
	}
	f1 := strings.Fields(lines[1])
	if len(f1) != 2 {
		Te.Errorf("A frame with no adsorption should only carry index and Rg: %q", lines[1])
	}
	//misaligned input must be refused
	if err := WriteClassification(res, rg[:2], &b); err == nil {
		Te.Error("Misaligned classification and gyration series should be an error")
	}
}
