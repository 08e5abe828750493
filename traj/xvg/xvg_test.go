package xvg

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const ztraj = `# z coordinate of each PEG chain
@    title "PEG z"
@    xaxis  label "Time (ps)"
0.000   10.3   50.0
10.000  50.0   50.0
20.000  50.0   19.0
`

const gyrate = `# Radius of gyration
@    title "Gyrate"
0.000   1.234  0.5  0.6  0.7
10.000  1.567  0.5  0.6  0.7
20.000  1.890  0.5  0.6  0.7
`

func write(Te *testing.T, name, content string) string {
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestFrames(Te *testing.T) {
	path := write(Te, "z.xvg", ztraj)
	frames, err := Frames(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 3 {
		Te.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	//the step index is dropped; only the per-polymer positions remain
	if len(frames[0]) != 2 || frames[0][0] != 10.3 || frames[0][1] != 50.0 {
		Te.Errorf("Wrong first frame: %v", frames[0])
	}
	if frames[2][1] != 19.0 {
		Te.Errorf("Wrong last frame: %v", frames[2])
	}
}

func TestFramesRagged(Te *testing.T) {
	path := write(Te, "bad.xvg", "0.0 10.0 20.0\n1.0 10.0\n")
	_, err := Frames(path)
	if err == nil {
		Te.Fatal("A frame with a different polymer count should be a fatal error")
	}
	fmt.Println("expected error:", err)
	if _, ok := err.(Error); !ok {
		Te.Errorf("Expected an xvg.Error, got %T", err)
	}
}

func TestGyration(Te *testing.T) {
	path := write(Te, "gyrate.xvg", gyrate)
	rg, err := Gyration(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(rg) != 3 {
		Te.Fatalf("Expected 3 values, got %d", len(rg))
	}
	//only the total Rg is kept, not the per-axis components
	if rg[0] != 1.234 || rg[1] != 1.567 || rg[2] != 1.890 {
		Te.Errorf("Wrong gyration series: %v", rg)
	}
	short := write(Te, "short.xvg", "0.000\n")
	if _, err = Gyration(short); err == nil {
		Te.Error("A gyration line with one field should be a fatal error")
	}
}

func TestFramesGzip(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "z.xvg.gz")
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte(ztraj)); err != nil {
		Te.Fatal(err)
	}
	w.Close()
	f.Close()
	frames, err := Frames(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 3 || frames[0][0] != 10.3 {
		Te.Errorf("Wrong frames from the gzipped trajectory: %v", frames)
	}
}

func TestGyrationZstd(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "gyrate.xvg.zst")
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	w, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := w.Write([]byte(gyrate)); err != nil {
		Te.Fatal(err)
	}
	w.Close()
	f.Close()
	rg, err := Gyration(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(rg) != 3 || rg[1] != 1.567 {
		Te.Errorf("Wrong gyration series from the zstd file: %v", rg)
	}
}

func TestMissingFile(Te *testing.T) {
	_, err := Frames(filepath.Join(Te.TempDir(), "nope.xvg"))
	if err == nil {
		Te.Fatal("A missing file should be a fatal error")
	}
	ferr, ok := err.(Error)
	if !ok {
		Te.Fatalf("Expected an xvg.Error, got %T", err)
	}
	if !ferr.Critical() {
		Te.Error("A missing file should be critical")
	}
}
