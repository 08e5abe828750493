package cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func atomLine(resid int, resname, atname string, atnum int, x, y, z float64) string {
	return fmt.Sprintf("%5d%-5s%5s%5d%8.3f%8.3f%8.3f", resid, resname, atname, atnum, x, y, z)
}

const snapshot = "PEG on gold\n4\n"

const ztraj = `# z coordinate of each PEG chain
@    title "PEG z"
0.000   10.3   50.0
10.000  50.0   50.0
20.000  50.0   19.0
`

const gyrate = `# Radius of gyration
0.000   1.2  0.5  0.6  0.7
10.000  1.5  0.5  0.6  0.7
20.000  1.8  0.5  0.6  0.7
`

// writes a consistent little run (snapshot, z trajectory, gyration series)
// into dir and returns its configuration
func testRun(Te *testing.T, dir string, anchorZ2 float64) *Cfg {
	gro := snapshot +
		atomLine(1, "AU", "AUS", 1, 1.0, 1.0, 10.0) + "\n" +
		atomLine(1, "AU", "AUS", 2, 2.0, 1.0, anchorZ2) + "\n" +
		atomLine(2, "PEG", "C1", 3, 1.5, 1.5, 15.0) + "\n" +
		atomLine(3, "PEG", "C1", 4, 1.5, 1.5, 50.0) + "\n" +
		"   5.00000   5.00000 100.00000\n"
	for name, content := range map[string]string{
		"confout.gro":   gro,
		"polymer_z.xvg": ztraj,
		"gyrate.xvg":    gyrate,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			Te.Fatal(err)
		}
	}
	c := Default()
	c.Gro = filepath.Join(dir, "confout.gro")
	c.ZTraj = filepath.Join(dir, "polymer_z.xvg")
	c.Rg = filepath.Join(dir, "gyrate.xvg")
	c.Bins = 5
	return c
}

func chdir(Te *testing.T, dir string) {
	old, err := os.Getwd()
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		Te.Fatal(err)
	}
	Te.Cleanup(func() { os.Chdir(old) })
}

func TestRun(Te *testing.T) {
	dir := Te.TempDir()
	c := testRun(Te, dir, 20.0)
	chdir(Te, dir)
	prob, err := c.Run()
	if err != nil {
		Te.Fatal(err)
	}
	//frames 1 and 3 hold an adsorbed polymer, frame 2 doesn't
	if prob != 2.0/3.0 {
		Te.Errorf("Expected a probability of 2/3, got %v", prob)
	}
	for _, name := range []string{"rghisto_all.dat", "rghisto_ads.dat", "rghisto_free.dat"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			Te.Fatalf("Missing output %s: %v", name, err)
		}
		lines := strings.Split(strings.TrimSpace(string(b)), "\n")
		if len(lines) != c.Bins {
			Te.Errorf("%s: expected %d bins, got %d lines", name, c.Bins, len(lines))
		}
	}
	b, err := os.ReadFile(filepath.Join(dir, "adsorption.dat"))
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		Te.Errorf("Expected one classification line per frame, got %d", len(lines))
	}
}

func TestRunDegenerateAnchors(Te *testing.T) {
	dir := Te.TempDir()
	//both anchor atoms at z=10: the run must abort before classifying
	c := testRun(Te, dir, 10.0)
	chdir(Te, dir)
	_, err := c.Run()
	if err == nil {
		Te.Fatal("Duplicated anchor positions should abort the run")
	}
	fmt.Println("expected error:", err)
}

func TestRunMisaligned(Te *testing.T) {
	dir := Te.TempDir()
	c := testRun(Te, dir, 20.0)
	//a gyration series with a frame too many
	if err := os.WriteFile(c.Rg, []byte(gyrate+"30.000 2.1 0.5 0.6 0.7\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	chdir(Te, dir)
	if _, err := c.Run(); err == nil {
		Te.Fatal("A gyration series longer than the trajectory should abort the run")
	}
}

func TestNewCfg(Te *testing.T) {
	dir := Te.TempDir()
	y := "gro: conf.gro\nztraj: z.xvg\nrg: rg.xvg\nbins: 25\nregion: 0.5\ncyclic: true\n"
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte(y), 0644); err != nil {
		Te.Fatal(err)
	}
	c, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Gro != "conf.gro" || c.Bins != 25 || c.Region != 0.5 || !c.Cyclic {
		Te.Errorf("Wrong configuration: %+v", c)
	}
	//fields not in the file keep their defaults
	if c.Species != "AUS" || c.Cpus != 1 {
		Te.Errorf("Defaults not kept: %+v", c)
	}
}

func TestCheck(Te *testing.T) {
	c := Default()
	c.Bins = 0
	if err := c.Check(); err == nil {
		Te.Error("Zero bins should be refused")
	}
	c = Default()
	c.Region = -1
	if err := c.Check(); err == nil {
		Te.Error("A negative region should be refused")
	}
	c = Default()
	c.Gro = ""
	if err := c.Check(); err == nil {
		Te.Error("An empty snapshot path should be refused")
	}
}
