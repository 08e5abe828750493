package cfg

import (
	"bufio"
	"fmt"
	"log"
	"os"

	adsorb "github.com/rmera/adsorb"
	"github.com/rmera/adsorb/adsplot"
	"github.com/rmera/adsorb/histo"
	"github.com/rmera/adsorb/traj/gro"
	"github.com/rmera/adsorb/traj/xvg"

	"gopkg.in/yaml.v3"
)

// The labels used to derive the names of the three histogram files.
var labels = []string{"all", "ads", "free"}

// Cfg holds the parameters of an analysis run. It can be instanced through
// New, from a YAML file, or by hand starting from Default. If it is built by
// hand, please use the Check method to verify it meets the requirements.
type Cfg struct {
	// Gro is the structural snapshot the anchors and box are taken from
	Gro string `yaml:"gro"`

	// ZTraj is the per-polymer z trajectory
	ZTraj string `yaml:"ztraj"`

	// Rg is the radius-of-gyration series, in gyrate format
	Rg string `yaml:"rg"`

	// Species is the atom name identifying the anchor records
	Species string `yaml:"species"`

	// Cyclic marks the polymers as cyclic. It is accepted and recorded but
	// the current classification does not depend on it; it is reserved for a
	// variant analysis.
	Cyclic bool `yaml:"cyclic"`

	// Bins is the number of bins of the three histograms
	Bins int `yaml:"bins"`

	// Region is the width added around the anchor band; a polymer strictly
	// closer than this is adsorbed
	Region float64 `yaml:"region"`

	// Cpus is the number of goroutines used to classify frames. 1 means
	// fully sequential
	Cpus int `yaml:"cpus"`

	// Plot also renders each histogram as a PNG
	Plot bool `yaml:"plot"`
}

// Default returns a Cfg with the default settings.
func Default() *Cfg {
	return &Cfg{
		Gro:     "confout.gro",
		ZTraj:   "polymer_z.xvg",
		Rg:      "gyrate.xvg",
		Species: gro.DefaultSpecies,
		Bins:    50,
		Region:  adsorb.DefaultRegion,
		Cpus:    1,
	}
}

// New opens and decodes the given configuration file, which must be YAML.
// Missing fields keep their defaults. The Check method is called on the
// result.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := Default()
	r := bufio.NewReader(f)
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return c, nil
}

// Check returns an error if a field doesn't meet the requirements.
func (c *Cfg) Check() error {
	if c.Gro == "" || c.ZTraj == "" || c.Rg == "" {
		return fmt.Errorf("the snapshot, z trajectory and gyration files must all be given")
	}
	if c.Bins <= 0 {
		return fmt.Errorf("Bins must be positive")
	}
	if c.Region <= 0 {
		return fmt.Errorf("Region must be positive")
	}
	if c.Cpus < 0 {
		return fmt.Errorf("Cpus cannot be negative")
	}
	return nil
}

// Run performs the whole analysis: anchors and box from the snapshot,
// per-frame classification of the z trajectory, partition of the gyration
// series by adsorption state, three histograms and the per-frame table.
// It returns the aggregate adsorption probability, the fraction of frames
// with at least one adsorbed polymer. Any error is final; no partial results
// are kept.
func (c *Cfg) Run() (float64, error) {
	if err := c.Check(); err != nil {
		return 0, fmt.Errorf("Check: %w", err)
	}
	log.Printf("Reading anchors and box from `%s`\n", c.Gro)
	anchors, box, err := gro.Anchors(c.Gro, c.Species)
	if err != nil {
		return 0, err
	}
	log.Printf("Found %s, box length %5.3f\n", anchors, box)
	if c.Cyclic {
		log.Println("Cyclic polymers: noted, the classification is unchanged")
	}
	log.Printf("Reading the z trajectory from `%s`\n", c.ZTraj)
	frames, err := xvg.Frames(c.ZTraj)
	if err != nil {
		return 0, err
	}
	o := adsorb.DefaultOptions()
	o.Region(c.Region)
	o.Cpus(c.Cpus)
	log.Printf("Classifying %d frames\n", len(frames))
	var res [][]int
	if o.Cpus() > 1 {
		res, err = adsorb.ClassifyTrajConc(frames, anchors, box, o)
	} else {
		res, err = adsorb.ClassifyTraj(frames, anchors, box, o)
	}
	if err != nil {
		return 0, err
	}
	log.Printf("Reading the gyration series from `%s`\n", c.Rg)
	rg, err := xvg.Gyration(c.Rg)
	if err != nil {
		return 0, err
	}
	all, ads, free, err := adsorb.Partition(rg, res)
	if err != nil {
		return 0, err
	}
	prob := adsorb.Probability(res)
	log.Printf("Adsorption probability: %5.3f\n", prob)
	for i, subset := range [][]float64{all, ads, free} {
		h, err := histo.New(subset, c.Bins)
		if err != nil {
			return 0, err
		}
		if err := adsorb.HistogramFile(h, labels[i]); err != nil {
			return 0, err
		}
		if c.Plot {
			name := fmt.Sprintf("rghisto_%s.png", labels[i])
			if err := adsplot.Histo(h, "Rg, "+labels[i]+" frames", name); err != nil {
				return 0, err
			}
		}
	}
	if err := adsorb.ClassificationFile(res, rg, "adsorption.dat"); err != nil {
		return 0, err
	}
	return prob, nil
}
