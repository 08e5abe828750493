package main

import (
	"flag"
	"log"

	"github.com/rmera/adsorb/cfg"
)

func main() {
	conf := flag.String("c", "", "YAML configuration file; flags given explicitly take precedence")
	grofile := flag.String("f", "confout.gro", "structural snapshot (gro format) with the anchors and the box")
	ztraj := flag.String("z", "polymer_z.xvg", "per-polymer z trajectory")
	rgfile := flag.String("rg", "gyrate.xvg", "radius-of-gyration series (gyrate format)")
	species := flag.String("species", "AUS", "atom name of the anchor records")
	cyclic := flag.Bool("cyclic", false, "mark the polymers as cyclic (recorded, reserved for a variant analysis)")
	bins := flag.Int("bins", 50, "number of histogram bins")
	region := flag.Float64("region", 0.700, "adsorption region width")
	cpus := flag.Int("cpus", 1, "goroutines used to classify frames")
	plot := flag.Bool("plot", false, "also render each histogram as a PNG")
	flag.Parse()

	c := cfg.Default()
	if *conf != "" {
		log.Printf("Reading configuration file `%s`\n", *conf)
		var err error
		c, err = cfg.New(*conf)
		if err != nil {
			log.Fatal(err)
		}
	}
	//Flags the user actually set win over the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			c.Gro = *grofile
		case "z":
			c.ZTraj = *ztraj
		case "rg":
			c.Rg = *rgfile
		case "species":
			c.Species = *species
		case "cyclic":
			c.Cyclic = *cyclic
		case "bins":
			c.Bins = *bins
		case "region":
			c.Region = *region
		case "cpus":
			c.Cpus = *cpus
		case "plot":
			c.Plot = *plot
		}
	})

	if _, err := c.Run(); err != nil {
		log.Fatal(err)
	}
	log.Println("Done")
}
