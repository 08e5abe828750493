package gro

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	adsorb "github.com/rmera/adsorb"
)

// The atom-name label identifying anchor records in the snapshot.
const DefaultSpecies = "AUS"

// Fixed columns of the name and z fields in a Gromacs gro atom record.
const (
	nameStart = 10
	nameEnd   = 15
	zStart    = 36
	zEnd      = 44
)

// Anchors reads a Gromacs structural snapshot (gro format) and returns the
// anchor set for the atoms whose name matches the species label (DefaultSpecies
// if none is given) and the box length along z, the third field of the
// trailing box line. The z coordinates of the matching atoms are de-duplicated;
// fewer than two distinct values, or a box line with fewer than three fields,
// are fatal format errors.
func Anchors(filename string, species ...string) (*adsorb.AnchorSet, float64, error) {
	sp := DefaultSpecies
	if len(species) > 0 && species[0] != "" {
		sp = species[0]
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, Error{UnableToOpen, filename, []string{"Anchors"}, true}
	}
	defer f.Close()
	A, box, err := readAnchors(f, sp, filename)
	if err != nil {
		return nil, 0, err
	}
	return A, box, nil
}

// readAnchors does the actual parsing, on any reader, so the format handling
// can be tested without files.
func readAnchors(r io.Reader, species, filename string) (*adsorb.AnchorSet, float64, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, 100)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, Error{"Couldn't read the snapshot: " + err.Error(), filename, []string{"readAnchors"}, true}
	}
	//title, atom count, at least one atom, box
	if len(lines) < 4 {
		return nil, 0, Error{WrongFormat, filename, []string{"readAnchors"}, true}
	}
	raw := make([]float64, 0, 2)
	for _, line := range lines[2 : len(lines)-1] {
		if len(line) < zEnd {
			return nil, 0, Error{fmt.Sprintf("Atom record too short: %q", line), filename, []string{"readAnchors"}, true}
		}
		if strings.TrimSpace(line[nameStart:nameEnd]) != species {
			continue
		}
		z, err := strconv.ParseFloat(strings.TrimSpace(line[zStart:zEnd]), 64)
		if err != nil {
			return nil, 0, Error{"Couldn't read a z coordinate: " + err.Error(), filename, []string{"strconv.ParseFloat", "readAnchors"}, true}
		}
		raw = append(raw, z)
	}
	box, err := boxZ(lines[len(lines)-1], filename)
	if err != nil {
		return nil, 0, err
	}
	A, err := adsorb.NewAnchorSet(raw)
	if err != nil {
		return nil, 0, Error{err.Error(), filename, []string{"readAnchors"}, true}
	}
	return A, box, nil
}

// boxZ extracts the box dimension along z from the last line of the snapshot.
func boxZ(line, filename string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, Error{fmt.Sprintf("Box line has %d fields, need at least 3", len(fields)), filename, []string{"boxZ"}, true}
	}
	box, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, Error{"Couldn't read the box dimension: " + err.Error(), filename, []string{"strconv.ParseFloat", "boxZ"}, true}
	}
	if box <= 0 {
		return 0, Error{fmt.Sprintf("Non-positive box dimension %v", box), filename, []string{"boxZ"}, true}
	}
	return box, nil
}

//Errors

// Error is the structure for gro snapshot errors. It fulfills adsorb.Error and
// adsorb.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("Gro snapshot file %s error: %s", err.filename, err.message)
}

func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Format() string { return "Gro" }

func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in the snapshot file"
)
