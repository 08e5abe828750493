package xvg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Readers for the xmgrace-style time series written by the simulation
//post-processing: lines starting with '@' or '#' carry metadata and are
//skipped; every other line is one frame, whose first field is the step index.

// Frames reads a per-polymer z trajectory and returns one slice of positions
// per frame, in frame order. The step index leading each line is discarded;
// polymer identity is the position of the value in the line, which must be
// stable, so frames with differing numbers of values are a format error.
func Frames(filename string) ([][]float64, error) {
	r, err := open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	ret := make([][]float64, 0, 1000)
	perframe := -1
	err = eachDataLine(r, filename, func(fields []string) error {
		frame := make([]float64, 0, len(fields)-1)
		for _, v := range fields[1:] { //fields[0] is the step index
			z, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Error{"Couldn't read a position: " + err.Error(), filename, []string{"strconv.ParseFloat", "Frames"}, true}
			}
			frame = append(frame, z)
		}
		if perframe >= 0 && len(frame) != perframe {
			return Error{fmt.Sprintf("Frame %d has %d positions, previous frames had %d", len(ret), len(frame), perframe), filename, []string{"Frames"}, true}
		}
		perframe = len(frame)
		ret = append(ret, frame)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Gyration reads a radius-of-gyration series in the format of the Gromacs
// gyrate tool, [step, Rg, Rgx, Rgy, Rgz], and returns the total Rg, one value
// per frame. Only the second field of each line is kept.
func Gyration(filename string) ([]float64, error) {
	r, err := open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	ret := make([]float64, 0, 1000)
	err = eachDataLine(r, filename, func(fields []string) error {
		if len(fields) < 2 {
			return Error{fmt.Sprintf("Gyration line has %d fields, need at least 2", len(fields)), filename, []string{"Gyration"}, true}
		}
		rg, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Error{"Couldn't read a gyration radius: " + err.Error(), filename, []string{"strconv.ParseFloat", "Gyration"}, true}
		}
		ret = append(ret, rg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// eachDataLine calls f with the fields of every non-comment, non-empty line.
func eachDataLine(r io.Reader, filename string, f func(fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024) //frames can hold many polymers
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "@") || strings.HasPrefix(line, "#") {
			continue
		}
		if err := f(strings.Fields(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return Error{"Couldn't read the series: " + err.Error(), filename, []string{"eachDataLine"}, true}
	}
	return nil
}

// open opens a series file, transparently decompressing it if the name ends
// in .gz or .zst.
func open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"open"}, true}
	}
	switch {
	case strings.HasSuffix(filename, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Error{"Couldn't read the gzip header: " + err.Error(), filename, []string{"open"}, true}
		}
		return &decompressed{g, []io.Closer{g, f}}, nil
	case strings.HasSuffix(filename, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Error{"Couldn't read the zstd header: " + err.Error(), filename, []string{"open"}, true}
		}
		rc := z.IOReadCloser()
		return &decompressed{rc, []io.Closer{rc, f}}, nil
	}
	return f, nil
}

// decompressed chains the decompressor and the underlying file so both get
// closed.
type decompressed struct {
	io.Reader
	closers []io.Closer
}

func (d *decompressed) Close() error {
	var err error
	for _, c := range d.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Errors

// Error is the structure for series file errors. It fulfills adsorb.Error and
// adsorb.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("Series file %s error: %s", err.filename, err.message)
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

func (err Error) Format() string { return "xvg" }

func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
)
