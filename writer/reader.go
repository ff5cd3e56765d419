package writer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/hgaensbauer/ddsdata/generator"
	"github.com/hgaensbauer/ddsdata/record"
	"golang.org/x/sync/errgroup"
)

var ErrMismatch = errors.New("data files do not match samples")

// File is a data file read back from disk.
type File struct {
	Path    string
	Chunk   int
	Records []record.Record
}

// ReadDir reads every data file of format f in dir, in chunk order. The files
// must be numbered 0..n-1 without gaps.
func ReadDir(ctx context.Context, dir string, f record.Format) ([]File, error) {
	dir, err := NormalizeDir(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	var chunks []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if c, ok := chunkIndex(entry.Name(), f); ok {
			chunks = append(chunks, c)
		}
	}
	slices.Sort(chunks)
	for i, c := range chunks {
		if i != c {
			return nil, fmt.Errorf("missing data file %s", FileName(i, f))
		}
	}

	files := make([]File, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, c := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := dir + FileName(c, f)
			records, err := readFile(path)
			if err != nil {
				return err
			}
			files[c] = File{Path: path, Chunk: c, Records: records}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// chunkIndex extracts c from a name of the form data{c}{ext}.
func chunkIndex(name string, f record.Format) (int, bool) {
	s, ok := strings.CutPrefix(name, "data")
	if !ok {
		return 0, false
	}
	s, ok = strings.CutSuffix(s, f.Ext())
	if !ok || s == "" {
		return 0, false
	}
	c, err := strconv.Atoi(s)
	if err != nil || c < 0 || strconv.Itoa(c) != s {
		return 0, false
	}
	return c, true
}

func readFile(path string) ([]record.Record, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer fd.Close()

	var records []record.Record
	s := bufio.NewScanner(fd)
	for line := 1; s.Scan(); line++ {
		r, err := record.Parse(s.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		records = append(records, r)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return records, nil
}

// Verify reads the data files in opts.Dir back and checks that they hold
// exactly the records Write would produce for samples.
func Verify(ctx context.Context, samples generator.Samples, opts Options) error {
	if opts.PointsPerFile < 1 {
		return ErrInvalidPointsPerFile
	}
	files, err := ReadDir(ctx, opts.Dir, opts.Format)
	if err != nil {
		return err
	}

	total := samples.Len()
	if want := NumFiles(total, opts.PointsPerFile); len(files) != want {
		return fmt.Errorf("%w: have %d files, want %d", ErrMismatch, len(files), want)
	}

	var address int
	for _, file := range files {
		want := min(opts.PointsPerFile, total-file.Chunk*opts.PointsPerFile)
		if len(file.Records) != want {
			return fmt.Errorf("%w: %s has %d records, want %d", ErrMismatch, file.Path, len(file.Records), want)
		}
		for _, r := range file.Records {
			expected := record.Encode(address, samples.A[address], samples.B[address])
			if r != expected {
				return fmt.Errorf("%w: %s: address %d is %q, want %q",
					ErrMismatch, file.Path, address, strings.TrimSpace(r.String()), strings.TrimSpace(expected.String()))
			}
			address++
		}
	}
	return nil
}
