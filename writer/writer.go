// Package writer splits encoded records across the numbered data files the
// DDS host loads, and reads them back for verification.
package writer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hgaensbauer/ddsdata/generator"
	"github.com/hgaensbauer/ddsdata/record"
	"github.com/hgaensbauer/ddsdata/util"
	"github.com/rs/zerolog"
)

const (
	// DefaultDir is where the host tool looks for data files.
	DefaultDir = "~/Desktop/DDS_data/"
	// DefaultPointsPerFile keeps each file small enough for one host transfer.
	DefaultPointsPerFile = 1200
)

var (
	ErrInvalidPointsPerFile = errors.New("points per file must be a positive integer")
	ErrInvalidPath          = errors.New("output path must be a non-empty string")
)

// Options controls where and how the data files are written.
type Options struct {
	Dir           string
	PointsPerFile int
	Format        record.Format
}

// DefaultOptions returns the options used when nothing is given on the
// command line.
func DefaultOptions() Options {
	return Options{
		Dir:           DefaultDir,
		PointsPerFile: DefaultPointsPerFile,
		Format:        record.Canonical,
	}
}

// FileInfo describes one written data file.
type FileInfo struct {
	Path    string
	Chunk   int
	First   int // first address in the file
	Last    int // last address in the file, inclusive
	Records int
}

// Result is returned by Write.
type Result struct {
	Dir   string
	Files []FileInfo
}

// NumFiles returns how many files are needed to hold total points at perFile
// points each.
func NumFiles(total, perFile int) int {
	if perFile < 1 || total <= 0 {
		return 0
	}
	return (total + perFile - 1) / perFile
}

// FileName returns the name of the file holding chunk c.
func FileName(c int, f record.Format) string {
	return "data" + strconv.Itoa(c) + f.Ext()
}

// NormalizeDir expands a leading ~ and makes sure the result ends in a path
// separator.
func NormalizeDir(dir string) (string, error) {
	if dir == "" {
		return "", ErrInvalidPath
	}
	dir, err := util.ExpandHome(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand home directory: %w", err)
	}
	return util.WithTrailingSeparator(dir), nil
}

// Write encodes samples and writes them into opts.Dir, opts.PointsPerFile
// records per file. Existing files with the same names are overwritten.
//
// Files are written one after another. ctx is only checked between files.
func Write(ctx context.Context, samples generator.Samples, opts Options) (Result, error) {
	if opts.PointsPerFile < 1 {
		return Result{}, ErrInvalidPointsPerFile
	}
	dir, err := NormalizeDir(opts.Dir)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	total := samples.Len()
	numfiles := NumFiles(total, opts.PointsPerFile)
	logger.Debug().
		Str("dir", dir).
		Int("points", total).
		Int("per_file", opts.PointsPerFile).
		Int("files", numfiles).
		Stringer("format", opts.Format).
		Msg("writing data files")

	res := Result{
		Dir:   dir,
		Files: make([]FileInfo, 0, numfiles),
	}
	for chunk := range numfiles {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		first := chunk * opts.PointsPerFile
		last := min(first+opts.PointsPerFile, total)
		info := FileInfo{
			Path:    dir + FileName(chunk, opts.Format),
			Chunk:   chunk,
			First:   first,
			Last:    last - 1,
			Records: last - first,
		}

		err := writeChunk(info.Path, samples, first, last, opts.Format)
		if err != nil {
			return res, err
		}
		logger.Debug().Str("path", info.Path).Int("records", info.Records).Msg("wrote file")
		res.Files = append(res.Files, info)
	}

	return res, nil
}

// writeChunk writes the records for addresses [first, last) into path.
func writeChunk(path string, samples generator.Samples, first, last int, f record.Format) (err error) {
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create data file: %w", err)
	}
	defer func() {
		if cerr := fd.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close data file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(fd)
	buf := make([]byte, 0, 32)
	for address, pair := range samples.Range(first, last) {
		buf = record.Encode(address, pair.A, pair.B).AppendText(buf[:0], f)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("failed to write record %d: %w", address, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}
