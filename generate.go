package main

import (
	"context"
	"iter"

	"github.com/hgaensbauer/ddsdata/generator"
	"github.com/hgaensbauer/ddsdata/storage"
	"github.com/hgaensbauer/ddsdata/writer"
	"github.com/rs/zerolog"
)

// GenerateFiles computes the default waveform and writes it out according to
// opts. When dbPath is set every written address is also recorded there.
func GenerateFiles(ctx context.Context, opts writer.Options, dbPath string, verify bool) (writer.Result, error) {
	logger := zerolog.Ctx(ctx)

	samples := generator.Generate(generator.DefaultWaveform)

	res, err := writer.Write(ctx, samples, opts)
	if err != nil {
		return res, err
	}

	if verify {
		if err := writer.Verify(ctx, samples, opts); err != nil {
			return res, err
		}
		logger.Info().Int("files", len(res.Files)).Msg("verified data files")
	}

	if dbPath == "" {
		return res, nil
	}

	db, err := storage.NewSQLiteClient(dbPath)
	if err != nil {
		return res, err
	}
	defer db.Close()

	runID, err := CatalogRun(db, samples, opts, res)
	if err != nil {
		return res, err
	}
	logger.Info().Int64("run", runID).Str("db", dbPath).Msg("stored run")
	return res, nil
}

// CatalogRun stores the run described by res, and the samples behind every
// address it wrote, in db.
func CatalogRun(db storage.Storage, samples generator.Samples, opts writer.Options, res writer.Result) (int64, error) {
	runID, err := db.StoreRun(storage.Run{
		Dir:           res.Dir,
		PointsPerFile: opts.PointsPerFile,
		Format:        opts.Format.String(),
		Files:         len(res.Files),
		Points:        samples.Len(),
	})
	if err != nil {
		return 0, err
	}

	err = db.StoreRecords(runID, entries(samples, res.Files))
	if err != nil {
		return runID, err
	}
	return runID, nil
}

func entries(samples generator.Samples, files []writer.FileInfo) iter.Seq2[int, storage.Entry] {
	return func(yield func(int, storage.Entry) bool) {
		for _, file := range files {
			for address, pair := range samples.Range(file.First, file.Last+1) {
				if !yield(address, storage.Entry{A: pair.A, B: pair.B, Chunk: file.Chunk}) {
					return
				}
			}
		}
	}
}
