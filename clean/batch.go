package clean

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiiranathan/ethicsprep/corpus"
	"golang.org/x/sync/errgroup"
)

// OutputName returns the cleaned file name for an input path,
// e.g. "books/ross.txt" becomes "ross_cleaned.txt".
func OutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_cleaned.txt"
}

// outputPath places the cleaned copy of file under outDir, keeping the
// file's directory relative to dir.
func outputPath(dir, outDir, file string) (string, error) {
	rel, err := filepath.Rel(dir, filepath.Dir(file))
	if err != nil {
		return "", err
	}

	target := filepath.Join(outDir, rel)
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		return "", fmt.Errorf("unable to create directory: %s: %w", target, err)
	}
	return filepath.Join(target, OutputName(file)), nil
}

// CleanDirectory cleans every .txt file under dir as format, using at most
// workers goroutines. Each result is written to OutputName(file) in the
// directory under outDir that mirrors the file's directory under dir, so
// files with the same name in different subdirectories do not collide.
// outDir itself is not walked when it lies inside dir.
// Results are returned in the order the files were found.
// The first failure cancels the files not yet started.
func CleanDirectory(ctx context.Context, dir, outDir string, format TranslatorFormat,
	workers int, opts Options) ([]Result, error) {
	files, err := corpus.WalkDir(dir, []string{".txt"}, outDir)
	if err != nil {
		return nil, fmt.Errorf("unable to load files at %s: %w", dir, err)
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("unable to create directory: %s: %w", outDir, err)
	}

	log.Printf("Found %d files in %s\n", len(files), dir)

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := CleanFile(file, format, opts)
			if err != nil {
				return err
			}

			out, err := outputPath(dir, outDir, file)
			if err != nil {
				return err
			}
			if err := corpus.WriteLines(out, res.Sentences); err != nil {
				return err
			}

			log.Printf("(%d/%d) %s: %d sentences -> %s\n", i+1, len(files), file, len(res.Sentences), out)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
