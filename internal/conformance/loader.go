package conformance

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"
)

//go:embed suites/*.yaml
var builtinSuites embed.FS

// LoadedCase is a case with the suite and file it came from
type LoadedCase struct {
	File  string
	Suite string
	Case  Case
}

// Builtin loads the suites shipped with the binary.
func Builtin(ctx context.Context) ([]LoadedCase, error) {
	sub, err := fs.Sub(builtinSuites, "suites")
	if err != nil {
		return nil, err
	}

	return LoadFS(ctx, sub)
}

// LoadDir loads every suite found under dir.
func LoadDir(ctx context.Context, dir string) ([]LoadedCase, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	return LoadFS(ctx, os.DirFS(dir))
}

// LoadFS walks fsys for .yaml and .yml files and parses them concurrently.
// Cases are returned in file then declaration order.
func LoadFS(ctx context.Context, fsys fs.FS) ([]LoadedCase, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		switch path.Ext(p) {
		case ".yaml", ".yml":
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	suites := make([]*Suite, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			suite, err := loadSuite(fsys, file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			suites[i] = suite

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var loaded []LoadedCase
	for i, suite := range suites {
		for _, c := range suite.Cases {
			loaded = append(loaded, LoadedCase{
				File:  files[i],
				Suite: suite.Name,
				Case:  c,
			})
		}
	}

	zap.S().Debugw("suites loaded", "files", len(files), "cases", len(loaded))

	return loaded, nil
}

// loadSuite parses and validates a single YAML file
func loadSuite(fsys fs.FS, name string) (*Suite, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var suite Suite
	if err := yaml.UnmarshalStrict(data, &suite); err != nil {
		return nil, err
	}

	if err := suite.Validate(); err != nil {
		return nil, err
	}

	return &suite, nil
}
