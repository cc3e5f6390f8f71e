package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the Druim source file extension.
const SourceExt = ".dm"

// CheckDirResult is the outcome for one file of a directory check.
// Result is nil only when loading the file itself failed.
type CheckDirResult struct {
	Path   string
	Result *ParseResult
	Err    error
}

// listSourceFiles returns every *.dm file under dir, sorted for a
// deterministic result order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir parses every *.dm file under dir in parallel. Per-file
// outcomes, including load failures, land in the result slice; the
// returned error covers directory walking and cancellation only.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int) ([]CheckDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns its index, so no mutex is needed.
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Parse(path, opts)
			results[i] = CheckDirResult{Path: path, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
