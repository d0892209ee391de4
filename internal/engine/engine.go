package engine

import (
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/logsweep/logsweep/internal/cache"
	"github.com/logsweep/logsweep/internal/ignore"
	"github.com/logsweep/logsweep/internal/rules"
	"github.com/logsweep/logsweep/internal/types"
)

// Config controls a sweep: scope, selection filters, and write behavior.
type Config struct {
	Root            string
	IncludeGlobs    string // comma-separated, doublestar syntax
	ExcludeGlobs    string
	MaxBytes        int64
	DryRun          bool // report removals without writing
	NoCache         bool
	DefaultExcludes bool

	// Progress, when set, is invoked for every file with removals or a
	// read/write failure.
	Progress func(types.FileResult)
}

// Result is the outcome of one sweep.
type Result struct {
	Summary  types.Summary
	Files    []types.FileResult // files with removals or failures, in walk order
	Duration time.Duration
}

// Clean sweeps the tree once per language and rewrites matching files
// in place. Per-file failures are reported through the result; the only
// error returned is a walk setup failure.
func Clean(cfg Config) (Result, error) {
	result := Result{Summary: types.Summary{FilesProcessed: map[types.Language]int{}}}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".logsweepignore"))

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]string{}
	}
	updated := map[string]string{}

	started := time.Now()
	for _, set := range rules.All() {
		err := Walk(cfg, set, ign, func(path, rel string) {
			result.Summary.FilesProcessed[set.Language]++

			data, err := os.ReadFile(path)
			if err != nil {
				recordFailure(&result, cfg, types.FileResult{Path: rel, Language: set.Language, Err: err.Error()})
				return
			}
			sum := fastHash(data)
			if !cfg.NoCache && db.Entries[rel] == sum {
				result.Summary.CacheHits++
				return
			}

			fr := RewriteFile(path, rel, data, set, cfg.DryRun)
			switch {
			case fr.Err != "":
				recordFailure(&result, cfg, fr)
			case fr.Removed > 0:
				result.Summary.FilesModified++
				result.Summary.LinesRemoved += fr.Removed
				result.Files = append(result.Files, fr)
				if cfg.Progress != nil {
					cfg.Progress(fr)
				}
			default:
				// Already clean: remember the content hash so the next sweep
				// can skip the file entirely. Modified files are left out and
				// earn their entry on the following run.
				if !cfg.DryRun {
					updated[rel] = sum
				}
			}
		})
		if err != nil {
			return result, err
		}
	}

	if !cfg.NoCache && !cfg.DryRun && len(updated) > 0 {
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}

	result.Duration = time.Since(started)
	return result, nil
}

// ApplyPaths rewrites only the given root-relative paths, resolving
// each file's language from its extension. Used by the review flow
// after a dry-run sweep.
func ApplyPaths(cfg Config, rels []string) (Result, error) {
	result := Result{Summary: types.Summary{FilesProcessed: map[types.Language]int{}}}
	started := time.Now()
	for _, rel := range rels {
		set, ok := rules.ForExtension(filepath.Ext(rel))
		if !ok {
			continue
		}
		result.Summary.FilesProcessed[set.Language]++
		path := filepath.Join(cfg.Root, rel)
		data, err := os.ReadFile(path)
		if err != nil {
			recordFailure(&result, cfg, types.FileResult{Path: rel, Language: set.Language, Err: err.Error()})
			continue
		}
		fr := RewriteFile(path, rel, data, set, false)
		if fr.Err != "" {
			recordFailure(&result, cfg, fr)
			continue
		}
		if fr.Removed > 0 {
			result.Summary.FilesModified++
			result.Summary.LinesRemoved += fr.Removed
			result.Files = append(result.Files, fr)
			if cfg.Progress != nil {
				cfg.Progress(fr)
			}
		}
	}
	result.Duration = time.Since(started)
	return result, nil
}

func recordFailure(result *Result, cfg Config, fr types.FileResult) {
	result.Summary.FilesFailed++
	result.Files = append(result.Files, fr)
	if cfg.Progress != nil {
		cfg.Progress(fr)
	}
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xf]
		sum >>= 4
	}
	return string(buf[:])
}
