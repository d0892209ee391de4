package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher answers whether a slash-separated path relative to the sweep
// root is excluded by a .logsweepignore file.
type Matcher struct {
	dirs  []string // trailing-slash patterns, matched against any segment prefix
	globs []string
}

// Load parses an ignore file. A missing file yields an empty matcher
// and the read error; callers typically ignore the error.
func Load(p string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(p)
	if err != nil {
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
			continue
		}
		m.globs = append(m.globs, line)
	}
	return m, sc.Err()
}

// Match reports whether rel is ignored. Directory patterns match when
// any path segment equals the pattern; glob patterns are tried against
// the full relative path and the base name.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	if len(m.dirs) > 0 {
		segs := strings.Split(rel, "/")
		for _, d := range m.dirs {
			for _, s := range segs[:max(len(segs)-1, 0)] {
				if s == d {
					return true
				}
			}
		}
	}
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, path.Base(rel)); ok {
			return true
		}
	}
	return false
}
