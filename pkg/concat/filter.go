// File: pkg/concat/filter.go
package concat

import "strings"

// ExcludeGlobs are tested against every file and directory name. The
// substring globs (*dist*, *build*, *venv*) also exclude names such as
// "distance.go" or "rebuild_assets".
var ExcludeGlobs = []string{
	".*",             // Hidden files and directories
	"*node_modules*", // Node modules
	"*.pyc",          // Python bytecode
	"*.git*",         // Git metadata
	"*.log",
	"*.md",
	"*.txt", // Also keeps previous outputs out
	"*.json",
	"*.lock",
	"*__pycache__*",
	"*.env*",
	"*venv*",
	"*dist*",
	"*build*",
}

// CodeExtensions is the set of lowercase extensions treated as source code.
var CodeExtensions = map[string]bool{
	"py": true, "js": true, "jsx": true, "ts": true, "tsx": true,
	"java": true, "cpp": true, "c": true, "hpp": true, "h": true,
	"css": true, "scss": true, "sass": true, "less": true, "html": true,
	"php": true, "rb": true, "go": true, "rs": true, "swift": true,
	"kt": true, "scala": true, "sql": true, "sh": true, "bash": true,
	"ps1": true, "r": true, "vue": true, "cs": true, "fs": true,
	"f90": true, "f95": true, "f03": true, "perl": true, "pl": true,
	"lua": true,
}

var excludePatterns = compileGlobs(ExcludeGlobs)

func compileGlobs(globs []string) []Pattern {
	patterns := make([]Pattern, 0, len(globs))
	for _, g := range globs {
		patterns = append(patterns, CompileGlob(g))
	}
	return patterns
}

// ShouldInclude reports whether name survives the exclusion rules. name is a
// bare file or directory name; outputName is excluded literally so a run
// never reads its own output.
func ShouldInclude(name, outputName string) bool {
	if name == outputName {
		return false
	}
	_, excluded := matchExclusion(name)
	return !excluded
}

// matchExclusion returns the first exclusion glob that matches name.
func matchExclusion(name string) (string, bool) {
	for _, p := range excludePatterns {
		if p.Match(name) {
			return p.Glob, true
		}
	}
	return "", false
}

// Extension returns the lowercased text after the final '.' in name, or ""
// when name has no dot or ends with one.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// IsCodeFile reports whether name has one of the CodeExtensions.
func IsCodeFile(name string) bool {
	return CodeExtensions[Extension(name)]
}
