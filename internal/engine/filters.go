package engine

import "strings"

// Directories that never hold first-party mobile sources worth sweeping.
var defaultExcludeDirs = map[string]bool{
	"build":        true,
	"Pods":         true,
	"Carthage":     true,
	"DerivedData":  true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"out":          true,
	"coverage":     true,
}

// Generated source suffixes; their debug output is regenerated anyway.
var defaultExcludeFileSuffixes = []string{
	".g.dart",
	".freezed.dart",
	".gr.dart",
	".mocks.dart",
	".pb.dart",
	".generated.swift",
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

func isDefaultFileExcluded(rel string) bool {
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(rel, s) {
			return true
		}
	}
	return false
}
