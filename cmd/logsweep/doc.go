// Package logsweep provides the command-line interface for the logsweep
// tool. It configures subcommands (clean, rules, completion, gendocs),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/logsweep/logsweep/cmd/logsweep"
//	func main() { logsweep.Execute() }
package logsweep
