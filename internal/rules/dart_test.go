package rules

import "testing"

func TestDartLineRules(t *testing.T) {
	set := Dart()
	match := []string{
		`print("hello");`,
		`  print('x: $x');  `,
		"\tdebugPrint('state changed');",
		`developer.log('lifecycle', name: 'app');`,
		`if (kDebugMode) print("dbg");`,
	}
	for _, line := range match {
		if !matchesAnyLine(set, line) {
			t.Fatalf("expected match for %q", line)
		}
	}
	noMatch := []string{
		`printer("hello");`,
		`final s = "print(x);";`, // assignment, not a call at line start
		`debugPrintStack();x`,
		`if (kDebugMode) {`,
		`return;`,
	}
	for _, line := range noMatch {
		if matchesAnyLine(set, line) {
			t.Fatalf("unexpected match for %q", line)
		}
	}
}

func TestDartBlockAndCallMarkers(t *testing.T) {
	set := Dart()
	if set.BlockMode != BraceCounted {
		t.Fatal("dart block must be brace counted")
	}
	if !set.BlockStart.MatchString("  if (kDebugMode) {\n") {
		t.Fatal("expected block opener match")
	}
	if set.BlockStart.MatchString(`if (kDebugMode) print("x");`) {
		t.Fatal("single-line form must not open a block")
	}
	if !set.CallStart.MatchString(`  print("a"`) {
		t.Fatal("expected call opener match")
	}
}

func matchesAnyLine(set Set, line string) bool {
	for _, r := range set.Lines {
		if r.Re.MatchString(line) {
			return true
		}
	}
	return false
}
