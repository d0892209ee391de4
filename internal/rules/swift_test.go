package rules

import "testing"

func TestSwiftLineRules(t *testing.T) {
	set := Swift()
	match := []string{
		`print("hello")`,
		`    print("view did load: \(self)")`,
		`NSLog("legacy %@", err)`,
		`os_log("event fired")`,
		`// print("commented out")`,
	}
	for _, line := range match {
		if !matchesAnyLine(set, line) {
			t.Fatalf("expected match for %q", line)
		}
	}
	noMatch := []string{
		`printHeader()`,
		`let s = "print(x)"`,
		`#if DEBUG`,
		`return view`,
	}
	for _, line := range noMatch {
		if matchesAnyLine(set, line) {
			t.Fatalf("unexpected match for %q", line)
		}
	}
}

func TestSwiftBlockMarkers(t *testing.T) {
	set := Swift()
	if set.BlockMode != Terminated {
		t.Fatal("swift block must be terminator based")
	}
	if !set.BlockStart.MatchString("#if DEBUG\n") {
		t.Fatal("expected #if DEBUG to open a block")
	}
	if set.BlockStart.MatchString("#if DEBUG && os(iOS)") {
		t.Fatal("guarded #if variants must pass through")
	}
	if !set.BlockEnd.MatchString("  #endif\n") {
		t.Fatal("expected #endif to close a block")
	}
}

func TestForExtension(t *testing.T) {
	if s, ok := ForExtension(".swift"); !ok || s.Language != "swift" {
		t.Fatalf("ForExtension(.swift) = %v, %v", s.Language, ok)
	}
	if _, ok := ForExtension(".kt"); ok {
		t.Fatal("unknown extension must not resolve")
	}
}
