package nfa

import (
	"testing"

	"github.com/coregx/rex/lexer"
	"github.com/coregx/rex/parser"
)

func compilePattern(t *testing.T, pattern string) *NFA {
	t.Helper()
	toks, err := lexer.Lex(pattern)
	if err != nil {
		t.Fatalf("Lex(%q): %v", pattern, err)
	}
	tree, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return Compile(tree)
}

func TestCheckLiteral(t *testing.T) {
	n := compilePattern(t, "abc")
	if !n.Check("abc") {
		t.Error("Check(abc) = false, want true")
	}
	if n.Check("ab") || n.Check("abcd") || n.Check("abd") {
		t.Error("Check matched a non-exact string")
	}
}

func TestCheckUnion(t *testing.T) {
	n := compilePattern(t, "cat|dog")
	for _, s := range []string{"cat", "dog"} {
		if !n.Check(s) {
			t.Errorf("Check(%q) = false, want true", s)
		}
	}
	if n.Check("cow") {
		t.Error("Check(cow) = true, want false")
	}
}

func TestCheckStar(t *testing.T) {
	n := compilePattern(t, "a*")
	for _, s := range []string{"", "a", "aaaa"} {
		if !n.Check(s) {
			t.Errorf("Check(%q) = false, want true", s)
		}
	}
	if n.Check("aab") {
		t.Error("Check(aab) = true, want false")
	}
}

func TestCheckPlus(t *testing.T) {
	n := compilePattern(t, "a+")
	if n.Check("") {
		t.Error("Check(\"\") = true, want false for a+")
	}
	if !n.Check("a") || !n.Check("aaa") {
		t.Error("a+ failed to match one or more a's")
	}
}

func TestCheckExactRange(t *testing.T) {
	n := compilePattern(t, "a{3}")
	if n.Check("aa") || n.Check("aaaa") {
		t.Error("a{3} matched wrong length")
	}
	if !n.Check("aaa") {
		t.Error("a{3} failed to match exact length")
	}
}

func TestCheckBoundedRange(t *testing.T) {
	n := compilePattern(t, "a{2,4}")
	for _, s := range []string{"aa", "aaa", "aaaa"} {
		if !n.Check(s) {
			t.Errorf("Check(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"a", "aaaaa"} {
		if n.Check(s) {
			t.Errorf("Check(%q) = true, want false", s)
		}
	}
}

func TestCheckUnboundedMinRange(t *testing.T) {
	// Exercises the {l,} expansion: l-1 mandatory copies + one looped
	// copy, which must enforce "at least l", not merely "at least 1".
	n := compilePattern(t, "a{3,}")
	for _, s := range []string{"aa", "a", ""} {
		if n.Check(s) {
			t.Errorf("Check(%q) = true, want false (need at least 3)", s)
		}
	}
	for _, s := range []string{"aaa", "aaaa", "aaaaaa"} {
		if !n.Check(s) {
			t.Errorf("Check(%q) = false, want true", s)
		}
	}
}

func TestCheckClass(t *testing.T) {
	n := compilePattern(t, "[a-c]+")
	if !n.Check("abcba") {
		t.Error("class range failed to match")
	}
	if n.Check("abcd") {
		t.Error("class range matched out-of-range character")
	}
}

func TestCheckInverseClass(t *testing.T) {
	n := compilePattern(t, "[^0-9]+")
	if !n.Check("abc") {
		t.Error("inverse class failed to match non-digit text")
	}
	if n.Check("ab1") {
		t.Error("inverse class matched text containing a digit")
	}
}

func TestHasMatch(t *testing.T) {
	n := compilePattern(t, "cat")
	if !n.HasMatch("concatenate") {
		t.Error("HasMatch failed to find embedded substring")
	}
	if n.HasMatch("dog") {
		t.Error("HasMatch found a match that is not there")
	}
}

func TestSearchFindsLeftmostLongest(t *testing.T) {
	n := compilePattern(t, "a+")
	start, end, ok := n.Search("xx aaa yy a")
	if !ok {
		t.Fatal("Search found no match")
	}
	if start != 3 || end != 6 {
		t.Fatalf("Search = [%d,%d), want [3,6)", start, end)
	}
}

func TestSearchNoMatch(t *testing.T) {
	n := compilePattern(t, "z+")
	if _, _, ok := n.Search("abc"); ok {
		t.Fatal("Search reported a match where none exists")
	}
}

func TestSearchEmptyMatch(t *testing.T) {
	n := compilePattern(t, "a*")
	start, end, ok := n.Search("bbb")
	if !ok {
		t.Fatal("a* failed to find an empty match")
	}
	if start != 0 || end != 0 {
		t.Fatalf("Search = [%d,%d), want [0,0) (empty match at position 0)", start, end)
	}
}

func TestCompileEvilPatternStaysLinear(t *testing.T) {
	// Classically catastrophic for backtracking engines; must return
	// quickly here since there is no backtracking.
	n := compilePattern(t, "(a+)+b")
	if n.Check(string(make([]byte, 0))) {
		t.Fatal("unexpected match on empty string")
	}
	input := ""
	for i := 0; i < 30; i++ {
		input += "a"
	}
	if n.Check(input) {
		t.Error("(a+)+b matched a string with no trailing b")
	}
	if !n.Check(input + "b") {
		t.Error("(a+)+b failed to match aaa...ab")
	}
}
