package lexmach

import (
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"a",
	"f(a)",
	"Hello  World",
	"x = y // commented ",
	"a,b,c",
}

var tokenCounts = []int{1, 4, 2, 3, 5}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lmInit, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		token, err := sc.NextToken()
		for err == nil {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token, err = sc.NextToken()
			count++
		}
		if err != io.EOF {
			t.Errorf("expected input #%d to end with EOF, got %v", i, err)
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lmInit, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("  pair(ab")
	expected := [][2]uint64{{2, 6}, {6, 7}, {7, 9}}
	for i, x := range expected {
		token, err := sc.NextToken()
		if err != nil {
			t.Fatalf("unexpected error at token #%d: %v", i, err)
		}
		if token.Span().From() != x[0] || token.Span().To() != x[1] {
			t.Errorf("expected span of %q to be %v, is %s", token.Lexeme(), x, token.Span())
		}
	}
}

func TestLMUnmatched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lmInit, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("a + b")
	var reported error
	sc.SetErrorHandler(func(e error) { reported = e })
	if _, err := sc.NextToken(); err != nil {
		t.Fatalf("expected first token to be scanned, got %v", err)
	}
	_, err = sc.NextToken()
	var ue *UnmatchedInputError
	if !errors.As(err, &ue) {
		t.Fatalf("expected unmatched input error, got %v", err)
	}
	if ue.Char != '+' || ue.Span.From() != 2 {
		t.Errorf("expected '+' at offset 2, got %q at %d", ue.Char, ue.Span.From())
	}
	if reported != err {
		t.Errorf("expected error handler to be called with %v", err)
	}
	if _, again := sc.NextToken(); again != err {
		t.Errorf("expected scanner to stay stopped, got %v", again)
	}
}

func lmInit(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), MakeToken("ID", tokenIds["ID"]))
	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
}

var literals []string       // The tokens representing literal strings
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{"(", ")", ",", "="}
	tokenIds = make(map[string]int)
	tokenIds["ID"] = 1
	for i, tok := range literals {
		tokenIds[tok] = i + 10
	}
}
