package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/deckgen/internal/slide"
)

// Token texts must cover the entire input with no gaps.
func TestTokenize_CoversInput(t *testing.T) {
	code := "func main() {\n\t// greet\n\tfmt.Println(\"hi\", 42)\n}"
	tokens := Tokenize(code, "go")
	var got strings.Builder
	for _, tok := range tokens {
		got.WriteString(tok.Text)
	}
	if got.String() != code {
		t.Errorf("token coverage broken:\ngot  %q\nwant %q", got.String(), code)
	}
}

func TestTokenize_Kinds(t *testing.T) {
	tokens := Tokenize("func main() {\n\t// greet\n\tfmt.Println(\"hi\", 42)\n}", "go")
	kinds := map[string]slide.TokenKind{}
	for _, tok := range tokens {
		kinds[strings.TrimSpace(tok.Text)] = tok.Kind
	}
	if kinds["func"] != slide.TokenKeyword {
		t.Errorf("func classified as %v", kinds["func"])
	}
	if kinds[`"hi"`] != slide.TokenString {
		t.Errorf(`"hi" classified as %v`, kinds[`"hi"`])
	}
	if kinds["// greet"] != slide.TokenComment {
		t.Errorf("comment classified as %v", kinds["// greet"])
	}
	if kinds["42"] != slide.TokenNumber {
		t.Errorf("42 classified as %v", kinds["42"])
	}
}

func TestTokenize_PythonComment(t *testing.T) {
	tokens := Tokenize("x = 1  # count", "python")
	var comment bool
	for _, tok := range tokens {
		if tok.Kind == slide.TokenComment && strings.HasPrefix(tok.Text, "#") {
			comment = true
		}
	}
	if !comment {
		t.Error("expected a comment token")
	}
}

func TestTokenize_SQLKeywordsAreCaseInsensitive(t *testing.T) {
	tokens := Tokenize("SELECT id FROM users", "sql")
	var keywords []string
	for _, tok := range tokens {
		if tok.Kind == slide.TokenKeyword {
			keywords = append(keywords, tok.Text)
		}
	}
	if len(keywords) != 2 || keywords[0] != "SELECT" || keywords[1] != "FROM" {
		t.Errorf("unexpected keywords %q", keywords)
	}
}

func TestTokenize_StringEscapes(t *testing.T) {
	tokens := Tokenize(`s = "a \" b"`, "python")
	var str string
	for _, tok := range tokens {
		if tok.Kind == slide.TokenString {
			str = tok.Text
		}
	}
	if str != `"a \" b"` {
		t.Errorf("escaped quote split the string: %q", str)
	}
}

func TestTokenize_LanguageAliases(t *testing.T) {
	for _, tok := range Tokenize("const x = 1", "js") {
		if tok.Text == "const" && tok.Kind != slide.TokenKeyword {
			t.Errorf("js alias not normalized, const classified as %v", tok.Kind)
		}
	}
	for _, tok := range Tokenize("export PATH", "shell") {
		if tok.Text == "export" && tok.Kind != slide.TokenKeyword {
			t.Errorf("shell alias not normalized, export classified as %v", tok.Kind)
		}
	}
}

func TestTokenize_UnsupportedLanguage(t *testing.T) {
	code := "fn main() {}"
	tokens := Tokenize(code, "rust")
	if len(tokens) != 1 {
		t.Fatalf("expected a single token, got %d", len(tokens))
	}
	if tokens[0].Kind != slide.TokenDefault || tokens[0].Text != code {
		t.Errorf("unexpected token %+v", tokens[0])
	}
}

func TestTokenize_Empty(t *testing.T) {
	if tokens := Tokenize("", "go"); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %+v", tokens)
	}
	if tokens := Tokenize("", "rust"); len(tokens) != 0 {
		t.Errorf("expected no tokens for unsupported language, got %+v", tokens)
	}
}
