package parser

import (
	"strings"

	"github.com/dgallion1/deckgen/internal/slide"
)

// keywordSets holds lowercase keyword sets per supported language. Aliases
// (js, shell) are normalized before lookup.
var keywordSets = map[string]map[string]bool{
	"python": set("def", "class", "if", "else", "elif", "for", "while", "import",
		"from", "return", "try", "except", "finally", "with", "as", "pass",
		"break", "continue", "raise", "lambda", "and", "or", "not", "in", "is",
		"none", "true", "false", "yield", "assert", "del", "global", "nonlocal",
		"async", "await"),
	"javascript": set("function", "var", "let", "const", "if", "else", "for",
		"while", "do", "switch", "case", "break", "continue", "return", "try",
		"catch", "finally", "throw", "new", "this", "class", "extends", "import",
		"export", "default", "async", "await", "typeof", "instanceof", "void",
		"null", "undefined", "true", "false"),
	"java": set("public", "private", "protected", "static", "final", "class",
		"interface", "enum", "extends", "implements", "if", "else", "for",
		"while", "do", "switch", "case", "break", "continue", "return", "try",
		"catch", "finally", "throw", "new", "this", "super", "void", "true",
		"false", "null", "import", "package", "abstract", "synchronized"),
	"go": set("package", "import", "func", "type", "struct", "interface", "if",
		"else", "for", "range", "switch", "case", "default", "break", "continue",
		"goto", "return", "defer", "go", "const", "var", "make", "new", "true",
		"false", "iota", "nil", "map", "chan", "select"),
	"bash": set("if", "then", "else", "elif", "fi", "case", "esac", "for",
		"while", "until", "do", "done", "break", "continue", "function",
		"return", "export", "local", "readonly", "declare", "unset", "in"),
	"sql": set("select", "from", "where", "and", "or", "not", "in", "like",
		"between", "is", "null", "join", "inner", "left", "right", "full", "on",
		"as", "group", "by", "having", "order", "distinct", "insert", "into",
		"values", "update", "set", "delete", "create", "table", "database",
		"index", "alter", "drop", "truncate", "case", "when", "then", "end"),
	"yaml": set("true", "false", "yes", "no", "on", "off", "null"),
	"json": set("true", "false", "null"),
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// normalizeLanguage maps fence-tag aliases onto canonical language names.
func normalizeLanguage(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	switch lang {
	case "js":
		return "javascript"
	case "shell":
		return "bash"
	}
	return lang
}

// lineCommentPrefix returns the line comment marker for a language, or "".
func lineCommentPrefix(lang string) string {
	switch lang {
	case "python", "bash", "yaml":
		return "#"
	case "javascript", "java", "go":
		return "//"
	case "sql":
		return "--"
	}
	return ""
}

// Tokenize classifies code text into colored tokens for a language. The scan
// is single-pass and purely lexical; the concatenated token texts cover the
// entire input with no gaps. Unsupported languages yield the whole input as
// one default token.
func Tokenize(code, language string) []slide.CodeToken {
	lang := normalizeLanguage(language)
	keywords, supported := keywordSets[lang]
	if !supported {
		if code == "" {
			return nil
		}
		return []slide.CodeToken{{Text: code}}
	}
	if code == "" {
		return nil
	}

	comment := lineCommentPrefix(lang)
	var tokens []slide.CodeToken
	emit := func(text string, kind slide.TokenKind) {
		// Fold runs of default tokens together to keep the stream small.
		if n := len(tokens); kind == slide.TokenDefault && n > 0 && tokens[n-1].Kind == slide.TokenDefault {
			tokens[n-1].Text += text
			return
		}
		tokens = append(tokens, slide.CodeToken{Text: text, Kind: kind})
	}

	i := 0
	for i < len(code) {
		c := code[i]

		if isSpace(c) {
			start := i
			for i < len(code) && isSpace(code[i]) {
				i++
			}
			emit(code[start:i], slide.TokenDefault)
			continue
		}

		if c == '"' || c == '\'' {
			start := i
			i++
			for i < len(code) && code[i] != c {
				if code[i] == '\\' && i+1 < len(code) {
					i++
				}
				i++
			}
			if i < len(code) {
				i++ // closing quote
			}
			emit(code[start:i], slide.TokenString)
			continue
		}

		if comment != "" && strings.HasPrefix(code[i:], comment) {
			start := i
			for i < len(code) && code[i] != '\n' {
				i++
			}
			emit(code[start:i], slide.TokenComment)
			continue
		}

		if isIdentStart(c) {
			start := i
			for i < len(code) && isIdentPart(code[i]) {
				i++
			}
			word := code[start:i]
			if keywords[strings.ToLower(word)] {
				emit(word, slide.TokenKeyword)
			} else {
				emit(word, slide.TokenDefault)
			}
			continue
		}

		if c >= '0' && c <= '9' {
			start := i
			for i < len(code) && (code[i] >= '0' && code[i] <= '9' || code[i] == '.') {
				i++
			}
			emit(code[start:i], slide.TokenNumber)
			continue
		}

		emit(code[i:i+1], slide.TokenDefault)
		i++
	}

	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
