package parselang

// lex tokenizes expr per spec §6.1's escape rules, grounded in
// original_source/src/parser.rs's tokenize(): a backslash followed by one
// of the escapable metacharacters yields a single literal-char token for
// that character; a backslash followed by a backslash yields a literal
// backslash token; a backslash followed by anything else preserves the
// backslash as its own literal-char token, followed by the next rune as a
// second literal-char token (spec: "a backslash followed by any
// non-metacharacter preserves the backslash literally").
func lex(expr string) []token {
	runes := []rune(expr)
	toks := make([]token, 0, len(runes))
	escaping := false

	for i, r := range runes {
		if escaping {
			switch {
			case r == '\\':
				toks = append(toks, token{kind: tChar, ch: '\\', pos: i})
			case escapable[r]:
				toks = append(toks, token{kind: tChar, ch: r, pos: i})
			default:
				toks = append(toks, token{kind: tChar, ch: '\\', pos: i})
				toks = append(toks, token{kind: tChar, ch: r, pos: i})
			}
			escaping = false
			continue
		}
		if r == '\\' {
			escaping = true
			continue
		}
		if k, ok := metaChars[r]; ok {
			toks = append(toks, token{kind: k, ch: r, pos: i})
			continue
		}
		toks = append(toks, token{kind: tChar, ch: r, pos: i})
	}

	if escaping {
		toks = append(toks, token{kind: tChar, ch: '\\', pos: len(runes)})
	}

	return toks
}
