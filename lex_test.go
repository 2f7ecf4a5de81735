package quad

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1}}, 0},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1}}, 0},
		{"1.2.3", []lexToken{{text: "1.2", kind: tokenNum, pos: 1}, {text: ".3", kind: tokenNum, pos: 4}}, 0},
		{"12.5x", []lexToken{{text: "12.5", kind: tokenNum, pos: 1}, {text: "x", kind: tokenIdent, pos: 5}}, 0},
		{".", nil, 1},
		{"1.", nil, 1},
		{"1..5", []lexToken{{text: ".5", kind: tokenNum, pos: 3}}, 1},
		// identifiers
		{"x", []lexToken{{text: "x", kind: tokenIdent, pos: 1}}, 0},
		{"pi", []lexToken{{text: "pi", kind: tokenIdent, pos: 1}}, 0},
		{"Sin", []lexToken{{text: "Sin", kind: tokenIdent, pos: 1}}, 0},
		{"sqrt2", []lexToken{{text: "sqrt", kind: tokenIdent, pos: 1}, {text: "2", kind: tokenNum, pos: 5}}, 0},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"1+2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		{"x^2", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "^", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		{"a--b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}, 0},
		// parentheses
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"e(", []lexToken{{text: "e", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}}, 0},
		// erroneous symbols
		{"$", nil, 1},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}}, 1},
		{"$a", []lexToken{{text: "a", kind: tokenIdent, pos: 2}}, 1},
		{"2 # 3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "3", kind: tokenNum, pos: 5}}, 1},
		{"$$", nil, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var got []lexToken
		errs := 0
		for {
			tok, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: io.EOF before EOF token", c.src)
				break
			}
			if err != nil {
				errs++
				continue
			}
			if tok.kind == tokenEOF {
				break
			}
			got = append(got, tok)
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

func TestLexEOF(t *testing.T) {
	scan := lex(strings.NewReader("x"))
	for {
		tok, err := scan.next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.kind == tokenEOF {
			break
		}
	}
	if _, err := scan.next(); err != io.EOF {
		t.Errorf("scanning past the end: want io.EOF, got %v", err)
	}
}
