package token

import (
	"bytes"
	"html"
	"unicode/utf8"
)

type tokenizer struct {
	d   []byte
	i   int
	doc *PosDoc
}

func Tokenize(d []byte) ([]Token, error) {
	t := &tokenizer{d: d, doc: NewPosDoc(d)}
	if !utf8.Valid(d) {
		off := 0
		for off < len(d) {
			r, n := utf8.DecodeRune(d[off:])
			if r == utf8.RuneError && n <= 1 {
				break
			}
			off += n
		}
		return nil, NewTokenizeErr(ErrBadUTF8, t.doc.Pos(off))
	}
	var res []Token
	for t.i < len(d) {
		var (
			tok Token
			err error
		)
		if d[t.i] == '<' {
			tok, err = t.markup()
		} else {
			tok = t.text()
		}
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
	}
	return res, nil
}

func (t *tokenizer) text() Token {
	start := t.i
	end := bytes.IndexByte(t.d[start:], '<')
	if end < 0 {
		t.i = len(t.d)
	} else {
		t.i = start + end
	}
	return Token{
		Type: TText,
		Pos:  t.doc.Pos(start),
		Text: html.UnescapeString(string(t.d[start:t.i])),
	}
}

func (t *tokenizer) markup() (Token, error) {
	start := t.i
	rest := t.d[start:]
	switch {
	case bytes.HasPrefix(rest, []byte("<!--")):
		end := bytes.Index(rest[4:], []byte("-->"))
		if end < 0 {
			return Token{}, UnterminatedErr("comment", t.doc.Pos(start))
		}
		t.i = start + 4 + end + 3
		return Token{Type: TComment, Pos: t.doc.Pos(start), Text: string(rest[4 : 4+end])}, nil
	case bytes.HasPrefix(rest, []byte("<!")), bytes.HasPrefix(rest, []byte("<?")):
		end := bytes.IndexByte(rest, '>')
		if end < 0 {
			return Token{}, UnterminatedErr("directive", t.doc.Pos(start))
		}
		t.i = start + end + 1
		return Token{Type: TDirective, Pos: t.doc.Pos(start), Text: string(rest[2:end])}, nil
	case bytes.HasPrefix(rest, []byte("</")):
		t.i += 2
		name, err := t.name()
		if err != nil {
			return Token{}, err
		}
		t.space()
		if t.i >= len(t.d) {
			return Token{}, UnterminatedErr("end tag </"+name, t.doc.Pos(start))
		}
		if t.d[t.i] != '>' {
			return Token{}, ExpectedErr("'>'", t.doc.Pos(t.i))
		}
		t.i++
		return Token{Type: TEndTag, Pos: t.doc.Pos(start), Name: name}, nil
	}
	t.i++
	name, err := t.name()
	if err != nil {
		return Token{}, err
	}
	tok := Token{Type: TStartTag, Pos: t.doc.Pos(start), Name: name}
	for {
		t.space()
		if t.i >= len(t.d) {
			return Token{}, UnterminatedErr("tag <"+name, t.doc.Pos(start))
		}
		switch {
		case t.d[t.i] == '>':
			t.i++
			return tok, nil
		case bytes.HasPrefix(t.d[t.i:], []byte("/>")):
			t.i += 2
			tok.Type = TSelfClosing
			return tok, nil
		}
		attr, err := t.attr()
		if err != nil {
			return Token{}, err
		}
		tok.Attrs = append(tok.Attrs, attr)
	}
}

func (t *tokenizer) attr() (Attr, error) {
	pos := t.doc.Pos(t.i)
	name, err := t.name()
	if err != nil {
		return Attr{}, err
	}
	attr := Attr{Name: name, Pos: pos}
	t.space()
	if t.i >= len(t.d) || t.d[t.i] != '=' {
		return attr, nil
	}
	t.i++
	t.space()
	if t.i >= len(t.d) {
		return Attr{}, ExpectedErr("attribute value", t.doc.Pos(t.i))
	}
	attr.HasValue = true
	switch q := t.d[t.i]; q {
	case '"', '\'':
		end := bytes.IndexByte(t.d[t.i+1:], q)
		if end < 0 {
			return Attr{}, UnterminatedErr("attribute value", t.doc.Pos(t.i))
		}
		attr.Value = html.UnescapeString(string(t.d[t.i+1 : t.i+1+end]))
		t.i += end + 2
	default:
		start := t.i
		for t.i < len(t.d) && !isSpace(t.d[t.i]) && t.d[t.i] != '>' && !bytes.HasPrefix(t.d[t.i:], []byte("/>")) {
			t.i++
		}
		if start == t.i {
			return Attr{}, ExpectedErr("attribute value", t.doc.Pos(t.i))
		}
		attr.Value = html.UnescapeString(string(t.d[start:t.i]))
	}
	return attr, nil
}

func (t *tokenizer) name() (string, error) {
	start := t.i
	if t.i >= len(t.d) {
		return "", UnterminatedErr("name", t.doc.Pos(start))
	}
	r, n := utf8.DecodeRune(t.d[t.i:])
	if !isNameStart(r) {
		return "", NewTokenizeErr(ErrBadName, t.doc.Pos(start))
	}
	t.i += n
	for t.i < len(t.d) {
		r, n := utf8.DecodeRune(t.d[t.i:])
		if !isNameChar(r) {
			break
		}
		t.i += n
	}
	return string(t.d[start:t.i]), nil
}

func (t *tokenizer) space() {
	for t.i < len(t.d) && isSpace(t.d[t.i]) {
		t.i++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNameStart(r rune) bool {
	return r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x7f
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || (r >= '0' && r <= '9')
}
