package unitdc

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	kind tokenKind
	// text is the operator, unit symbol, variable name, macro name, or
	// comment text, depending on kind.
	text string
	// arg is the raw argument of a macro invocation.
	arg string
	num *big.Rat
	pos Position
}

func (t lexToken) String() string {
	s := t.kind.String() + ":" + t.text
	if t.kind == tokenNum {
		s = t.kind.String() + ":" + t.num.RatString()
	}
	if t.kind == tokenMacro {
		s += "(" + t.arg + ")"
	}
	return s + "@" + t.pos.String()
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a number literal.
	tokenNum
	// tokenUnit is a parenthesized unit symbol, e.g. (km).
	tokenUnit
	// tokenArith is one of + - * /.
	tokenArith
	// tokenCmd is a single-letter stack command.
	tokenCmd
	// tokenStore is >name.
	tokenStore
	// tokenRecall is <name.
	tokenRecall
	// tokenMacro is @name(arg).
	tokenMacro
	// tokenComment is # to the end of the line.
	tokenComment
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenUnit:
		return "Unit"
	case tokenArith:
		return "Arith"
	case tokenCmd:
		return "Cmd"
	case tokenStore:
		return "Store"
	case tokenRecall:
		return "Recall"
	case tokenMacro:
		return "Macro"
	case tokenComment:
		return "Comment"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the runes which are arithmetic operators.
const Operators = "+-*/"

// Commands contains the runes which are single-letter stack commands.
const Commands = "pnfcdrsU"

// Position is a line and column in the input, both starting at 1.
type Position struct {
	Line, Col int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// pos is the position of the next rune to be read. last is the position
	// before the most recent read, for unreading.
	pos, last Position
	eof       bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src: src,
		pos: Position{Line: 1, Col: 1},
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.last = l.pos
		if r == '\n' {
			l.pos.Line++
			l.pos.Col = 1
		} else {
			l.pos.Col++
		}
	}
	return r, err
}

// unreadRune unreads a rune from the src and restores the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos = l.last
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token with a nil error, every time next is called.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{kind: tokenEOF, pos: l.pos}, nil
	}
	defer l.buf.Reset()
	for {
		tok := lexToken{pos: l.pos}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '_':
			l.buf.WriteRune(r)
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			n, err := ParseRat(l.buf.String())
			if err != nil {
				// Literal errors are relative to the literal.
				var lerr *LexError
				if errors.As(err, &lerr) {
					lerr.Line = tok.pos.Line
					lerr.Col += tok.pos.Col - 1
				}
				return tok, err
			}
			tok.kind = tokenNum
			tok.text = l.buf.String()
			tok.num = n
			return tok, nil
		case r == '(':
			if err := l.scanUnit(); err != nil {
				return tok, err
			}
			tok.kind = tokenUnit
			tok.text = l.buf.String()
			return tok, nil
		case r == '@':
			name, err := l.scanMacroName()
			if err != nil {
				return tok, err
			}
			tok.kind = tokenMacro
			tok.text = name
			tok.arg, err = l.scanRaw(")")
			return tok, err
		case r == '#':
			tok.kind = tokenComment
			tok.text, err = l.scanRaw("\r\n")
			return tok, err
		case r == '>', r == '<':
			if err := l.scanName(); err != nil {
				return tok, err
			}
			tok.kind = tokenStore
			if r == '<' {
				tok.kind = tokenRecall
			}
			tok.text = l.buf.String()
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.kind = tokenArith
			tok.text = string(r)
			return tok, nil
		case strings.ContainsRune(Commands, r):
			tok.kind = tokenCmd
			tok.text = string(r)
			return tok, nil
		default:
			return tok, l.error("", r)
		}
	}
}

// scanNum scans the rest of a number literal into buf. The literal itself is
// checked by ParseRat.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9', r == '.', r == 'e', r == 'E', r == '_', r == '-':
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

// scanUnit scans a unit symbol up to and excluding the closing parenthesis.
// The end of the input also ends the symbol.
func (l *lexer) scanUnit() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case r == ')':
			return nil
		case isAlnum(r), r == '/', r == '*', r == '_':
			l.buf.WriteRune(r)
		default:
			return l.error("unit", r)
		}
	}
}

// scanMacroName scans a macro name and its opening parenthesis.
func (l *lexer) scanMacroName() (string, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.buf.String(), nil
			}
			return "", err
		}
		switch {
		case r == '(':
			return l.buf.String(), nil
		case isAlpha(r), r == '_':
			l.buf.WriteRune(r)
		default:
			return "", l.error("macro", r)
		}
	}
}

// scanName scans a variable name. The first rune that can't be in a name is
// left unread.
func (l *lexer) scanName() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isAlnum(r) && r != '_' {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// scanRaw scans any runes up to the first in stop, which is consumed but not
// included in the result.
func (l *lexer) scanRaw(stop string) (string, error) {
	var b strings.Builder
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			return b.String(), err
		}
		if strings.ContainsRune(stop, r) {
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// error creates a LexError for the rune just read.
func (l *lexer) error(kind string, r rune) error {
	return &LexError{
		Text: l.buf.String() + string(r),
		Kind: kind,
		Line: l.last.Line,
		Col:  l.last.Col,
	}
}

func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isAlnum(r rune) bool {
	return isAlpha(r) || '0' <= r && r <= '9'
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "unit", "macro", or the empty string (if a token kind hadn't been
	// decided).
	Kind string
	// Line and Col locate the invalid rune.
	Line, Col int
}

func (err *LexError) Error() string {
	pos := "at " + err.Pos().String()
	if err.Kind == "" {
		return "invalid character " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid character in " + err.Kind + " " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() Position {
	return Position{Line: err.Line, Col: err.Col}
}
