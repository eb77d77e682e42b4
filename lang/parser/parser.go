// Package parser implements the parser that transforms source code into an
// abstract syntax tree (AST).
package parser

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/mna/calyx/lang/ast"
	"github.com/mna/calyx/lang/scanner"
	"github.com/mna/calyx/lang/token"
)

// ParseFiles is a helper function that parses the source files and returns
// the ASTs and any error encountered. The error, if non-nil, is a
// scanner.ErrorList.
func ParseFiles(ctx context.Context, files ...string) ([]*ast.Chunk, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var p parser

	res := make([]*ast.Chunk, 0, len(files))
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			p.errors.Add(token.Position{Filename: file}, err.Error())
			continue
		}

		p.init(file, b)
		ch := p.parseChunk()
		ch.Name = file
		res = append(res, ch)
	}
	p.errors.Sort()
	return res, p.errors.Err()
}

// ParseChunk is a helper function that parses a single chunk from a slice
// of bytes and returns the AST and any error encountered. The chunk is
// reported under the name specified in filename, which may be empty. The
// error, if non-nil, is a scanner.ErrorList.
func ParseChunk(filename string, src []byte) (*ast.Chunk, error) {
	var p parser
	p.init(filename, src)
	ch := p.parseChunk()
	ch.Name = filename
	return ch, p.errors.Err()
}

// parser parses source files and generates an AST.
type parser struct {
	// those fields are immutable after p.init
	scanner scanner.Scanner
	errors  scanner.ErrorList
	file    *token.File

	// current token
	tok token.Token
	val token.Value
}

func (p *parser) init(filename string, src []byte) {
	p.file = token.NewFile(filename, len(src))
	p.scanner.Init(p.file, src, p.errors.Add)

	// advance to first token
	p.advance()
}

func (p *parser) advance() {
	p.tok = p.scanner.Scan(&p.val)
}

var errPanicMode = errors.New("panic")

// parseChunk parses the whole source as a sequence of statements. A parse
// error panics with errPanicMode, which is recovered here: parsing stops
// at the offending token with the errors recorded in p.errors.
func (p *parser) parseChunk() (ch *ast.Chunk) {
	ch = &ast.Chunk{}

	defer func() {
		if e := recover(); e != nil && e != errPanicMode {
			panic(e)
		}
	}()

	ch.Block = p.parseStmts(token.EOF)
	ch.EOF = p.val.Pos
	p.expect(token.EOF)
	return ch
}

// expect returns the position of the current token and consumes it if it
// is one of the expected tokens, otherwise it reports an error and panics
// with errPanicMode which gets recovered at the chunk level.
func (p *parser) expect(toks ...token.Token) token.Pos {
	pos := p.val.Pos

	var buf strings.Builder
	var ok bool
	for i, tok := range toks {
		if p.tok == tok {
			ok = true
			break
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(tok.GoString())
	}

	if !ok {
		var lbl string
		if len(toks) > 1 {
			lbl = "one of " + buf.String()
		} else {
			lbl = buf.String()
		}
		p.errorExpected(pos, lbl)
		panic(errPanicMode)
	}

	p.advance()
	return pos
}

func (p *parser) error(pos token.Pos, msg string) {
	lpos := p.file.Position(pos)
	p.errors.Add(lpos, msg)
}

func (p *parser) errorExpected(pos token.Pos, msg string) {
	msg = "expected " + msg
	if pos == p.val.Pos {
		// the error happened at the current position;
		// make the error message more specific
		switch lit := p.tok.Literal(p.val); lit {
		case "":
			msg += ", found " + p.tok.GoString()
		default:
			// print 123 rather than 'INT', etc.
			msg += ", found " + lit
		}
	}
	p.error(pos, msg)
}
