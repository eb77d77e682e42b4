package token

import (
	"sort"

	gotoken "go/token"
)

// Pos is a compact encoding of a source position: 1 + the byte offset of
// the position in the file. The zero value means "no position".
type Pos int

// NoPos is the zero Pos value, it indicates an unknown position.
const NoPos Pos = 0

// IsValid returns true if p encodes a known position.
func (p Pos) IsValid() bool { return p != NoPos }

// Position is the expanded form of a Pos, with filename, offset, line and
// column information. It is the same type as the standard library's
// go/token.Position so that positions can be fed directly to a
// go/scanner.ErrorList.
type Position = gotoken.Position

// A File tracks the size and line offsets of a single source file so that
// a Pos can be expanded to a full Position.
type File struct {
	name  string
	size  int
	lines []int // offset of the first byte of each line
}

// NewFile creates a file handle for a source file of the specified size.
func NewFile(name string, size int) *File {
	return &File{name: name, size: size, lines: []int{0}}
}

// Name returns the file name as provided to NewFile.
func (f *File) Name() string { return f.name }

// Size returns the file size as provided to NewFile.
func (f *File) Size() int { return f.size }

// AddLine records the offset of the first byte of a new line. Offsets must
// be added in increasing order.
func (f *File) AddLine(off int) {
	if n := len(f.lines); n > 0 && f.lines[n-1] >= off {
		return
	}
	f.lines = append(f.lines, off)
}

// Pos returns the Pos for the specified byte offset in f.
func (f *File) Pos(off int) Pos { return Pos(off + 1) }

// Offset returns the byte offset encoded in p.
func (f *File) Offset(p Pos) int { return int(p - 1) }

// Position expands p into a full Position relative to f.
func (f *File) Position(p Pos) Position {
	pos := Position{Filename: f.name}
	if !p.IsValid() {
		return pos
	}

	off := f.Offset(p)
	i := sort.SearchInts(f.lines, off+1) - 1
	pos.Offset = off
	pos.Line = i + 1
	pos.Column = off - f.lines[i] + 1
	return pos
}
