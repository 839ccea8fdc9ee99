package minecord

import (
	"io"
	"strings"
)

// Token is one rendered cell. Hidden tokens are wrapped in spoiler markup.
type Token struct {
	Body     string
	Revealed bool
}

func (t Token) String() string {
	if t.Revealed {
		return t.Body
	}
	return "||" + t.Body + "||"
}

type Board struct {
	Header string
	Rows   [][]Token
}

// String renders the header and rows separated by newlines, without a
// trailing newline.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.Header)
	for _, row := range b.Rows {
		sb.WriteByte('\n')
		for _, t := range row {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

// [Board] implements [io.WriterTo]
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Revealed returns the tokens rendered without spoiler markup.
func (b *Board) Revealed() (tokens []Token) {
	for _, row := range b.Rows {
		for _, t := range row {
			if t.Revealed {
				tokens = append(tokens, t)
			}
		}
	}
	return
}
