// Package passgen generates grouped random passwords such as
// "aB3$k-9Qz!m-T#7pw-Lx".
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

const (
	// Drawn is the number of random characters in a password.
	Drawn = 17
	// Length is the full length including separators.
	Length = Drawn + 3

	separator = '-'
	groupSize = 5
)

// alphabet is printable ASCII 33..126 without the separator.
var alphabet = func() []byte {
	out := make([]byte, 0, 93)
	for c := byte(33); c <= 126; c++ {
		if c != separator {
			out = append(out, c)
		}
	}
	return out
}()

// Generator draws passwords from a random source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewWithReader returns a Generator reading randomness from r.
func NewWithReader(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate returns a password of Length characters: groups of five drawn
// characters joined by '-', the last group holding two. No character is
// within one ASCII code of the character before it, separators included.
func (g *Generator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(Length)

	var prev byte
	for i := 0; i < Drawn; i++ {
		endsGroup := i%groupSize == groupSize-1 && i < Drawn-1

		var next byte
		if endsGroup {
			next = separator
		}
		c, err := g.draw(prev, next)
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
		prev = c

		if endsGroup {
			b.WriteByte(separator)
			prev = separator
		}
	}
	return b.String(), nil
}

// draw picks a uniformly distributed character adjacent to neither prev
// nor next. Zero means there is no such neighbour.
func (g *Generator) draw(prev, next byte) (byte, error) {
	limit := 256 - 256%len(alphabet)
	buf := make([]byte, 1)
	for {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return 0, fmt.Errorf("read random: %w", err)
		}
		if int(buf[0]) >= limit {
			continue
		}
		c := alphabet[int(buf[0])%len(alphabet)]
		if prev != 0 && adjacent(prev, c) {
			continue
		}
		if next != 0 && adjacent(c, next) {
			continue
		}
		return c, nil
	}
}

func adjacent(a, b byte) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}
