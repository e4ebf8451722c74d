package parser

import (
	"bufio"
	"io"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters and strips the combining marks,
// leaving the closest ASCII form. Characters without an ASCII decomposition
// are dropped, matching how the bank exports were handled historically.
var asciiFold = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// decodeLines reads a Windows-1250 stream and returns its lines
// transliterated to plain ASCII.
func decodeLines(r io.Reader) ([]string, error) {
	tr := transform.NewReader(r, transform.Chain(charmap.Windows1250.NewDecoder(), asciiFold))

	var lines []string
	sc := bufio.NewScanner(tr)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
