package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pawelciurka/money-insights/internal/model"
)

// Parser converts one bank export file into raw records in canonical column
// names. Dates and amounts stay raw strings; the normalizer converts them.
type Parser interface {
	ParseRaw(r io.Reader) ([]model.RawRecord, error)
	SourceType() model.SourceType
}

// FormatError reports an export file that does not look like its declared
// format: a missing header or footer marker, or mandatory fields absent
// after parsing.
type FormatError struct {
	SourceType    model.SourceType
	Reason        string
	MissingFields []string
}

func (e *FormatError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("%s: missing fields: %s", e.SourceType, strings.Join(e.MissingFields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.SourceType, e.Reason)
}

// Registry holds one parser per source type.
type Registry struct {
	parsers map[model.SourceType]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[model.SourceType]Parser)}
}

// Register adds a parser. Panics on duplicate source type.
func (r *Registry) Register(p Parser) {
	st := p.SourceType()
	if _, ok := r.parsers[st]; ok {
		panic("duplicate parser for source type: " + string(st))
	}
	r.parsers[st] = p
}

// Get returns the parser for a source type, or nil.
func (r *Registry) Get(st model.SourceType) Parser {
	return r.parsers[st]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&INGParser{})
	r.Register(&MbankParser{})
	r.Register(&GenericParser{})
	return r
}

// ParseFile opens path and parses it with the given parser.
func ParseFile(p Parser, path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := p.ParseRaw(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// truncateHeader drops everything up to and including the first line with
// the given prefix. The marker line itself is the export's column header.
func truncateHeader(lines []string, marker string, st model.SourceType) ([]string, error) {
	for i, line := range lines {
		if strings.HasPrefix(line, marker) {
			return lines[i+1:], nil
		}
	}
	return nil, &FormatError{SourceType: st, Reason: fmt.Sprintf("header marker %q not found", marker)}
}

// truncateFooter drops the first line for which match returns true and
// everything after it. Bank exports always carry the footer, so its absence
// means the file was truncated or is not the declared format.
func truncateFooter(lines []string, match func(string) bool, st model.SourceType) ([]string, error) {
	for i, line := range lines {
		if match(line) {
			return lines[:i], nil
		}
	}
	return nil, &FormatError{SourceType: st, Reason: "footer marker not found"}
}
