package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelciurka/money-insights/internal/model"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&INGParser{})
	p := r.Get(model.SourceING)
	require.NotNil(t, p)
	assert.Equal(t, model.SourceING, p.SourceType())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get(model.SourceMbank))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&INGParser{})
	assert.Panics(t, func() { r.Register(&INGParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	for _, st := range model.SourceTypes() {
		assert.NotNil(t, r.Get(st), "no parser for %s", st)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(&GenericParser{}, "/nonexistent/file.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening")
}

func TestParseFile(t *testing.T) {
	records, err := ParseFile(&INGParser{}, "../../testdata/ing/Lista_transakcji_example_ING_1.csv")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
