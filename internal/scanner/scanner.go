// Package scanner discovers bank export files under per-source
// subdirectories of an input root.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pawelciurka/money-insights/internal/model"
)

// SourceFile is one discovered export file classified by source type.
type SourceFile struct {
	Path       string
	SourceType model.SourceType
}

// DiscoveryError reports an input root with no export files under any
// recognized source subdirectory.
type DiscoveryError struct {
	Root string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("no input files discovered in %s", e.Root)
}

// Scan walks <root>/<source-type>/ for every known source type and returns
// the CSV files found. A missing source subdirectory is only logged; an
// entirely empty root is a DiscoveryError.
func Scan(root string, log zerolog.Logger) ([]SourceFile, error) {
	var files []SourceFile
	for _, st := range model.SourceTypes() {
		dir := filepath.Join(root, string(st))

		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warn().Str("source_type", string(st)).Str("dir", dir).
					Msg("source directory not found")
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
				continue
			}
			files = append(files, SourceFile{
				Path:       filepath.Join(dir, e.Name()),
				SourceType: st,
			})
		}
	}

	if len(files) == 0 {
		return nil, &DiscoveryError{Root: root}
	}
	return files, nil
}
