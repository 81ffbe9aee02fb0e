// Package catalog holds the reference tables that expand discrete sequence
// families: paper sizes, symbol sets, typefaces, orientations, raster
// operations and text parsing methods.
//
// The tables ship as embedded YAML files. Each file declares a schema
// version that must satisfy version.CatalogConstraint. LoadDir replaces
// individual files with copies found in a directory.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pclscope/pcl-go/pkg/seq"
	"github.com/pclscope/pcl-go/pkg/version"
)

//go:embed data/*.yaml
var dataFS embed.FS

// File names of the catalog tables.
const (
	FilePaperSizes   = "papersizes.yaml"
	FileSymbolSets   = "symbolsets.yaml"
	FileTypefaces    = "typefaces.yaml"
	FileOrientations = "orientations.yaml"
	FileROPs         = "rops.yaml"
	FileTextParsing  = "textparsing.yaml"
)

// Files returns the catalog file names in load order.
func Files() []string {
	return []string{FilePaperSizes, FileSymbolSets, FileTypefaces, FileOrientations, FileROPs, FileTextParsing}
}

var (
	// ErrDuplicateID is returned when a table lists the same id twice.
	ErrDuplicateID = errors.New("duplicate catalog id")

	// ErrInvalidID is returned for ids outside a table's domain.
	ErrInvalidID = errors.New("invalid catalog id")
)

// Catalog is the set of loaded reference tables.
type Catalog struct {
	PaperSizes   PaperSizes
	SymbolSets   SymbolSets
	Typefaces    Table
	Orientations Table
	ROPs         *ROPTable
	TextParsing  Table

	// Sources describes where each file was read from, in load order.
	Sources []Source
}

// Source describes one loaded catalog file.
type Source struct {
	File    string
	Version string

	// Override is set when the file came from the override directory.
	Override bool

	// Newer is set when the file declares a later schema version than
	// version.CatalogSchema. Fields added by that version are ignored.
	Newer bool
}

// Providers returns the tables in the form consumed by seq.Build.
func (c *Catalog) Providers() seq.Providers {
	return seq.Providers{
		PaperSizes:   c.PaperSizes,
		SymbolSets:   c.SymbolSets,
		Typefaces:    c.Typefaces,
		Orientations: c.Orientations,
		LogicalOps:   c.ROPs,
		TextParsing:  c.TextParsing,
	}
}

// Option configures loading.
type Option func(*loader)

// WithLogger sets the logger used to report file overrides.
func WithLogger(l *slog.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

type loader struct {
	dir     string
	logger  *slog.Logger
	sources []Source
}

// Load reads the embedded catalog.
func Load(opts ...Option) (*Catalog, error) {
	return LoadDir("", opts...)
}

// LoadDir reads the catalog, preferring files found in dir over the
// embedded copies. An empty dir loads only the embedded files.
func LoadDir(dir string, opts ...Option) (*Catalog, error) {
	ld := &loader{
		dir:    dir,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(ld)
	}

	c := &Catalog{}
	var err error

	var papers []PaperSize
	if papers, err = decodeFile[PaperSize](ld, FilePaperSizes); err != nil {
		return nil, err
	}
	if c.PaperSizes, err = newPaperSizes(papers); err != nil {
		return nil, fmt.Errorf("%s: %w", FilePaperSizes, err)
	}

	var sets []SymbolSet
	if sets, err = decodeFile[SymbolSet](ld, FileSymbolSets); err != nil {
		return nil, err
	}
	if c.SymbolSets, err = newSymbolSets(sets); err != nil {
		return nil, fmt.Errorf("%s: %w", FileSymbolSets, err)
	}

	if c.Typefaces, err = loadTable(ld, FileTypefaces); err != nil {
		return nil, err
	}
	if c.Orientations, err = loadTable(ld, FileOrientations); err != nil {
		return nil, err
	}
	if c.TextParsing, err = loadTable(ld, FileTextParsing); err != nil {
		return nil, err
	}

	var rops []Item
	if rops, err = decodeFile[Item](ld, FileROPs); err != nil {
		return nil, err
	}
	if c.ROPs, err = newROPTable(rops); err != nil {
		return nil, fmt.Errorf("%s: %w", FileROPs, err)
	}

	c.Sources = ld.sources
	ld.logger.Debug("catalog loaded",
		"paperSizes", c.PaperSizes.Count(),
		"symbolSets", c.SymbolSets.Count(),
		"typefaces", c.Typefaces.Count(),
		"orientations", c.Orientations.Count(),
		"textParsing", c.TextParsing.Count(),
	)
	return c, nil
}

// tableFile is the on-disk layout shared by all catalog files.
type tableFile[T any] struct {
	Version string `yaml:"version"`
	Items   []T    `yaml:"items"`
}

// read returns the file contents and whether they came from the override
// directory.
func (ld *loader) read(name string) ([]byte, bool, error) {
	if ld.dir != "" {
		data, err := os.ReadFile(filepath.Join(ld.dir, name))
		switch {
		case err == nil:
			ld.logger.Info("catalog override", "file", name, "dir", ld.dir)
			return data, true, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, false, fmt.Errorf("reading %s: %w", name, err)
		}
	}
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, false, fmt.Errorf("reading embedded %s: %w", name, err)
	}
	return data, false, nil
}

func decodeFile[T any](ld *loader, name string) ([]T, error) {
	data, override, err := ld.read(name)
	if err != nil {
		return nil, err
	}

	var f tableFile[T]
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := version.CheckCatalog(name, f.Version); err != nil {
		return nil, err
	}

	src := Source{
		File:     name,
		Version:  f.Version,
		Override: override,
		Newer:    version.Newer(f.Version, version.CatalogSchema),
	}
	if src.Newer {
		ld.logger.Warn("catalog file is newer than this release",
			"file", name, "version", f.Version, "supported", version.CatalogSchema)
	}
	ld.sources = append(ld.sources, src)
	return f.Items, nil
}

func loadTable(ld *loader, name string) (Table, error) {
	items, err := decodeFile[Item](ld, name)
	if err != nil {
		return nil, err
	}
	t, err := newTable(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
