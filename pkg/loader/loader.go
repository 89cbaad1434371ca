// Package loader resolves identifiers to files in a mod's resource tree and
// loads or saves the textures and JSON documents behind them.
//
// Two trees are involved. The asset directory is the read-only checkout of
// the mod; textures and documents are read from its src/main/resources
// folder. Images are written one level above the documentation output
// directory, in a shared _images folder, and referenced from generated pages
// with a "../../" prefix.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hellenic-development/tfc-loader/pkg/diag"
	"github.com/hellenic-development/tfc-loader/pkg/identifier"
	"github.com/hellenic-development/tfc-loader/pkg/imager"

	"github.com/tidwall/jsonc"
)

const (
	resourcesDir  = "src/main/resources"
	texturePrefix = "textures/"
	imagesDir     = "_images"
	refPrefix     = "../../"

	pngSuffix  = ".png"
	gifSuffix  = ".gif"
	jsonSuffix = ".json"
)

var (
	// ErrResourceNotFound is returned when the file behind an identifier
	// does not exist.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidInput is returned for arguments rejected before any I/O,
	// such as an animation without frames.
	ErrInvalidInput = errors.New("invalid input")
)

// Loader reads from an asset tree and writes images next to a documentation
// output directory. It holds no mutable state.
type Loader struct {
	assetDir  string
	outputDir string
	reporter  diag.Reporter
}

// New creates a Loader. A nil reporter discards diagnostics.
func New(assetDir, outputDir string, reporter diag.Reporter) *Loader {
	if reporter == nil {
		reporter = diag.Discard
	}
	return &Loader{
		assetDir:  assetDir,
		outputDir: outputDir,
		reporter:  reporter,
	}
}

// AssetDir returns the root of the asset tree.
func (l *Loader) AssetDir() string { return l.assetDir }

// OutputDir returns the documentation output directory.
func (l *Loader) OutputDir() string { return l.outputDir }

// TexturePath returns the absolute path of a texture. relPath is normalized
// with the "textures/" prefix and ".png" suffix.
func (l *Loader) TexturePath(domain, relPath string) string {
	relPath = identifier.ApplyPrefix(relPath, texturePrefix)
	relPath = identifier.ApplySuffix(relPath, pngSuffix)
	return filepath.Join(l.assetDir, resourcesDir, string(Assets), domain, filepath.FromSlash(relPath))
}

// DocumentPath returns the absolute path of a JSON document.
func (l *Loader) DocumentPath(domain, relPath string, rt ResourceType, root Root) string {
	p := filepath.Join(l.assetDir, resourcesDir, string(root), domain, filepath.FromSlash(string(rt)), filepath.FromSlash(relPath))
	return identifier.ApplySuffix(p, jsonSuffix)
}

// OutputLocation maps a relative image path to its location under _images.
// rel is slash separated and relative to the directory above the output
// directory; dest is the absolute destination on disk.
func (l *Loader) OutputLocation(relPath string) (rel, dest string) {
	rel = path.Join(imagesDir, identifier.Flatten(relPath))
	dest = filepath.Join(l.outputDir, "..", filepath.FromSlash(rel))
	return rel, dest
}

// fail reports err with the frames of ctx and returns it.
func (l *Loader) fail(ctx context.Context, severity diag.Severity, err error) error {
	de := diag.New(ctx, severity, err)
	l.reporter.Report(de)
	return de
}

// LoadImage loads the texture named by id as straight-alpha (non
// premultiplied) RGBA. It returns the relative path from id, without the
// texture prefix or suffix applied, for use as a stable key.
func (l *Loader) LoadImage(ctx context.Context, id string) (string, *image.NRGBA, error) {
	ctx = diag.WithFrame(ctx, diag.NewFrame("load_image", "identifier", id))

	domain, relPath, err := identifier.Split(id)
	if err != nil {
		return "", nil, l.fail(ctx, diag.Fatal, err)
	}

	p := l.TexturePath(domain, relPath)
	img, err := imager.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, l.fail(ctx, diag.Fatal, fmt.Errorf("%w: image file not found at '%s'", ErrResourceNotFound, p))
		}
		return "", nil, l.fail(ctx, diag.Fatal, fmt.Errorf("load image '%s': %w", p, err))
	}

	return relPath, img, nil
}

// SaveImage writes img as a PNG under _images and returns the reference to
// embed in generated pages. An existing file is overwritten.
func (l *Loader) SaveImage(ctx context.Context, id string, img image.Image) (string, error) {
	ctx = diag.WithFrame(ctx, diag.NewFrame("save_image", "identifier", id))

	_, relPath, err := identifier.Split(id)
	if err != nil {
		return "", l.fail(ctx, diag.Fatal, err)
	}
	relPath = identifier.ApplySuffix(relPath, pngSuffix)

	rel, dest := l.OutputLocation(relPath)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", l.fail(ctx, diag.Fatal, fmt.Errorf("failed to create output directory: %w", err))
	}
	if err := imager.WritePNG(dest, img); err != nil {
		return "", l.fail(ctx, diag.Fatal, err)
	}

	return refPrefix + rel, nil
}

// SaveAnimation writes frames as an animated GIF under _images and returns
// the reference to embed in generated pages. The first frame is the base
// frame and the rest are appended in order.
func (l *Loader) SaveAnimation(ctx context.Context, id string, frames []image.Image) (string, error) {
	ctx = diag.WithFrame(ctx, diag.NewFrame("save_animation", "identifier", id))

	if err := imager.ValidateFrames(frames); err != nil {
		return "", l.fail(ctx, diag.Fatal, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	_, relPath, err := identifier.Split(id)
	if err != nil {
		return "", l.fail(ctx, diag.Fatal, err)
	}
	relPath = strings.TrimSuffix(relPath, pngSuffix)
	relPath = identifier.ApplySuffix(relPath, gifSuffix)

	rel, dest := l.OutputLocation(relPath)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", l.fail(ctx, diag.Fatal, fmt.Errorf("failed to create output directory: %w", err))
	}
	if err := imager.WriteGIF(dest, frames); err != nil {
		return "", l.fail(ctx, diag.Fatal, err)
	}

	return refPrefix + rel, nil
}

// LoadDocument loads and parses the JSON document named by id within the
// given resource type and root. Comments and trailing commas are accepted.
// The document is returned as decoded by encoding/json, without validation;
// numbers are json.Number values.
//
// A missing document is always an ErrResourceNotFound. It is reported as
// muted when id belongs to a domain other than identifier.DefaultDomain,
// since other mods' resources are routinely absent from the tree.
func (l *Loader) LoadDocument(ctx context.Context, id string, rt ResourceType, root Root) (any, error) {
	ctx = diag.WithFrame(ctx, diag.NewFrame("load_document",
		"identifier", id,
		"resource_type", string(rt),
		"resource_root", string(root)))

	domain, relPath, err := identifier.Split(id)
	if err != nil {
		return nil, l.fail(ctx, diag.Fatal, err)
	}

	missing := diag.Fatal
	if domain != identifier.DefaultDomain {
		missing = diag.Muted
	}

	p := l.DocumentPath(domain, relPath, rt, root)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, l.fail(ctx, missing, fmt.Errorf("%w: resource file not found at '%s'", ErrResourceNotFound, p))
		}
		return nil, l.fail(ctx, diag.Fatal, fmt.Errorf("reading %s: %w", p, err))
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, l.fail(ctx, diag.Fatal, fmt.Errorf("parsing %s: %w", p, err))
	}

	return doc, nil
}

// decodeDocument parses a single JSONC value. Numbers are kept as
// json.Number so large integers survive unchanged.
func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}

	return doc, nil
}

// LoadCategory loads a document from a named category.
func (l *Loader) LoadCategory(ctx context.Context, id string, c Category) (any, error) {
	return l.LoadDocument(ctx, id, c.Type, c.Root)
}

// LoadBlockState loads assets/<domain>/blockstates/<path>.json.
func (l *Loader) LoadBlockState(ctx context.Context, id string) (any, error) {
	return l.LoadDocument(ctx, id, BlockStates, Assets)
}

// LoadBlockModel loads assets/<domain>/models/block/<path>.json.
func (l *Loader) LoadBlockModel(ctx context.Context, id string) (any, error) {
	return l.LoadDocument(ctx, id, BlockModels, Assets)
}

// LoadItemModel loads assets/<domain>/models/item/<path>.json.
func (l *Loader) LoadItemModel(ctx context.Context, id string) (any, error) {
	return l.LoadDocument(ctx, id, ItemModels, Assets)
}

// LoadModel loads assets/<domain>/models/<path>.json.
func (l *Loader) LoadModel(ctx context.Context, id string) (any, error) {
	return l.LoadDocument(ctx, id, Models, Assets)
}

// LoadRecipe loads data/<domain>/recipes/<path>.json.
func (l *Loader) LoadRecipe(ctx context.Context, id string) (any, error) {
	return l.LoadDocument(ctx, id, Recipes, Data)
}

// LoadBlockTag loads data/<domain>/tags/blocks/<path>.json.
func (l *Loader) LoadBlockTag(ctx context.Context, id string) (any, error) {
	return l.LoadDocument(ctx, id, BlockTags, Data)
}

// LoadItemTag loads data/<domain>/tags/items/<path>.json.
func (l *Loader) LoadItemTag(ctx context.Context, id string) (any, error) {
	return l.LoadDocument(ctx, id, ItemTags, Data)
}
