// Package assets serves the embedded dish photos. Each file is checked
// against a BLAKE2b-256 manifest before it is decoded.
package assets

import (
	"bytes"
	"context"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log/slog"

	"github.com/dustin/go-humanize"
	"golang.org/x/crypto/blake2b"
	_ "golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound       = errors.New("asset not found")
	ErrDigestMismatch = errors.New("asset digest mismatch")
	ErrDecode         = errors.New("asset decode failed")
)

//go:embed images
var embedded embed.FS

// Manifest is the expected digest of every embedded image.
var Manifest = map[string]string{
	"calamarettis.bmp": "f9bae74b1f301b0e51829c562df0a16c825c61c49b9a3cde0cb0c2df3d4fabf3",
	"caracoles.png":    "06d5f92ede8d0e73ef77263058fd38b227d4595b80eadcf7e291163b97b3e48e",
	"gambas.png":       "d10710da9d958b55c31d1ea94f4c79d3a67ac8aca78278b58e92325014446104",
	"merluza.png":      "cc4b21bd74911052abe43a0d3f90b161bb50efd83a408754bb8dc2a0dbffb0ae",
	"mondongo.bmp":     "ec82f8953be27982ff2cd14baa8a0f23a8e959107fd6a4bff65428e6399a137d",
	"quinotos.bmp":     "80f07cbb0017249734eb4b370af12b3dc91a2963ff06a3ad5aa652d9d17b90d2",
	"rabas.png":        "42492c84318133082c5164decd3d54fdc4cf681ff87de1376b2f16ac05371cb5",
	"ranas.png":        "a9b26f86907e340c04d97b93e8cfe335ed07ff25db5e1bdaec567a87363c397d",
	"rinones.bmp":      "1051ac0f1dac5b247223afa1d17f03d76db2af1c5928d587e4ca7ac86711be17",
}

// Digest is the hex BLAKE2b-256 of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Catalog decodes images on demand and remembers both successes and
// failures, so a broken asset is reported once and then skipped.
type Catalog struct {
	fsys     fs.FS
	manifest map[string]string
	logger   *slog.Logger

	images   map[string]image.Image
	failures map[string]error
}

// New builds a catalog over fsys. With a nil manifest digests are not
// checked.
func New(fsys fs.FS, manifest map[string]string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		fsys:     fsys,
		manifest: manifest,
		logger:   logger,
		images:   map[string]image.Image{},
		failures: map[string]error{},
	}
}

// Default is the catalog of the embedded photos.
func Default(logger *slog.Logger) *Catalog {
	sub, err := fs.Sub(embedded, "images")
	if err != nil {
		panic(err)
	}
	return New(sub, Manifest, logger)
}

// Decode reads, verifies and decodes one asset without caching it.
func (c *Catalog) Decode(name string) (image.Image, error) {
	data, err := c.read(name)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%s: %w", name, err), ErrDecode)
	}
	c.logger.Debug("Decoded asset", slog.String("asset", name), slog.String("format", format),
		slog.String("size", humanize.Bytes(uint64(len(data)))),
		slog.Int("width", img.Bounds().Dx()), slog.Int("height", img.Bounds().Dy()))
	return img, nil
}

func (c *Catalog) read(name string) ([]byte, error) {
	var want string
	if c.manifest != nil {
		digest, ok := c.manifest[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		want = digest
	}
	data, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if want != "" && Digest(data) != want {
		return nil, fmt.Errorf("%s: %w", name, ErrDigestMismatch)
	}
	return data, nil
}

// Image implements the renderer's image source. Failures are logged the
// first time and reported as missing afterwards.
func (c *Catalog) Image(name string) (image.Image, bool) {
	if img, ok := c.images[name]; ok {
		return img, true
	}
	if _, failed := c.failures[name]; failed {
		return nil, false
	}
	img, err := c.Decode(name)
	c.store(name, img, err)
	return img, err == nil
}

func (c *Catalog) store(name string, img image.Image, err error) {
	if err != nil {
		c.failures[name] = err
		c.logger.Warn("Skipping unusable asset", slog.String("asset", name), slog.String("error", err.Error()))
		return
	}
	c.images[name] = img
}

// Err reports the recorded failure of name, if any.
func (c *Catalog) Err(name string) error {
	return c.failures[name]
}

// Preload decodes names concurrently. Individual failures are recorded, not
// returned; only cancellation of ctx is an error. The catalog must not be
// used from another goroutine while Preload runs.
func (c *Catalog) Preload(ctx context.Context, names []string) error {
	type result struct {
		img image.Image
		err error
	}
	results := make([]result, len(names))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(4)
	for i, name := range names {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := c.Decode(name)
			results[i] = result{img: img, err: err}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("preload assets: %w", err)
	}
	loaded := 0
	for i, name := range names {
		c.store(name, results[i].img, results[i].err)
		if results[i].err == nil {
			loaded++
		}
	}
	c.logger.Info("Preloaded assets", slog.Int("loaded", loaded), slog.Int("failed", len(names)-loaded))
	return nil
}

// PNG returns the decoded asset re-encoded as PNG, for the clipboard and
// exports.
func (c *Catalog) PNG(name string) ([]byte, error) {
	img, ok := c.Image(name)
	if !ok {
		if err := c.Err(name); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
