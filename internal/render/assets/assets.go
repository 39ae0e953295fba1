// Package assets resolves raster assets referenced by templates, most
// importantly the company logo supplied as a base64 data URI. Decodes are
// memoized in an injected cache so repeated renders of the same company do
// not re-decode the image.
package assets

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/smallbiznis/docpress/internal/cache"
	"github.com/smallbiznis/docpress/internal/render"
)

var (
	ErrEmptySource       = errors.New("empty_asset_source")
	ErrUnsupportedSource = errors.New("unsupported_asset_source")
	ErrInvalidImage      = errors.New("invalid_image_data")
)

const cacheTTL = 30 * time.Minute

// Resolver decodes logo sources into engine-ready images.
type Resolver struct {
	cache cache.Cache[string, *render.Logo]
}

// NewResolver builds a resolver backed by the provided cache. A nil cache
// disables memoization.
func NewResolver(c cache.Cache[string, *render.Logo]) *Resolver {
	if c == nil {
		c = cache.NoopCache[string, *render.Logo]{}
	}
	return &Resolver{cache: c}
}

// ResolveLogo decodes a base64 or data-URI logo source. The returned logo
// carries a digest-derived name so identical data shares one embedded image
// in the PDF output.
func (r *Resolver) ResolveLogo(source string) (*render.Logo, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrEmptySource
	}
	key := digest(source)
	return cache.GetOrCompute(r.cache, key, cacheTTL, func() (*render.Logo, error) {
		return decode(source, key)
	})
}

func decode(source, name string) (*render.Logo, error) {
	payload := source
	if strings.HasPrefix(source, "data:") {
		idx := strings.Index(source, ",")
		if idx < 0 {
			return nil, ErrUnsupportedSource
		}
		payload = source[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrUnsupportedSource
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage
	}
	switch format {
	case "png", "jpeg":
	default:
		return nil, ErrInvalidImage
	}
	return &render.Logo{
		Name:   "logo-" + name,
		Format: strings.ToUpper(format),
		Data:   data,
	}, nil
}

func digest(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:8])
}
