package imagepkg

import (
	"bytes"
	"context"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/youruser/deckapp/internal/util"
)

// ArtURL expands {id} in template. An empty template means no card art.
func ArtURL(template string, id int) string {
	if template == "" {
		return ""
	}
	return strings.ReplaceAll(template, "{id}", strconv.Itoa(id))
}

// DownloadImage downloads an image from URL and decodes it.
func DownloadImage(ctx context.Context, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}
