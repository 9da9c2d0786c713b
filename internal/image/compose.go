package imagepkg

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Sheet layout.
const (
	sheetMargin  = 48
	tileGap      = 8
	tileColumns  = 10
	pipSize      = 14
	defaultTileW = 150
)

var (
	sheetBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff}
	pipColor        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	fallbackTile    = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// Tile is one grouped deck entry: card art when available, otherwise a
// swatch of the card type color, and a pip per copy.
type Tile struct {
	Art   image.Image
	Color string
	Count int
}

// SheetOptions sizes a deck sheet.
type SheetOptions struct {
	TileWidth int
	QRSize    int
}

// ComposeDeckSheet lays the main and extra tiles out in rows of ten, the
// extra block below the main one, with the QR code in the top right
// corner when given.
func ComposeDeckSheet(main, extra []Tile, qr image.Image, opt SheetOptions) image.Image {
	tw := opt.TileWidth
	if tw <= 0 {
		tw = defaultTileW
	}
	th := tw * 7 / 5
	qrSize := 0
	if qr != nil {
		qrSize = ClampQRSize(opt.QRSize)
	}

	gridW := tileColumns*tw + (tileColumns-1)*tileGap
	w := sheetMargin*2 + gridW
	if qr != nil {
		w += tileGap*2 + qrSize
	}
	h := sheetMargin*2 + blockHeight(len(main), th) + blockHeight(len(extra), th)
	if len(main) > 0 && len(extra) > 0 {
		h += sheetMargin
	}
	h = max(h, sheetMargin*2+qrSize)

	canvas := imaging.New(w, h, sheetBackground)
	canvas, y := drawBlock(canvas, main, sheetMargin, tw, th)
	if len(main) > 0 && len(extra) > 0 {
		y += sheetMargin
	}
	canvas, _ = drawBlock(canvas, extra, y, tw, th)

	if qr != nil {
		q := imaging.Resize(qr, qrSize, qrSize, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(w-sheetMargin-qrSize, sheetMargin))
	}
	return canvas
}

func blockHeight(n, th int) int {
	if n == 0 {
		return 0
	}
	rows := (n + tileColumns - 1) / tileColumns
	return rows*th + (rows-1)*tileGap
}

// drawBlock paints tiles starting at row y and returns the y below them.
func drawBlock(canvas *image.NRGBA, tiles []Tile, y, tw, th int) (*image.NRGBA, int) {
	if len(tiles) == 0 {
		return canvas, y
	}
	for i, t := range tiles {
		x := sheetMargin + (i%tileColumns)*(tw+tileGap)
		ty := y + (i/tileColumns)*(th+tileGap)
		var tile *image.NRGBA
		if t.Art != nil {
			tile = imaging.Fill(t.Art, tw, th, imaging.Center, imaging.Lanczos)
		} else {
			tile = imaging.New(tw, th, parseHexColor(t.Color))
		}
		for p := 0; p < t.Count; p++ {
			pip := imaging.New(pipSize, pipSize, pipColor)
			tile = imaging.Paste(tile, pip, image.Pt(tileGap+p*(pipSize+tileGap/2), th-tileGap-pipSize))
		}
		canvas = imaging.Paste(canvas, tile, image.Pt(x, ty))
	}
	return canvas, y + blockHeight(len(tiles), th)
}

// parseHexColor reads "#RRGGBB". Anything else is the fallback gray.
func parseHexColor(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallbackTile
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackTile
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
