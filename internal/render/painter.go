//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a Frame into a GPU image and draws it scaled.
type GridPainter struct {
	size int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for frames of the given size.
func NewGridPainter(size int) *GridPainter {
	return &GridPainter{size: size, img: ebiten.NewImage(size, size)}
}

// Blit uploads the frame and draws it onto dst at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, f *Frame, scale int) {
	if f.Size() != gp.size {
		return
	}
	gp.img.WritePixels(f.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
