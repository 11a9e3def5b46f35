package render

import "image/color"

// putRGBA writes c into pixel i of an RGBA byte buffer.
func putRGBA(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

// fillRGBA paints every pixel of buf with c.
func fillRGBA(buf []byte, c color.RGBA) {
	for i := 0; i < len(buf)/4; i++ {
		putRGBA(buf, i, c)
	}
}

// pixelIs reports whether pixel i of buf has exactly the color c.
func pixelIs(buf []byte, i int, c color.RGBA) bool {
	base := i * 4
	return buf[base] == c.R && buf[base+1] == c.G && buf[base+2] == c.B && buf[base+3] == c.A
}
