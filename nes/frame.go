package nes

// Frame dimensions of the visible picture.
const (
	FrameWidth  = 256
	FrameHeight = 240
)

// Frame is the PPU's output: one 24-bit RGB triple per visible pixel,
// indexed [x][y]. The PPU writes one pixel per rendering cycle; the host
// reads the buffer at its own cadence. No synchronization is needed, the
// whole engine is single threaded.
type Frame struct {
	Pixels [FrameWidth][FrameHeight][3]byte
}

func (f *Frame) setPixel(x, y int, c [3]byte) {
	f.Pixels[x][y] = c
}

// WriteRGB fills dst with the frame in row-major packed RGB, 3 bytes per
// pixel, the layout streaming textures expect. dst must hold at least
// FrameWidth*FrameHeight*3 bytes.
func (f *Frame) WriteRGB(dst []byte) {
	for y := 0; y < FrameHeight; y++ {
		for x := 0; x < FrameWidth; x++ {
			i := (y*FrameWidth + x) * 3
			p := &f.Pixels[x][y]
			dst[i] = p[0]
			dst[i+1] = p[1]
			dst[i+2] = p[2]
		}
	}
}
