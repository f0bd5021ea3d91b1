package render

// fillPackedRGBA expands packed 0RGB pixel values into an RGBA byte buffer.
// Alpha is forced opaque; the high byte of each packed value is ignored.
func fillPackedRGBA(buf []byte, pixels []uint32) {
	for i, p := range pixels {
		base := i * 4
		buf[base+0] = uint8(p >> 16)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p)
		buf[base+3] = 0xff
	}
}
