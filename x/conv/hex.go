package conv

const hexd = "0123456789ABCDEF"

// U8Hex writes 2-digit uppercase hex without 0x, zero-padded.
func U8Hex(buf []byte, n uint8) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	i := len(buf)
	i--
	buf[i] = hexd[n&0xF]
	i--
	buf[i] = hexd[n>>4]
	return buf[i:]
}

// AppendReg appends a register address in the form "0xNN".
func AppendReg(dst []byte, reg uint8) []byte {
	var b [2]byte
	dst = append(dst, '0', 'x')
	return append(dst, U8Hex(b[:], reg)...)
}
