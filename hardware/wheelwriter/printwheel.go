package wheelwriter

// ASCII to printwheel position, indexed by character minus 0x20. The
// printwheel code is the position of the character counting anticlockwise
// from 'a' at twelve o'clock. Zero means the character is not on the wheel.
// The upper half covers the Latin-1 symbols found on the standard wheels.
var asciiToWheel = [160]uint8{
	0x00, 0x49, 0x4b, 0x38, 0x37, 0x39, 0x3f, 0x4c, 0x23, 0x16, 0x36, 0x3b, 0x0c, 0x0e, 0x57, 0x28,
	0x30, 0x2e, 0x2f, 0x2c, 0x32, 0x31, 0x33, 0x35, 0x34, 0x2a, 0x4e, 0x50, 0x00, 0x4d, 0x00, 0x4a,
	0x3d, 0x20, 0x12, 0x1b, 0x1d, 0x1e, 0x11, 0x0f, 0x14, 0x1f, 0x21, 0x2b, 0x18, 0x24, 0x1a, 0x22,
	0x15, 0x3e, 0x17, 0x19, 0x1c, 0x10, 0x0d, 0x29, 0x2d, 0x26, 0x13, 0x41, 0x00, 0x40, 0x00, 0x4f,
	0x00, 0x01, 0x59, 0x05, 0x07, 0x60, 0x0a, 0x5a, 0x08, 0x5d, 0x56, 0x0b, 0x09, 0x04, 0x02, 0x5f,
	0x5c, 0x52, 0x03, 0x06, 0x5e, 0x5b, 0x53, 0x55, 0x51, 0x58, 0x54, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x3a, 0x00, 0x00, 0x00, 0x00, 0x45, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x44, 0x3c, 0x42, 0x43, 0x00, 0x00, 0x46, 0x00, 0x00, 0x00, 0x00, 0x00, 0x48, 0x47, 0x00, 0x00,
}

// printwheel position to ASCII, indexed by printwheel code minus one.
var wheelToASCII = [96]uint8{
	0x61, 0x6e, 0x72, 0x6d, 0x63, 0x73, 0x64, 0x68, 0x6c, 0x66, 0x6b, 0x2c, 0x56, 0x2d, 0x47, 0x55,
	0x46, 0x42, 0x5a, 0x48, 0x50, 0x29, 0x52, 0x4c, 0x53, 0x4e, 0x43, 0x54, 0x44, 0x45, 0x49, 0x41,
	0x4a, 0x4f, 0x28, 0x4d, 0x2e, 0x59, 0x2c, 0x2f, 0x57, 0x39, 0x4b, 0x33, 0x58, 0x31, 0x32, 0x30,
	0x35, 0x34, 0x36, 0x38, 0x37, 0x2a, 0x24, 0x23, 0x25, 0xa2, 0x2b, 0xb1, 0x40, 0x51, 0x26, 0x5d,
	0x5b, 0xb2, 0xb3, 0xb0, 0xa7, 0xb6, 0xbd, 0xbc, 0x21, 0x3f, 0x22, 0x27, 0x3d, 0x3a, 0x5f, 0x3b,
	0x78, 0x71, 0x76, 0x7a, 0x77, 0x6a, 0x2e, 0x79, 0x62, 0x67, 0x75, 0x70, 0x69, 0x74, 0x6f, 0x65,
}

// Underscore is the printwheel code used for underlining.
const Underscore = 0x4f

// WheelCode returns the printwheel code for the character. The result is zero
// if the character is not on the printwheel.
func WheelCode(c uint8) uint8 {
	if c < 0x20 || int(c-0x20) >= len(asciiToWheel) {
		return 0
	}
	return asciiToWheel[c-0x20]
}

// Character returns the character at the printwheel code. The result is zero
// if the code is out of range.
func Character(code uint8) uint8 {
	if code == 0 || int(code) > len(wheelToASCII) {
		return 0
	}
	return wheelToASCII[code-1]
}
