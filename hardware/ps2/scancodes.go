package ps2

// Scancode set 2 to ASCII for the keys that are not handled explicitly by the
// Decoder. The shifted table is used when shift is held and caps lock is not
// active. Entries of zero produce no key.

var unshifted = [128]Key{
	0x0d: Tab,
	0x0e: '`',
	0x15: 'q',
	0x16: '1',
	0x1a: 'z',
	0x1b: 's',
	0x1c: 'a',
	0x1d: 'w',
	0x1e: '2',
	0x21: 'c',
	0x22: 'x',
	0x23: 'd',
	0x24: 'e',
	0x25: '4',
	0x26: '3',
	0x29: Space,
	0x2a: 'v',
	0x2b: 'f',
	0x2c: 't',
	0x2d: 'r',
	0x2e: '5',
	0x31: 'n',
	0x32: 'b',
	0x33: 'h',
	0x34: 'g',
	0x35: 'y',
	0x36: '6',
	0x3a: 'm',
	0x3b: 'j',
	0x3c: 'u',
	0x3d: '7',
	0x3e: '8',
	0x41: ',',
	0x42: 'k',
	0x43: 'i',
	0x44: 'o',
	0x45: '0',
	0x46: '9',
	0x49: '.',
	0x4a: '/',
	0x4b: 'l',
	0x4c: ';',
	0x4d: 'p',
	0x4e: '-',
	0x52: '\'',
	0x54: '[',
	0x55: '=',
	0x5a: Enter,
	0x5b: ']',
	0x5d: '\\',
	0x66: Backspace,
	0x71: 0x7f,
	0x76: Escape,
	0x79: '+',
	0x7b: '-',
	0x7c: '*',
}

var shifted = [128]Key{
	0x0d: Tab,
	0x0e: '~',
	0x15: 'Q',
	0x16: '!',
	0x1a: 'Z',
	0x1b: 'S',
	0x1c: 'A',
	0x1d: 'W',
	0x1e: '@',
	0x21: 'C',
	0x22: 'X',
	0x23: 'D',
	0x24: 'E',
	0x25: '$',
	0x26: '#',
	0x29: Space,
	0x2a: 'V',
	0x2b: 'F',
	0x2c: 'T',
	0x2d: 'R',
	0x2e: '%',
	0x31: 'N',
	0x32: 'B',
	0x33: 'H',
	0x34: 'G',
	0x35: 'Y',
	0x36: '^',
	0x3a: 'M',
	0x3b: 'J',
	0x3c: 'U',
	0x3d: '&',
	0x3e: '*',
	0x41: '<',
	0x42: 'K',
	0x43: 'I',
	0x44: 'O',
	0x45: ')',
	0x46: '(',
	0x49: '>',
	0x4a: '?',
	0x4b: 'L',
	0x4c: ':',
	0x4d: 'P',
	0x4e: '_',
	0x52: '"',
	0x54: '{',
	0x55: '+',
	0x5a: Enter,
	0x5b: '}',
	0x5d: '|',
	0x66: Backspace,
	0x71: 0x7f,
	0x76: Escape,
	0x79: '+',
	0x7b: '_',
	0x7c: '*',
}

// Unshifted returns the entry in the unshifted lookup table.
func Unshifted(sc uint8) Key {
	if int(sc) >= len(unshifted) {
		return NoKey
	}
	return unshifted[sc]
}

// Shifted returns the entry in the shifted lookup table.
func Shifted(sc uint8) Key {
	if int(sc) >= len(shifted) {
		return NoKey
	}
	return shifted[sc]
}
