package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// scancode set 2 make codes. extended keys are prefixed with 0xe0 in both
// the make and the break sequence
type scancode struct {
	code     uint8
	extended bool
}

var keymap = map[ebiten.Key]scancode{
	ebiten.KeyA: {code: 0x1c},
	ebiten.KeyB: {code: 0x32},
	ebiten.KeyC: {code: 0x21},
	ebiten.KeyD: {code: 0x23},
	ebiten.KeyE: {code: 0x24},
	ebiten.KeyF: {code: 0x2b},
	ebiten.KeyG: {code: 0x34},
	ebiten.KeyH: {code: 0x33},
	ebiten.KeyI: {code: 0x43},
	ebiten.KeyJ: {code: 0x3b},
	ebiten.KeyK: {code: 0x42},
	ebiten.KeyL: {code: 0x4b},
	ebiten.KeyM: {code: 0x3a},
	ebiten.KeyN: {code: 0x31},
	ebiten.KeyO: {code: 0x44},
	ebiten.KeyP: {code: 0x4d},
	ebiten.KeyQ: {code: 0x15},
	ebiten.KeyR: {code: 0x2d},
	ebiten.KeyS: {code: 0x1b},
	ebiten.KeyT: {code: 0x2c},
	ebiten.KeyU: {code: 0x3c},
	ebiten.KeyV: {code: 0x2a},
	ebiten.KeyW: {code: 0x1d},
	ebiten.KeyX: {code: 0x22},
	ebiten.KeyY: {code: 0x35},
	ebiten.KeyZ: {code: 0x1a},

	ebiten.KeyDigit0: {code: 0x45},
	ebiten.KeyDigit1: {code: 0x16},
	ebiten.KeyDigit2: {code: 0x1e},
	ebiten.KeyDigit3: {code: 0x26},
	ebiten.KeyDigit4: {code: 0x25},
	ebiten.KeyDigit5: {code: 0x2e},
	ebiten.KeyDigit6: {code: 0x36},
	ebiten.KeyDigit7: {code: 0x3d},
	ebiten.KeyDigit8: {code: 0x3e},
	ebiten.KeyDigit9: {code: 0x46},

	ebiten.KeyBackquote:    {code: 0x0e},
	ebiten.KeyMinus:        {code: 0x4e},
	ebiten.KeyEqual:        {code: 0x55},
	ebiten.KeyBackslash:    {code: 0x5d},
	ebiten.KeyBracketLeft:  {code: 0x54},
	ebiten.KeyBracketRight: {code: 0x5b},
	ebiten.KeySemicolon:    {code: 0x4c},
	ebiten.KeyQuote:        {code: 0x52},
	ebiten.KeyComma:        {code: 0x41},
	ebiten.KeyPeriod:       {code: 0x49},
	ebiten.KeySlash:        {code: 0x4a},

	ebiten.KeyBackspace:    {code: 0x66},
	ebiten.KeySpace:        {code: 0x29},
	ebiten.KeyTab:          {code: 0x0d},
	ebiten.KeyCapsLock:     {code: 0x58},
	ebiten.KeyEnter:        {code: 0x5a},
	ebiten.KeyEscape:       {code: 0x76},
	ebiten.KeyShiftLeft:    {code: 0x12},
	ebiten.KeyShiftRight:   {code: 0x59},
	ebiten.KeyControlLeft:  {code: 0x14},
	ebiten.KeyControlRight: {code: 0x14, extended: true},
	ebiten.KeyAltLeft:      {code: 0x11},
	ebiten.KeyAltRight:     {code: 0x11, extended: true},
	ebiten.KeyMetaLeft:     {code: 0x1f, extended: true},
	ebiten.KeyMetaRight:    {code: 0x27, extended: true},

	ebiten.KeyF1:  {code: 0x05},
	ebiten.KeyF2:  {code: 0x06},
	ebiten.KeyF3:  {code: 0x04},
	ebiten.KeyF4:  {code: 0x0c},
	ebiten.KeyF5:  {code: 0x03},
	ebiten.KeyF6:  {code: 0x0b},
	ebiten.KeyF7:  {code: 0x83},
	ebiten.KeyF8:  {code: 0x0a},
	ebiten.KeyF9:  {code: 0x01},
	ebiten.KeyF10: {code: 0x09},
	ebiten.KeyF11: {code: 0x78},
	ebiten.KeyF12: {code: 0x07},

	ebiten.KeyScrollLock: {code: 0x7e},
	ebiten.KeyNumLock:    {code: 0x77},

	ebiten.KeyInsert:     {code: 0x70, extended: true},
	ebiten.KeyDelete:     {code: 0x71, extended: true},
	ebiten.KeyHome:       {code: 0x6c, extended: true},
	ebiten.KeyEnd:        {code: 0x69, extended: true},
	ebiten.KeyPageUp:     {code: 0x7d, extended: true},
	ebiten.KeyPageDown:   {code: 0x7a, extended: true},
	ebiten.KeyArrowUp:    {code: 0x75, extended: true},
	ebiten.KeyArrowDown:  {code: 0x72, extended: true},
	ebiten.KeyArrowLeft:  {code: 0x6b, extended: true},
	ebiten.KeyArrowRight: {code: 0x74, extended: true},

	ebiten.KeyNumpad0:        {code: 0x70},
	ebiten.KeyNumpad1:        {code: 0x69},
	ebiten.KeyNumpad2:        {code: 0x72},
	ebiten.KeyNumpad3:        {code: 0x7a},
	ebiten.KeyNumpad4:        {code: 0x6b},
	ebiten.KeyNumpad5:        {code: 0x73},
	ebiten.KeyNumpad6:        {code: 0x74},
	ebiten.KeyNumpad7:        {code: 0x6c},
	ebiten.KeyNumpad8:        {code: 0x75},
	ebiten.KeyNumpad9:        {code: 0x7d},
	ebiten.KeyNumpadDecimal:  {code: 0x71},
	ebiten.KeyNumpadAdd:      {code: 0x79},
	ebiten.KeyNumpadSubtract: {code: 0x7b},
	ebiten.KeyNumpadMultiply: {code: 0x7c},
	ebiten.KeyNumpadDivide:   {code: 0x4a, extended: true},
	ebiten.KeyNumpadEnter:    {code: 0x5a, extended: true},
}

// the pause key has no break sequence
var pauseSequence = []uint8{0xe1, 0x14, 0x77, 0xe1, 0xf0, 0x14, 0xf0, 0x77}

var (
	printScreenMake  = []uint8{0xe0, 0x12, 0xe0, 0x7c}
	printScreenBreak = []uint8{0xe0, 0xf0, 0x7c, 0xe0, 0xf0, 0x12}
)

// scancodes returns the bytes a PS/2 keyboard sends when the key is pressed or
// released. returns nil if the key has no equivalent on the keyboard
func scancodes(k ebiten.Key, release bool) []uint8 {
	switch k {
	case ebiten.KeyPause:
		if release {
			return nil
		}
		return pauseSequence
	case ebiten.KeyPrintScreen:
		if release {
			return printScreenBreak
		}
		return printScreenMake
	}

	sc, ok := keymap[k]
	if !ok {
		return nil
	}

	var b []uint8
	if sc.extended {
		b = append(b, 0xe0)
	}
	if release {
		b = append(b, 0xf0)
	}
	return append(b, sc.code)
}
