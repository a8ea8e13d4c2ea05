package input

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// KeyReader reads single key presses from a terminal in raw mode
type KeyReader struct {
	f        *os.File
	oldState *term.State
	once     sync.Once
}

// NewKeyReader puts f into raw mode. Call Close to restore it.
func NewKeyReader(f *os.File) (*KeyReader, error) {
	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &KeyReader{f: f, oldState: oldState}, nil
}

// Close restores the terminal state
func (k *KeyReader) Close() error {
	var err error
	k.once.Do(func() {
		err = term.Restore(int(k.f.Fd()), k.oldState)
	})
	return err
}

// ReadKey blocks until a key is pressed and returns it as a raw input
func (k *KeyReader) ReadKey() (RawInput, error) {
	b, err := k.readByte()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: k.decode(b), Timestamp: time.Now()}, nil
}

func (k *KeyReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := k.f.Read(buf)
	return buf[0], err
}

// decode turns a first byte (and any escape sequence after it) into a key code
func (k *KeyReader) decode(b byte) string {
	switch b {
	case 3:
		return "ctrl_c"
	case ' ':
		return "space"
	case '\r', '\n':
		return "enter"
	case 0x1b:
		return k.decodeEscape()
	}
	return string(rune(b))
}

// decodeEscape reads the rest of a CSI (ESC [) or SS3 (ESC O) arrow sequence.
// A bare ESC is reported as "escape".
func (k *KeyReader) decodeEscape() string {
	b2, err := k.readByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return "escape"
	}
	b3, err := k.readByte()
	if err != nil {
		return "escape"
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}
