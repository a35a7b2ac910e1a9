package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	chr, err := stdinReader.ReadString('\n')

	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.Trim(chr, "\n")
}

// ReadKey decodes one key press from r and returns its binding code. Escape
// sequences are recognised only when their bytes arrive together, so a lone
// ESC comes back as "escape" rather than blocking for the next key.
func ReadKey(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		if r.Buffered() == 0 {
			return "escape", nil
		}
		return readEscape(r)
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == '\t':
		return "tab", nil
	case b == ' ':
		return "space", nil
	case b == 127 || b == 8:
		return "backspace", nil
	case b >= 32 && b < 127:
		return strings.ToLower(string(b)), nil
	}
	return "", nil
}

// readEscape handles the bytes after ESC: CSI (ESC [) and SS3 (ESC O) arrow
// keys and the CSI function-key form ESC [ n ~.
func readEscape(r *bufio.Reader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}

	var num []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case b >= '0' && b <= '9':
			num = append(num, b)
			continue
		case b == '~':
			return functionKey(string(num)), nil
		case b == 'A':
			return "arrow_up", nil
		case b == 'B':
			return "arrow_down", nil
		case b == 'C':
			return "arrow_right", nil
		case b == 'D':
			return "arrow_left", nil
		}
		// Unknown escape sequence - discard it
		return "", nil
	}
}

func functionKey(n string) string {
	switch n {
	case "15":
		return "f5"
	case "20":
		return "f9"
	case "21":
		return "f10"
	}
	return ""
}

// Keys puts the terminal into raw mode and streams key presses until ctx is
// done or stdin closes. The returned restore func puts the terminal back and
// must always be called.
func Keys(ctx context.Context) (<-chan RawInput, func(), error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, func() {}, fmt.Errorf("set terminal raw mode: %w", err)
	}
	restore := func() { _ = term.Restore(fd, oldState) }
	return Stream(ctx, os.Stdin, DeviceTerminal), restore, nil
}

// Stream decodes key presses from src onto a channel that closes when src is
// exhausted or ctx is done.
func Stream(ctx context.Context, src io.Reader, device Device) <-chan RawInput {
	out := make(chan RawInput, 16)
	r := bufio.NewReader(src)
	go func() {
		defer close(out)
		for {
			code, err := ReadKey(r)
			if err != nil {
				return
			}
			if code == "" {
				continue
			}
			select {
			case out <- RawInput{Device: device, Code: code, Timestamp: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
