// Package input turns raw terminal bytes into game signals.
package input

import (
	"bytes"
	"io"
	"strconv"
)

// maxSequenceLen bounds how long an unterminated escape sequence is buffered.
const maxSequenceLen = 32

// Input represents the signals received since the previous frame.
type Input struct {
	Quit    bool
	Actions int    // Space, Enter and left mouse clicks; each one is a start or toggle signal
	Pressed []byte // Raw bytes, used for activity tracking
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte // Incomplete escape sequence carried to the next read
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.ByteReader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit so the caller can stop its loop.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	if len(rest) > 0 && len(rest) < maxSequenceLen {
		s.pending = append([]byte(nil), rest...)
	}
	if s.closed {
		in.Quit = true
	}
	return in
}

// Parse decodes buf and returns the signals plus any trailing incomplete
// escape sequence that needs more bytes.
func Parse(buf []byte) (Input, []byte) {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); {
		b := buf[i]

		if b == '\x1b' {
			n, action, complete := parseEscape(buf[i:])
			if !complete {
				return in, buf[i:]
			}
			if action {
				in.Actions++
			}
			i += n
			continue
		}

		switch b {
		case ' ', '\r', '\n':
			in.Actions++
		case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
			in.Quit = true
		}
		i++
	}
	return in, nil
}

// parseEscape consumes one escape sequence at the start of seq.
// It returns the consumed length, whether it was a left click press, and
// false for complete when seq ends before the sequence does.
func parseEscape(seq []byte) (n int, action bool, complete bool) {
	if len(seq) < 2 {
		return 0, false, false
	}
	if seq[1] != '[' {
		return 1, false, true // Bare escape key
	}
	if len(seq) < 3 {
		return 0, false, false
	}

	if seq[2] == '<' {
		// SGR mouse report: ESC [ < button ; col ; row (M|m)
		end := bytes.IndexAny(seq[3:], "Mm")
		if end < 0 {
			return 0, false, false
		}
		end += 3
		return end + 1, isLeftPress(seq[3:end], seq[end]), true
	}

	// Other CSI sequences (arrows, function keys) end with a byte in 0x40-0x7E
	for j := 2; j < len(seq); j++ {
		if seq[j] >= 0x40 && seq[j] <= 0x7e {
			return j + 1, false, true
		}
	}
	return 0, false, false
}

// isLeftPress reports whether SGR mouse parameters describe a left button press.
func isLeftPress(params []byte, final byte) bool {
	if final != 'M' {
		return false
	}
	fields := bytes.SplitN(params, []byte{';'}, 2)
	button, err := strconv.Atoi(string(fields[0]))
	if err != nil {
		return false
	}
	// Low bits select the button; 32 marks motion, 64 the wheel
	return button&0b11 == 0 && button&(32|64) == 0
}
