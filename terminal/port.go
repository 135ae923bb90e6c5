// This file is part of cvideo.
//
// cvideo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cvideo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cvideo.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/term"
)

// Port is a byte stream connection to the source of terminal input.
type Port interface {
	io.ReadWriteCloser
}

// DefaultTTY is the device opened by OpenTTY() if no device is specified.
const DefaultTTY = "/dev/tty"

// DefaultBaud is the baud rate of the UART if no rate is specified.
const DefaultBaud = 115200

// TTY is a Port connected to a local terminal device in raw mode.
type TTY struct {
	t *term.Term
}

// OpenTTY opens the terminal device in raw mode. The previous mode of the
// terminal is restored by Close().
func OpenTTY(device string) (*TTY, error) {
	if device == "" {
		device = DefaultTTY
	}
	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &TTY{t: t}, nil
}

// Read implements the io.Reader interface.
func (tty *TTY) Read(p []byte) (int, error) {
	return tty.t.Read(p)
}

// Write implements the io.Writer interface.
func (tty *TTY) Write(p []byte) (int, error) {
	return tty.t.Write(p)
}

// Close implements the io.Closer interface.
func (tty *TTY) Close() error {
	if err := tty.t.Restore(); err != nil {
		_ = tty.t.Close()
		return fmt.Errorf("terminal: %w", err)
	}
	return tty.t.Close()
}

// UART is a Port connected to a serial device. The line is 8N1.
type UART struct {
	io.ReadWriteCloser
	device string
	baud   uint
}

// OpenUART opens the serial device at the baud rate. A baud rate of zero
// selects DefaultBaud.
func OpenUART(device string, baud uint) (*UART, error) {
	if baud == 0 {
		baud = DefaultBaud
	}
	options := serial.OpenOptions{
		PortName:        device,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		ParityMode:      serial.PARITY_NONE,
		MinimumReadSize: 1,
	}
	p, err := serial.Open(options)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &UART{ReadWriteCloser: p, device: device, baud: baud}, nil
}

func (u *UART) String() string {
	return fmt.Sprintf("%s (%d 8N1)", u.device, u.baud)
}

// Memory is an in-memory Port. Reads are satisfied from the input given to
// NewMemory() and writes are collected for inspection with Output().
type Memory struct {
	crit   sync.Mutex
	input  *bytes.Reader
	output bytes.Buffer
	closed bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(input []byte) *Memory {
	return &Memory{input: bytes.NewReader(input)}
}

// Read implements the io.Reader interface. Returns io.EOF when the input is
// exhausted.
func (m *Memory) Read(p []byte) (int, error) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if m.closed {
		return 0, io.ErrClosedPipe
	}
	return m.input.Read(p)
}

// Write implements the io.Writer interface.
func (m *Memory) Write(p []byte) (int, error) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if m.closed {
		return 0, io.ErrClosedPipe
	}
	return m.output.Write(p)
}

// Close implements the io.Closer interface.
func (m *Memory) Close() error {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.closed = true
	return nil
}

// Output returns everything written to the port.
func (m *Memory) Output() string {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.output.String()
}
