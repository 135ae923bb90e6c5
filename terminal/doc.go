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

// Package terminal implements a simple text terminal on the video output.
// Characters are read one byte at a time from a Port and drawn into the
// framebuffer with the character set of the raster package.
//
// The terminal understands printable ASCII, backspace (0x08) and carriage
// return (0x0d). Ctrl+C (0x03) and ESC (0x1b) end the terminal. When the
// cursor passes the bottom of the picture the picture is scrolled up by one
// line of text.
//
// Three Port implementations are provided: the local TTY in raw mode, a
// serial UART and an in-memory port for testing.
package terminal
