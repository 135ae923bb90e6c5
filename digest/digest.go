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

// Package digest is used to create a fingerprint of the picture rebuilt by
// the television. The fingerprint is useful for regression testing of the
// signal path: a change in the waveform tables, the dispatch engine, the
// feeder or the raster package will be reflected in the digest.
package digest

// Digest implementations compute a fingerprint of some output.
type Digest interface {
	Hash() string
	ResetDigest()
}
