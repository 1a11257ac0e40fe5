// This file is part of GoCDG.
//
// GoCDG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoCDG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoCDG.  If not, see <https://www.gnu.org/licenses/>.

package cdg

// dimensions of the subcode packet. the data payload sits between a
// four byte header (command, instruction, two parity bytes) and four
// trailing parity bytes.
const (
	PacketSize = 24
	dataOffset = 4
	dataSize   = 16
)

// the stream arrives at 300 subcode packets per second. a frame is
// sampled every 12 packets, giving the nominal 25fps of the format.
const (
	PacketsPerSecond = 300
	PacketsPerFrame  = 12
	FrameDuration    = 40 // milliseconds
)

// only the low six bits of the command and instruction bytes are
// significant. the top two bits are parity.
const subcodeMask = 0x3f

// a subcode packet is a CD+G packet when the masked command byte equals
// cdgCommand. packets with any other command byte belong to other
// subcode channels and are skipped.
const cdgCommand = 0x09

// instruction codes for the masked instruction byte. codes not listed
// here are reserved by the CD+G specification and are ignored.
const (
	insMemoryPreset      = 1
	insBorderPreset      = 2
	insTileBlock         = 6
	insScrollPreset      = 20
	insScrollCopy        = 24
	insDefineTransparent = 28
	insColorsLow         = 30
	insColorsHigh        = 31
	insTileBlockXOR      = 38
)

// packet is a single 24 byte subcode packet. the data field aliases the
// input buffer; packets are never written to.
type packet struct {
	command     uint8
	instruction uint8
	data        []byte
}

func (pkt packet) isCDG() bool {
	return pkt.command&subcodeMask == cdgCommand
}

// packetReader carves the input buffer into successive non-overlapping
// 24 byte packets. it does not interpret packet contents.
type packetReader struct {
	buffer []byte
	offset int
}

// next returns the next packet in the buffer. returns false when there
// are no more complete packets.
func (rdr *packetReader) next() (packet, bool) {
	if rdr.offset+PacketSize > len(rdr.buffer) {
		return packet{}, false
	}

	pkt := packet{
		command:     rdr.buffer[rdr.offset],
		instruction: rdr.buffer[rdr.offset+1],
		data:        rdr.buffer[rdr.offset+dataOffset : rdr.offset+dataOffset+dataSize],
	}
	rdr.offset += PacketSize

	return pkt, true
}

// remaining returns the number of unconsumed bytes. after next() has
// returned false a non-zero value indicates a truncated trailing packet.
func (rdr *packetReader) remaining() int {
	return len(rdr.buffer) - rdr.offset
}
