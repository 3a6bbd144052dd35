// Package archive assembles a minimal ZIP container in memory.
//
// The subset implemented here is exactly what an OOXML package needs:
// deflate-compressed entries, a central directory, a single-disk
// end-of-central-directory record, ASCII entry paths, 32-bit sizes
// (no zip64). Entries are written front to back in one pass and are
// never reordered or rewritten.
package archive

import (
	"bytes"
	"encoding/binary"
)

// ZIP record signatures, little-endian encodings of "PK\x03\x04" etc.
const (
	localFileHeaderSignature  uint32 = 0x04034b50
	centralDirectorySignature uint32 = 0x02014b50
	endOfCentralDirSignature  uint32 = 0x06054b50
)

// methodDeflate is the only compression method the builder emits.
const methodDeflate uint16 = 8

// extractVersion is the minimum ZIP spec version needed to read
// deflate entries (2.0).
const extractVersion uint16 = 20

// Entry is one named payload to store in the archive.
type Entry struct {
	// Path is the entry's name inside the archive, ASCII, with
	// forward-slash separators (e.g. "xl/workbook.xml").
	Path string
	// Data is the raw, uncompressed payload.
	Data []byte
}

// localFileHeader is the fixed portion of a ZIP local file header.
// The path bytes and compressed payload follow it directly.
type localFileHeader struct {
	Signature        uint32
	ExtractVersion   uint16
	Flags            uint16
	Method           uint16
	ModTime          uint16
	ModDate          uint16
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	PathLength       uint16
	ExtraLength      uint16
}

// centralDirectoryHeader is the fixed portion of one central
// directory record. The path bytes follow it directly.
type centralDirectoryHeader struct {
	Signature        uint32
	CreatorVersion   uint16
	ExtractVersion   uint16
	Flags            uint16
	Method           uint16
	ModTime          uint16
	ModDate          uint16
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	PathLength       uint16
	ExtraLength      uint16
	CommentLength    uint16
	DiskNumber       uint16
	InternalAttrs    uint16
	ExternalAttrs    uint32
	Offset           uint32
}

// endOfCentralDirectory is the trailing record closing the archive.
type endOfCentralDirectory struct {
	Signature       uint32
	DiskNumber      uint16
	DirectoryDisk   uint16
	EntriesOnDisk   uint16
	EntriesTotal    uint16
	DirectorySize   uint32
	DirectoryOffset uint32
	CommentLength   uint16
}

// writtenEntry records what Build needs to emit an entry's central
// directory record after all payloads are out.
type writtenEntry struct {
	path       string
	crc        uint32
	compressed uint32
	raw        uint32
	offset     uint32
}

// Builder assembles archives using the given Compressor for entry
// payloads. A Builder holds no per-archive state and is safe for
// concurrent use.
type Builder struct {
	comp Compressor
}

// NewBuilder returns a Builder compressing entries with comp.
func NewBuilder(comp Compressor) *Builder {
	return &Builder{comp: comp}
}

// Build assembles a complete archive from entries, preserving their
// order. The returned bytes are a standalone ZIP file.
func (b *Builder) Build(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	written := make([]writtenEntry, 0, len(entries))

	for _, entry := range entries {
		crc := Checksum(entry.Data)
		compressed, err := b.comp.Compress(entry.Data)
		if err != nil {
			return nil, &EntryError{Path: entry.Path, Err: err}
		}

		offset := uint32(buf.Len())
		hdr := localFileHeader{
			Signature:        localFileHeaderSignature,
			ExtractVersion:   extractVersion,
			Method:           methodDeflate,
			CRC32:            crc,
			CompressedSize:   uint32(len(compressed)),
			UncompressedSize: uint32(len(entry.Data)),
			PathLength:       uint16(len(entry.Path)),
		}
		binary.Write(&buf, binary.LittleEndian, hdr)
		buf.WriteString(entry.Path)
		buf.Write(compressed)

		written = append(written, writtenEntry{
			path:       entry.Path,
			crc:        crc,
			compressed: uint32(len(compressed)),
			raw:        uint32(len(entry.Data)),
			offset:     offset,
		})
	}

	directoryOffset := uint32(buf.Len())
	for _, w := range written {
		hdr := centralDirectoryHeader{
			Signature:        centralDirectorySignature,
			CreatorVersion:   extractVersion,
			ExtractVersion:   extractVersion,
			Method:           methodDeflate,
			CRC32:            w.crc,
			CompressedSize:   w.compressed,
			UncompressedSize: w.raw,
			PathLength:       uint16(len(w.path)),
			Offset:           w.offset,
		}
		binary.Write(&buf, binary.LittleEndian, hdr)
		buf.WriteString(w.path)
	}

	end := endOfCentralDirectory{
		Signature:       endOfCentralDirSignature,
		EntriesOnDisk:   uint16(len(written)),
		EntriesTotal:    uint16(len(written)),
		DirectorySize:   uint32(buf.Len()) - directoryOffset,
		DirectoryOffset: directoryOffset,
	}
	binary.Write(&buf, binary.LittleEndian, end)

	return buf.Bytes(), nil
}
