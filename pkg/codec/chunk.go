package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	cfg "github.com/daycycle/go-daywall/pkg/config"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// buildITXT frames the packet as an uncompressed iTXt chunk:
// keyword \0 compression-flag compression-method language-tag \0
// translated-keyword \0 text
func buildITXT(packet []byte) []byte {
	var data bytes.Buffer
	data.WriteString(cfg.XMPKeyword)
	data.Write([]byte{0, 0, 0, 0, 0})
	data.Write(packet)

	var chunk bytes.Buffer
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(data.Len()))
	chunk.Write(length[:])
	chunk.WriteString("iTXt")
	chunk.Write(data.Bytes())

	crc := crc32.NewIEEE()
	crc.Write(chunk.Bytes()[4:])
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	chunk.Write(sum[:])

	return chunk.Bytes()
}

// spliceXMP inserts the metadata packet as an iTXt chunk right after IHDR.
func spliceXMP(container, packet []byte) ([]byte, error) {
	if !bytes.HasPrefix(container, pngSignature) {
		return nil, fmt.Errorf("container is not a png stream")
	}

	// signature + IHDR (length 13 + framing 12)
	offset := len(pngSignature)
	if len(container) < offset+25 {
		return nil, fmt.Errorf("truncated container")
	}
	ihdrLen := binary.BigEndian.Uint32(container[offset:])
	if string(container[offset+4:offset+8]) != "IHDR" {
		return nil, fmt.Errorf("container does not start with IHDR")
	}
	offset += 12 + int(ihdrLen)

	chunk := buildITXT(packet)
	out := make([]byte, 0, len(container)+len(chunk))
	out = append(out, container[:offset]...)
	out = append(out, chunk...)
	out = append(out, container[offset:]...)
	return out, nil
}

// ExtractXMP walks the container chunks and returns the first embedded
// metadata packet, if any.
func ExtractXMP(container []byte) ([]byte, bool) {
	prefix := append([]byte(cfg.XMPKeyword), 0, 0, 0, 0, 0)
	for _, data := range chunks(container, "iTXt") {
		if bytes.HasPrefix(data, prefix) {
			return data[len(prefix):], true
		}
	}
	return nil, false
}

// HasAnimation reports whether the container declares an animation control
// chunk.
func HasAnimation(container []byte) bool {
	return len(chunks(container, "acTL")) > 0
}

// chunks returns the data of every chunk with the given type.
func chunks(container []byte, chunkType string) [][]byte {
	if !bytes.HasPrefix(container, pngSignature) {
		return nil
	}
	var out [][]byte
	offset := len(pngSignature)
	for offset+12 <= len(container) {
		length := int(binary.BigEndian.Uint32(container[offset:]))
		if offset+12+length > len(container) {
			break
		}
		if string(container[offset+4:offset+8]) == chunkType {
			out = append(out, container[offset+8:offset+8+length])
		}
		offset += 12 + length
	}
	return out
}
