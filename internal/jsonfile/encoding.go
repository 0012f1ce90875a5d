package jsonfile

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// normalize converts file content to BOM-free UTF-8. Only BOM-marked
// UTF-16 is transcoded; BOM-less input is assumed to already be UTF-8,
// which is what RFC 8259 mandates for interchange.
func normalize(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return data[len(utf8BOM):], nil
	case bytes.HasPrefix(data, utf16LEBOM):
		return transcodeUTF16(data, unicode.LittleEndian)
	case bytes.HasPrefix(data, utf16BEBOM):
		return transcodeUTF16(data, unicode.BigEndian)
	default:
		return data, nil
	}
}

func transcodeUTF16(data []byte, endian unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(endian, unicode.UseBOM).NewDecoder()
	return dec.Bytes(data)
}
