package ass

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Subtitle files in the wild come as UTF-8 (often with a BOM, the original
// tooling wrote them as utf-8-sig) or as UTF-16 in either byte order.
// decodeBytes normalizes all of them to plain UTF-8.
func decodeBytes(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return data[3:], nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return data, nil
}
