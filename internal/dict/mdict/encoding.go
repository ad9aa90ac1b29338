package mdict

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	xunicode "golang.org/x/text/encoding/unicode"
)

// decodeArticle converts raw record bytes to UTF-8 using the encoding named
// in the MDX header. Unknown labels fall back to the raw bytes.
func decodeArticle(data []byte, label string) string {
	if len(data) == 0 {
		return ""
	}
	enc := articleEncoding(label)
	if enc == nil {
		return string(data)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

func articleEncoding(label string) encoding.Encoding {
	l := strings.ToUpper(strings.TrimSpace(label))
	switch l {
	case "", "UTF-8", "UTF8":
		return nil
	case "UTF-16", "UTF-16LE":
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM)
	case "UTF-16BE":
		return xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM)
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil
	}
	return enc
}

// validText trims trailing NULs left by fixed-width record encodings.
func validText(s string) string {
	s = strings.TrimRight(s, "\x00")
	if !utf8.ValidString(s) {
		return strings.ToValidUTF8(s, "")
	}
	return s
}
