package stardict

import (
	"strings"

	"github.com/k3a/html2text"

	gd "github.com/sagerenn/lexi/internal/dict"

	std "github.com/ianlewis/go-stardict"
	"github.com/ianlewis/go-stardict/dict"
	"github.com/ianlewis/go-stardict/idx"
)

// Load reads every article of the dictionary described by ifoPath, in index
// order, rendering each article as plain text.
func Load(ifoPath string) ([]gd.Entry, error) {
	sd, err := std.Open(ifoPath, nil)
	if err != nil {
		return nil, err
	}
	d, err := sd.Dict()
	if err != nil {
		return nil, err
	}

	sc, err := sd.IndexScanner()
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	entries := make([]gd.Entry, 0, 1024)
	for sc.Scan() {
		w := sc.Word()
		word := idx.Word{Word: w.Word, Offset: w.Offset, Size: w.Size}
		article, err := d.Word(&word)
		if err != nil {
			return nil, err
		}
		def := dataToText(article.Data)
		if def == "" {
			continue
		}
		entries = append(entries, gd.Entry{Word: w.Word, Definition: def})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func dataToText(data []*dict.Data) string {
	var b strings.Builder
	for _, d := range data {
		s := strings.TrimSpace(renderData(d))
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s)
	}
	return strings.TrimSpace(b.String())
}

func renderData(d *dict.Data) string {
	switch d.Type {
	case dict.HTMLType, dict.PangoTextType, dict.XDXFType, dict.PowerWordType:
		return html2text.HTML2Text(string(d.Data))
	case dict.UTFTextType, dict.LocaleTextType, dict.MediaWikiType, dict.WordNetType:
		return normalizeNewlines(string(d.Data))
	case dict.PhoneticType, dict.YinBiaoOrKataType:
		return "[" + strings.TrimSpace(string(d.Data)) + "]"
	case dict.ResourceFileListType:
		return renderResourceList(string(d.Data))
	case dict.WavType:
		return "(an embedded .wav file)"
	case dict.PictureType:
		return "(an embedded picture file)"
	default:
		if d.Type >= 'a' && d.Type <= 'z' {
			return string(d.Data)
		}
		return ""
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func renderResourceList(s string) string {
	parts := strings.Fields(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		kind, name, ok := strings.Cut(p, ":")
		if !ok {
			out = append(out, p)
			continue
		}
		out = append(out, "("+resourceLabel(kind, name)+": "+name+")")
	}
	return strings.Join(out, " ")
}
