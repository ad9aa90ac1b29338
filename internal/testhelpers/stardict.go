package testhelpers

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sagerenn/lexi/internal/dict"
)

// WriteStarDict writes an uncompressed StarDict dictionary named name into
// dir and returns the .ifo path. Articles are stored as plain 'm' text and
// entries must already be in index order.
func WriteStarDict(t *testing.T, dir, name string, entries []dict.Entry) string {
	t.Helper()
	var idx, data bytes.Buffer
	for _, e := range entries {
		idx.WriteString(e.Word)
		idx.WriteByte(0)
		var field [4]byte
		binary.BigEndian.PutUint32(field[:], uint32(data.Len()))
		idx.Write(field[:])
		binary.BigEndian.PutUint32(field[:], uint32(len(e.Definition)))
		idx.Write(field[:])
		data.WriteString(e.Definition)
	}
	ifo := fmt.Sprintf("StarDict's dict ifo file\nversion=2.4.2\nwordcount=%d\nidxfilesize=%d\nbookname=%s\nsametypesequence=m\n",
		len(entries), idx.Len(), name)

	base := filepath.Join(dir, name)
	files := map[string][]byte{
		base + ".ifo":  []byte(ifo),
		base + ".idx":  idx.Bytes(),
		base + ".dict": data.Bytes(),
	}
	for path, content := range files {
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return base + ".ifo"
}
