package stardict

import "strings"

// resourceLabel names a resource-list item for the terminal. The list
// prefix wins; the file extension is the fallback.
func resourceLabel(kind, name string) string {
	switch kind {
	case "img":
		return "image"
	case "snd":
		return "sound"
	case "vdo":
		return "video"
	}
	switch {
	case isImageFile(name):
		return "image"
	case isSoundFile(name):
		return "sound"
	default:
		return "attachment"
	}
}

func isImageFile(name string) bool {
	s := simplifyName(name)
	return hasAnySuffix(s, ".jpg", ".jpeg", ".jpe", ".png", ".gif", ".bmp", ".tif", ".tiff", ".ico", ".webp", ".svg")
}

func isSoundFile(name string) bool {
	s := simplifyName(name)
	return hasAnySuffix(s, ".wav", ".au", ".ogg", ".oga", ".mp3", ".m4a", ".aac", ".flac", ".opus", ".spx")
}

func simplifyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
