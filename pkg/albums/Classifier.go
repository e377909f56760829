package albums

import (
	"strings"

	"github.com/adampresley/adamgokit/slices"
)

const (
	// Uncategorized is the album ID for images stored at the root of the bucket.
	Uncategorized     = "__uncategorized__"
	UncategorizedName = "Uncategorized"
)

var (
	AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp", "bmp", "tiff", "svg"}
)

/*
IsImage reports whether a key names a displayable image. Only the text after
the last dot is considered, compared case-insensitively against the allowed
extensions. Keys without a dot are never images.
*/
func IsImage(key string) bool {
	ext, ok := extension(key)
	if !ok {
		return false
	}

	return slices.IsInSlice(ext, AllowedExtensions)
}

/*
AllowedFile applies the image rule to a client supplied upload filename.
*/
func AllowedFile(filename string) bool {
	return filename != "" && IsImage(filename)
}

func extension(name string) (string, bool) {
	index := strings.LastIndex(name, ".")
	if index < 0 {
		return "", false
	}

	return strings.ToLower(name[index+1:]), true
}
