package albums

import (
	"fmt"
	"mime"
	"path/filepath"
)

const (
	FallbackContentType = "image/jpeg"
)

var (
	ErrUnsupportedFormat = fmt.Errorf("unsupported image format")
)

/*
BuildUploadKey sanitizes a client filename and returns the key it should be
stored under in the given album. Files in the Uncategorized album are stored
at the root of the bucket. Names that are empty or that do not carry an
allowed image extension, before or after sanitizing, are rejected with
ErrUnsupportedFormat.
*/
func BuildUploadKey(albumID, rawFilename string) (string, error) {
	if !AllowedFile(rawFilename) {
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, rawFilename)
	}

	filename := SecureFilename(rawFilename)

	if !AllowedFile(filename) {
		return "", fmt.Errorf("%w: '%s' has no usable name after sanitizing", ErrUnsupportedFormat, rawFilename)
	}

	if albumID == Uncategorized {
		return filename, nil
	}

	return albumID + "/" + filename, nil
}

/*
ContentTypeFor picks the content type stored with an upload: the one the
client declared, then a guess from the file extension, then image/jpeg.
*/
func ContentTypeFor(declared, filename string) string {
	if declared != "" {
		return declared
	}

	if guessed := mime.TypeByExtension(filepath.Ext(filename)); guessed != "" {
		return guessed
	}

	return FallbackContentType
}
