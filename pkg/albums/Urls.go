package albums

import (
	"net/url"
	"strings"
)

func PhotoURL(key string) string {
	return "/photo/" + escapePath(key)
}

func DownloadURL(key string) string {
	return "/download/" + escapePath(key)
}

func DeleteURL(key string) string {
	return "/delete/" + escapePath(key)
}

func AlbumURL(albumID string) string {
	return "/album/" + escapePath(albumID)
}

func UploadURL(albumID string) string {
	return "/upload/" + escapePath(albumID)
}

/*
escapePath escapes each segment of a key while keeping the slashes between
them, so keys with nested folders still map onto the wildcard routes.
*/
func escapePath(p string) string {
	segments := strings.Split(p, "/")

	for index, segment := range segments {
		segments[index] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
