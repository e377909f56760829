package albums

import "strings"

/*
OwnerAlbumOf returns the album a key belongs to. Keys without a slash live
in the Uncategorized album.
*/
func OwnerAlbumOf(key string) string {
	index := strings.Index(key, "/")
	if index < 0 {
		return Uncategorized
	}

	return key[:index]
}

/*
BareFilename returns the final path segment of a key, used as the save-as
name for downloads.
*/
func BareFilename(key string) string {
	return key[strings.LastIndex(key, "/")+1:]
}

func DisplayNameOf(albumID string) string {
	if albumID == Uncategorized {
		return UncategorizedName
	}

	return albumID
}
