package albums_test

import (
	"testing"

	"github.com/adampresley/photovault/pkg/albums"
	"github.com/stretchr/testify/assert"
)

func TestOwnerAlbumOf(t *testing.T) {
	assert.Equal(t, "family", albums.OwnerAlbumOf("family/pic.png"))
	assert.Equal(t, "trip", albums.OwnerAlbumOf("trip/day1/a.png"))
	assert.Equal(t, albums.Uncategorized, albums.OwnerAlbumOf("loose.gif"))
}

func TestBareFilename(t *testing.T) {
	assert.Equal(t, "pic.png", albums.BareFilename("family/pic.png"))
	assert.Equal(t, "a.png", albums.BareFilename("trip/day1/a.png"))
	assert.Equal(t, "loose.gif", albums.BareFilename("loose.gif"))
}

func TestURLsEscapeSegments(t *testing.T) {
	assert.Equal(t, "/photo/my%20trip/a%231.png", albums.PhotoURL("my trip/a#1.png"))
	assert.Equal(t, "/album/__uncategorized__", albums.AlbumURL(albums.Uncategorized))
	assert.Equal(t, "/download/a/b.png", albums.DownloadURL("a/b.png"))
	assert.Equal(t, "/delete/a/b.png", albums.DeleteURL("a/b.png"))
	assert.Equal(t, "/upload/a", albums.UploadURL("a"))
}
