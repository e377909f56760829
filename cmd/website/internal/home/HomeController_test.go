package home

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adampresley/photovault/cmd/website/internal/flash"
	"github.com/adampresley/photovault/pkg/albums"
	"github.com/adampresley/photovault/pkg/services"
	"github.com/adampresley/photovault/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(memory *storetest.MemoryStore, sessions *flash.MemorySessions) HomeController {
	return NewHomeController(HomeControllerConfig{
		AlbumService: services.NewAlbumService(services.AlbumServiceConfig{Store: memory}),
		Bucket:       "photos",
		Flasher:      flash.NewFlasher(flash.FlasherConfig{Sessions: sessions}),
	})
}

func TestBuildAlbumList(t *testing.T) {
	memory := storetest.NewMemoryStore().Seed("vacation-2024/beach.jpg", "vacation-2024/sunset.jpg", "family/christmas.jpg", "random-photo.jpg")
	c := newTestController(memory, flash.NewMemorySessions())

	viewData := c.buildAlbumList(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, viewData.Albums, 3)
	assert.Equal(t, "family", viewData.Albums[0].DisplayName)
	assert.Equal(t, "vacation-2024", viewData.Albums[1].DisplayName)
	assert.Equal(t, "Uncategorized", viewData.Albums[2].DisplayName)
	assert.Equal(t, "/album/"+albums.Uncategorized, viewData.Albums[2].URL)
	assert.Equal(t, "photos", viewData.Bucket)
	assert.False(t, viewData.IsWarning)
}

func TestBuildAlbumListStoreFailureShowsWarning(t *testing.T) {
	memory := storetest.NewMemoryStore()
	memory.FailList = fmt.Errorf("Unable to locate credentials")
	c := newTestController(memory, flash.NewMemorySessions())

	viewData := c.buildAlbumList(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, viewData.Albums)
	assert.True(t, viewData.IsWarning)
	assert.Contains(t, viewData.Message, "Unable to locate credentials")
}

func TestBuildAlbumListShowsFlashes(t *testing.T) {
	sessions := flash.NewMemorySessions()
	c := newTestController(storetest.NewMemoryStore(), sessions)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	flash.NewFlasher(flash.FlasherConfig{Sessions: sessions}).Add(w, r, flash.ErrorMessage("Download failed: gone"))

	viewData := c.buildAlbumList(w, r)

	require.Len(t, viewData.Flashes, 1)
	assert.Equal(t, "Download failed: gone", viewData.Flashes[0].Text)
}
