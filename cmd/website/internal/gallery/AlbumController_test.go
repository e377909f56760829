package gallery

import (
	"bytes"
	"fmt"
	"mime/multipart"
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

type testFile struct {
	name string
	body string
}

func newTestController(memory *storetest.MemoryStore, sessions *flash.MemorySessions) AlbumController {
	return NewAlbumController(AlbumControllerConfig{
		AlbumService: services.NewAlbumService(services.AlbumServiceConfig{Store: memory}),
		Bucket:       "photos",
		Flasher:      flash.NewFlasher(flash.FlasherConfig{Sessions: sessions}),
		PhotoService: services.NewPhotoService(services.PhotoServiceConfig{Store: memory}),
	})
}

func newUploadRequest(t *testing.T, albumID string, files ...testFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.name)
		require.NoError(t, err)

		_, err = part.Write([]byte(file.body))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, albums.UploadURL(albumID), body)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	r.SetPathValue("id", albumID)

	return r
}

func popFlashes(sessions *flash.MemorySessions) []flash.Message {
	f := flash.NewFlasher(flash.FlasherConfig{Sessions: sessions})
	return f.Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestBuildViewAlbum(t *testing.T) {
	memory := storetest.NewMemoryStore().Seed("vacation-2024/beach.jpg", "vacation-2024/sunset.jpg", "family/pic.png")
	c := newTestController(memory, flash.NewMemorySessions())

	r := httptest.NewRequest(http.MethodGet, "/album/vacation-2024", nil)
	viewData := c.buildViewAlbum(httptest.NewRecorder(), r, "vacation-2024")

	require.Len(t, viewData.Photos, 2)
	assert.Equal(t, "beach.jpg", viewData.Photos[0].Filename)
	assert.Equal(t, "sunset.jpg", viewData.Photos[1].Filename)
	assert.Equal(t, "vacation-2024", viewData.AlbumName)
	assert.Equal(t, "/upload/vacation-2024", viewData.UploadURL)
}

func TestBuildViewAlbumUncategorized(t *testing.T) {
	memory := storetest.NewMemoryStore().Seed("stray-photo.jpg", "vacation/beach.jpg")
	c := newTestController(memory, flash.NewMemorySessions())

	r := httptest.NewRequest(http.MethodGet, "/album/__uncategorized__", nil)
	viewData := c.buildViewAlbum(httptest.NewRecorder(), r, albums.Uncategorized)

	require.Len(t, viewData.Photos, 1)
	assert.Equal(t, "stray-photo.jpg", viewData.Photos[0].Filename)
	assert.Equal(t, "Uncategorized", viewData.AlbumName)
}

func TestBuildViewAlbumStoreFailure(t *testing.T) {
	memory := storetest.NewMemoryStore()
	memory.FailList = fmt.Errorf("expired token")
	c := newTestController(memory, flash.NewMemorySessions())

	r := httptest.NewRequest(http.MethodGet, "/album/a", nil)
	viewData := c.buildViewAlbum(httptest.NewRecorder(), r, "a")

	assert.Empty(t, viewData.Photos)
	assert.True(t, viewData.IsWarning)
	assert.Contains(t, viewData.Message, "expired token")
}

func TestUploadActionRedirectsToAlbum(t *testing.T) {
	memory := storetest.NewMemoryStore()
	sessions := flash.NewMemorySessions()
	c := newTestController(memory, sessions)

	w := httptest.NewRecorder()
	c.UploadAction(w, newUploadRequest(t, "vacation-2024", testFile{name: "beach.jpg", body: "fake image data"}))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/album/vacation-2024", w.Header().Get("Location"))
	assert.Equal(t, []string{"vacation-2024/beach.jpg"}, memory.Keys())

	messages := popFlashes(sessions)
	require.Len(t, messages, 1)
	assert.Equal(t, flash.SuccessMessage("Uploaded 1 photo!"), messages[0])
}

func TestUploadActionUncategorizedHasNoPrefix(t *testing.T) {
	memory := storetest.NewMemoryStore()
	c := newTestController(memory, flash.NewMemorySessions())

	w := httptest.NewRecorder()
	c.UploadAction(w, newUploadRequest(t, albums.Uncategorized, testFile{name: "random.jpg", body: "data"}))

	assert.Equal(t, "/album/__uncategorized__", w.Header().Get("Location"))
	assert.Equal(t, []string{"random.jpg"}, memory.Keys())
}

func TestUploadActionRejectsNonImages(t *testing.T) {
	memory := storetest.NewMemoryStore()
	sessions := flash.NewMemorySessions()
	c := newTestController(memory, sessions)

	w := httptest.NewRecorder()
	c.UploadAction(w, newUploadRequest(t, "vacation",
		testFile{name: "virus.exe", body: "not an image"},
		testFile{name: "a.png", body: "1"},
		testFile{name: "b.gif", body: "2"},
	))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.ElementsMatch(t, []string{"vacation/a.png", "vacation/b.gif"}, memory.Keys())

	messages := popFlashes(sessions)
	require.Len(t, messages, 2)
	assert.Equal(t, flash.WarningMessage("'virus.exe' is not a supported format."), messages[0])
	assert.Equal(t, flash.SuccessMessage("Uploaded 2 photos!"), messages[1])
}

func TestUploadActionWithoutFiles(t *testing.T) {
	memory := storetest.NewMemoryStore()
	sessions := flash.NewMemorySessions()
	c := newTestController(memory, sessions)

	w := httptest.NewRecorder()
	c.UploadAction(w, newUploadRequest(t, "vacation"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/album/vacation", w.Header().Get("Location"))
	assert.Empty(t, memory.Keys())
	assert.Equal(t, []flash.Message{flash.ErrorMessage("No files selected.")}, popFlashes(sessions))
}
