package photos

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/photovault/cmd/website/internal/flash"
	"github.com/adampresley/photovault/pkg/albums"
	"github.com/adampresley/photovault/pkg/services"
	"github.com/adampresley/photovault/pkg/store"
)

type PhotoHandlers interface {
	ServePhoto(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	DeleteAction(w http.ResponseWriter, r *http.Request)
}

type PhotoControllerConfig struct {
	Flasher      flash.Flasher
	PhotoService services.PhotoServicer
}

type PhotoController struct {
	flasher      flash.Flasher
	photoService services.PhotoServicer
}

func NewPhotoController(config PhotoControllerConfig) PhotoController {
	return PhotoController{
		flasher:      config.Flasher,
		photoService: config.PhotoService,
	}
}

/*
GET /photo/{key...}
*/
func (c PhotoController) ServePhoto(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		object store.Object
	)

	key := r.PathValue("key")

	if object, err = c.photoService.Get(r.Context(), key); err != nil {
		slog.Error("error getting photo from S3", "error", err, "key", key)
		httphelpers.WriteText(w, http.StatusNotFound, "Error: "+store.Message(err))
		return
	}

	defer object.Body.Close()

	writeObjectHeaders(w, key, object)

	if _, err = io.Copy(w, object.Body); err != nil {
		slog.Error("error streaming photo", "error", err, "key", key)
	}
}

/*
GET /download/{key...}
*/
func (c PhotoController) Download(w http.ResponseWriter, r *http.Request) {
	var (
		err    error
		object store.Object
	)

	key := r.PathValue("key")

	if object, err = c.photoService.Get(r.Context(), key); err != nil {
		slog.Error("error getting photo for download", "error", err, "key", key)
		c.flasher.Add(w, r, flash.ErrorMessage("Download failed: "+store.Message(err)))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	defer object.Body.Close()

	writeObjectHeaders(w, key, object)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": albums.BareFilename(key),
	}))

	if _, err = io.Copy(w, object.Body); err != nil {
		slog.Error("error streaming download", "error", err, "key", key)
	}
}

/*
POST /delete/{key...}
*/
func (c PhotoController) DeleteAction(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	albumID, err := c.photoService.Delete(r.Context(), key)

	if err != nil {
		slog.Error("error deleting photo", "error", err, "key", key)
		c.flasher.Add(w, r, flash.ErrorMessage("Delete failed: "+store.Message(err)))
	} else {
		slog.Info("deleted photo", "key", key, "albumID", albumID)
		c.flasher.Add(w, r, flash.SuccessMessage(fmt.Sprintf("'%s' deleted.", albums.BareFilename(key))))
	}

	http.Redirect(w, r, albums.AlbumURL(albumID), http.StatusFound)
}

func writeObjectHeaders(w http.ResponseWriter, key string, object store.Object) {
	w.Header().Set("Content-Type", albums.ContentTypeFor(object.ContentType, key))

	if object.Size > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", object.Size))
	}
}
