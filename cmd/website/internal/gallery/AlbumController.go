package gallery

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/photovault/cmd/website/internal/flash"
	"github.com/adampresley/photovault/cmd/website/internal/viewmodels"
	"github.com/adampresley/photovault/pkg/albums"
	"github.com/adampresley/photovault/pkg/services"
	"github.com/adampresley/photovault/pkg/store"
)

const (
	maxUploadMemory = 32 << 20
)

type AlbumHandlers interface {
	ViewAlbumPage(w http.ResponseWriter, r *http.Request)
	UploadAction(w http.ResponseWriter, r *http.Request)
}

type AlbumControllerConfig struct {
	AlbumService services.AlbumServicer
	Bucket       string
	Flasher      flash.Flasher
	PhotoService services.PhotoServicer
	Renderer     rendering.TemplateRenderer
}

type AlbumController struct {
	albumService services.AlbumServicer
	bucket       string
	flasher      flash.Flasher
	photoService services.PhotoServicer
	renderer     rendering.TemplateRenderer
}

func NewAlbumController(config AlbumControllerConfig) AlbumController {
	return AlbumController{
		albumService: config.AlbumService,
		bucket:       config.Bucket,
		flasher:      config.Flasher,
		photoService: config.PhotoService,
		renderer:     config.Renderer,
	}
}

/*
GET /album/{id...}
*/
func (c AlbumController) ViewAlbumPage(w http.ResponseWriter, r *http.Request) {
	viewData := c.buildViewAlbum(w, r, r.PathValue("id"))
	c.renderer.Render("pages/album", viewData, w)
}

func (c AlbumController) buildViewAlbum(w http.ResponseWriter, r *http.Request, albumID string) viewmodels.ViewAlbum {
	viewData := viewmodels.ViewAlbum{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:  httphelpers.IsHtmx(r),
			Flashes: c.flasher.Pop(w, r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/album.js"},
			},
		},
		Bucket:    c.bucket,
		AlbumID:   albumID,
		AlbumName: albums.DisplayNameOf(albumID),
		UploadURL: albums.UploadURL(albumID),
		Photos:    []viewmodels.PhotoCard{},
	}

	photos, err := c.albumService.GetAlbumPhotos(r.Context(), albumID)

	if err != nil {
		slog.Error("error getting album photos", "error", err, "albumID", albumID)
		viewData.IsWarning = true
		viewData.Message = store.Message(err)
	}

	viewData.Photos = viewmodels.NewPhotoCards(photos)
	return viewData
}

/*
POST /upload/{id...}
*/
func (c AlbumController) UploadAction(w http.ResponseWriter, r *http.Request) {
	albumID := r.PathValue("id")
	redirectTo := albums.AlbumURL(albumID)

	headers, err := uploadedFiles(r)

	if err != nil {
		slog.Error("error reading upload form", "error", err, "albumID", albumID)
		c.flasher.Add(w, r, flash.ErrorMessage("No files selected."))
		http.Redirect(w, r, redirectTo, http.StatusFound)
		return
	}

	files := make([]services.UploadFile, 0, len(headers))

	for _, header := range headers {
		files = append(files, services.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Open: func() (io.ReadCloser, error) {
				return header.Open()
			},
		})
	}

	result := c.photoService.Upload(r.Context(), albumID, files)
	messages := []flash.Message{}

	for _, text := range result.Errors {
		messages = append(messages, flash.ErrorMessage(text))
	}

	for _, text := range result.Warnings {
		messages = append(messages, flash.WarningMessage(text))
	}

	if result.Uploaded > 0 {
		messages = append(messages, flash.SuccessMessage(uploadedMessage(result.Uploaded)))
	}

	slog.Info("upload finished", "albumID", albumID, "files", len(files), "uploaded", result.Uploaded)

	c.flasher.Add(w, r, messages...)
	http.Redirect(w, r, redirectTo, http.StatusFound)
}

var (
	errNoFiles = errors.New("no files in upload form")
)

func uploadedFiles(r *http.Request) ([]*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, fmt.Errorf("error parsing multipart form: %w", err)
	}

	headers := r.MultipartForm.File["files"]

	if len(headers) == 0 {
		return nil, errNoFiles
	}

	return headers, nil
}

func uploadedMessage(count int) string {
	if count == 1 {
		return "Uploaded 1 photo!"
	}

	return fmt.Sprintf("Uploaded %d photos!", count)
}
