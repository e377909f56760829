package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/photovault/cmd/website/internal/flash"
	"github.com/adampresley/photovault/cmd/website/internal/viewmodels"
	"github.com/adampresley/photovault/pkg/services"
	"github.com/adampresley/photovault/pkg/store"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	AlbumService services.AlbumServicer
	Bucket       string
	Flasher      flash.Flasher
	Renderer     rendering.TemplateRenderer
}

type HomeController struct {
	albumService services.AlbumServicer
	bucket       string
	flasher      flash.Flasher
	renderer     rendering.TemplateRenderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		albumService: config.AlbumService,
		bucket:       config.Bucket,
		flasher:      config.Flasher,
		renderer:     config.Renderer,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	pageName := "pages/index"

	viewData := c.buildAlbumList(w, r)
	c.renderer.Render(pageName, viewData, w)
}

func (c HomeController) buildAlbumList(w http.ResponseWriter, r *http.Request) viewmodels.AlbumList {
	viewData := viewmodels.AlbumList{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			Flashes:            c.flasher.Pop(w, r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		Bucket: c.bucket,
		Albums: []viewmodels.AlbumCard{},
	}

	list, err := c.albumService.GetAlbums(r.Context())

	if err != nil {
		slog.Error("error getting album list", "error", err, "bucket", c.bucket)
		viewData.IsWarning = true
		viewData.Message = store.Message(err)
	}

	viewData.Albums = viewmodels.NewAlbumCards(list)
	return viewData
}
