package main

import (
	"context"
	"embed"
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/photovault/cmd/website/internal/bucket"
	"github.com/adampresley/photovault/cmd/website/internal/configuration"
	"github.com/adampresley/photovault/cmd/website/internal/flash"
	"github.com/adampresley/photovault/cmd/website/internal/gallery"
	"github.com/adampresley/photovault/cmd/website/internal/home"
	"github.com/adampresley/photovault/cmd/website/internal/photos"
	"github.com/adampresley/photovault/pkg/services"
	"github.com/adampresley/photovault/pkg/store"
)

var (
	Version string = "development"
	appName string = "photovault"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	albumService  services.AlbumServicer
	bucketChecker bucket.BucketEnsurer
	flasher       flash.Flasher
	objectStore   store.ObjectStore
	photoService  services.PhotoServicer
	renderer      rendering.TemplateRenderer

	/* Controllers */
	albumController gallery.AlbumHandlers
	homeController  home.HomeHandlers
	photoController photos.PhotoHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("awsEndpointUrl", config.AwsEndpointUrl),
		slog.String("awsRegion", config.AwsRegion),
		slog.String("awsBucket", config.AwsBucket),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	gob.Register(&flash.Messages{})

	cookieStore := sessions.NewCookieStore(config.SessionSecret)
	sessionService := sessions.NewSessionWrapper[*flash.Messages](cookieStore, "photovault", "flash")

	flasher = flash.NewFlasher(flash.FlasherConfig{
		Sessions: sessionService,
	})

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	adminClient, err := s3.NewClient(awsConfig)

	if err != nil {
		panic(err)
	}

	bucketChecker = bucket.NewBucketChecker(bucket.BucketCheckerConfig{
		AwsBucket: config.AwsBucket,
		AwsRegion: config.AwsRegion,
		S3Client:  adminClient,
	})

	if err = bucketChecker.EnsureBucketExists(); err != nil {
		slog.Warn("could not verify photo bucket. pages will show the store error until it is reachable", "bucket", config.AwsBucket, "error", err)
	}

	s3Client, err := store.NewClient(shutdownCtx, store.ClientConfig{
		Region:          config.AwsRegion,
		Endpoint:        config.AwsEndpointUrl,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	})

	if err != nil {
		panic(err)
	}

	if objectStore, err = store.NewS3Store(store.S3StoreConfig{Bucket: config.AwsBucket, Client: s3Client}); err != nil {
		panic(err)
	}

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	albumService = services.NewAlbumService(services.AlbumServiceConfig{
		Store: objectStore,
	})

	photoService = services.NewPhotoService(services.PhotoServiceConfig{
		MaxUploadWorkers: config.MaxUploadWorkers,
		Store:            objectStore,
	})

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		AlbumService: albumService,
		Bucket:       config.AwsBucket,
		Flasher:      flasher,
		Renderer:     renderer,
	})

	albumController = gallery.NewAlbumController(gallery.AlbumControllerConfig{
		AlbumService: albumService,
		Bucket:       config.AwsBucket,
		Flasher:      flasher,
		PhotoService: photoService,
		Renderer:     renderer,
	})

	photoController = photos.NewPhotoController(photos.PhotoControllerConfig{
		Flasher:      flasher,
		PhotoService: photoService,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	requestLogger := newRequestLoggerMiddleware(
		[]string{
			"/static",
			"/heartbeat",
		},
	)

	logged := []mux.MiddlewareFunc{requestLogger}

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /{$}", HandlerFunc: homeController.HomePage, Middlewares: logged},
		{Path: "GET /album/{id...}", HandlerFunc: albumController.ViewAlbumPage, Middlewares: logged},
		{Path: "POST /upload/{id...}", HandlerFunc: albumController.UploadAction, Middlewares: logged},
		{Path: "GET /photo/{key...}", HandlerFunc: photoController.ServePhoto, Middlewares: logged},
		{Path: "GET /download/{key...}", HandlerFunc: photoController.Download, Middlewares: logged},
		{Path: "POST /delete/{key...}", HandlerFunc: photoController.DeleteAction, Middlewares: logged},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}
