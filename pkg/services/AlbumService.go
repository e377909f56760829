package services

import (
	"context"
	"fmt"

	"github.com/adampresley/photovault/pkg/albums"
	"github.com/adampresley/photovault/pkg/models"
	"github.com/adampresley/photovault/pkg/store"
)

type AlbumServicer interface {
	GetAlbums(ctx context.Context) ([]models.Album, error)
	GetAlbumPhotos(ctx context.Context, albumID string) ([]models.Photo, error)
}

type AlbumServiceConfig struct {
	Store store.ObjectStore
}

type AlbumService struct {
	store store.ObjectStore
}

func NewAlbumService(config AlbumServiceConfig) AlbumService {
	return AlbumService{
		store: config.Store,
	}
}

/*
GetAlbums lists the bucket and derives the album summaries from it. When
the listing fails an empty slice is returned along with the error, so
callers can render the page and show the error as a warning.
*/
func (s AlbumService) GetAlbums(ctx context.Context) ([]models.Album, error) {
	var (
		err     error
		entries []models.StoreEntry
	)

	if entries, err = s.store.ListAll(ctx); err != nil {
		return []models.Album{}, fmt.Errorf("error listing albums: %w", err)
	}

	return albums.DeriveAlbums(entries), nil
}

/*
GetAlbumPhotos lists the bucket and returns the photos in one album. Like
GetAlbums, a failed listing yields an empty slice and the error.
*/
func (s AlbumService) GetAlbumPhotos(ctx context.Context, albumID string) ([]models.Photo, error) {
	var (
		err     error
		entries []models.StoreEntry
	)

	if entries, err = s.store.ListAll(ctx); err != nil {
		return []models.Photo{}, fmt.Errorf("error listing photos for album '%s': %w", albumID, err)
	}

	return albums.ListAlbumPhotos(entries, albumID), nil
}
