package viewmodels

import (
	"github.com/adampresley/photovault/pkg/albums"
	"github.com/adampresley/photovault/pkg/models"
)

type AlbumList struct {
	BaseViewModel

	Bucket string
	Albums []AlbumCard
}

type AlbumCard struct {
	models.Album

	URL string
}

func NewAlbumCards(list []models.Album) []AlbumCard {
	result := make([]AlbumCard, 0, len(list))

	for _, album := range list {
		result = append(result, AlbumCard{
			Album: album,
			URL:   albums.AlbumURL(album.ID),
		})
	}

	return result
}
