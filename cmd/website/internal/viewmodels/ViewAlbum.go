package viewmodels

import (
	"github.com/adampresley/photovault/pkg/albums"
	"github.com/adampresley/photovault/pkg/models"
	"github.com/dustin/go-humanize"
)

type ViewAlbum struct {
	BaseViewModel

	Bucket    string
	AlbumID   string
	AlbumName string
	UploadURL string
	Photos    []PhotoCard
}

type PhotoCard struct {
	models.Photo

	DownloadURL string
	DeleteURL   string
	SizeLabel   string
}

func NewPhotoCards(photos []models.Photo) []PhotoCard {
	result := make([]PhotoCard, 0, len(photos))

	for _, photo := range photos {
		result = append(result, PhotoCard{
			Photo:       photo,
			DownloadURL: albums.DownloadURL(photo.Key),
			DeleteURL:   albums.DeleteURL(photo.Key),
			SizeLabel:   humanize.Bytes(uint64(max(photo.Size, 0))),
		})
	}

	return result
}
