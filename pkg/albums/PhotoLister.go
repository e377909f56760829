package albums

import (
	"strings"

	"github.com/adampresley/photovault/pkg/models"
)

/*
ListAlbumPhotos returns the images belonging to one album in listing order.
For Uncategorized only root level keys match.
*/
func ListAlbumPhotos(entries []models.StoreEntry, albumID string) []models.Photo {
	result := []models.Photo{}

	for _, entry := range entries {
		if !IsImage(entry.Key) {
			continue
		}

		parts := strings.Split(entry.Key, "/")

		if albumID == Uncategorized {
			if len(parts) != 1 {
				continue
			}
		} else if len(parts) == 1 || parts[0] != albumID {
			continue
		}

		result = append(result, newPhoto(entry, parts[len(parts)-1]))
	}

	return result
}
