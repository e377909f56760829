package albums

import (
	"sort"
	"strings"

	"github.com/adampresley/photovault/pkg/models"
)

const (
	DateFormat = "Jan 02, 2006"
)

type albumGroup struct {
	id     string
	photos []models.Photo
}

/*
DeriveAlbums groups a flat bucket listing into albums by the first segment
of each image key. Root level images go to the Uncategorized album. Within
an album the first image encountered becomes the cover. Albums are sorted
case-insensitively by ID with Uncategorized always last; equal IDs keep the
order they first appeared in.
*/
func DeriveAlbums(entries []models.StoreEntry) []models.Album {
	groups := groupByAlbum(entries)
	result := make([]models.Album, 0, len(groups))

	for _, group := range groups {
		album := models.Album{
			ID:          group.id,
			DisplayName: DisplayNameOf(group.id),
			PhotoCount:  len(group.photos),
		}

		if len(group.photos) > 0 {
			album.CoverURL = group.photos[0].URL
		}

		result = append(result, album)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return albumLess(result[i].ID, result[j].ID)
	})

	return result
}

func groupByAlbum(entries []models.StoreEntry) []*albumGroup {
	groups := []*albumGroup{}
	index := map[string]*albumGroup{}

	for _, entry := range entries {
		if !IsImage(entry.Key) {
			continue
		}

		albumID, filename := splitKey(entry.Key)

		group, ok := index[albumID]
		if !ok {
			group = &albumGroup{id: albumID}
			index[albumID] = group
			groups = append(groups, group)
		}

		group.photos = append(group.photos, newPhoto(entry, filename))
	}

	return groups
}

/*
splitKey returns the owning album and the key relative to that album.
*/
func splitKey(key string) (string, string) {
	parts := strings.Split(key, "/")

	if len(parts) == 1 {
		return Uncategorized, parts[0]
	}

	return parts[0], strings.Join(parts[1:], "/")
}

func albumLess(a, b string) bool {
	aUncategorized := a == Uncategorized
	bUncategorized := b == Uncategorized

	if aUncategorized != bUncategorized {
		return bUncategorized
	}

	return strings.ToLower(a) < strings.ToLower(b)
}

func newPhoto(entry models.StoreEntry, filename string) models.Photo {
	return models.Photo{
		Key:          entry.Key,
		Filename:     filename,
		Size:         entry.Size,
		LastModified: entry.LastModified.Format(DateFormat),
		URL:          PhotoURL(entry.Key),
	}
}
