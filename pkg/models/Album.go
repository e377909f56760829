package models

/*
Album is a group of images sharing the same top-level key prefix. Images at
the root of the bucket belong to the Uncategorized album.
*/
type Album struct {
	ID          string
	DisplayName string
	CoverURL    string
	PhotoCount  int
}

func (a Album) HasCover() bool {
	return a.CoverURL != ""
}
