package catalog

import (
	"errors"

	"github.com/ReiKama414/mysterious-art-marketplace/models"
)

// ErrNotFound is returned by lookups when no record has the given id.
var ErrNotFound = errors.New("catalog: not found")

// Catalog is the static, read-only set of artworks and artists. It is built
// once at startup and never mutated afterwards; accessors hand out copies so
// callers cannot reach the backing slices.
type Catalog struct {
	artworks []models.Artwork
	artists  []models.Artist

	artworkByID map[string]int
	artistByID  map[string]int
	byArtistID  map[string][]int // artist id -> artwork indexes, catalog order
}

// New copies the input records and builds the lookup indexes. Artworks are
// joined to artists by ArtistID, so a misspelled display name can no longer
// silently empty an artist's profile.
func New(artworks []models.Artwork, artists []models.Artist) *Catalog {
	c := &Catalog{
		artworks:    make([]models.Artwork, len(artworks)),
		artists:     make([]models.Artist, len(artists)),
		artworkByID: make(map[string]int, len(artworks)),
		artistByID:  make(map[string]int, len(artists)),
		byArtistID:  make(map[string][]int),
	}
	copy(c.artworks, artworks)
	copy(c.artists, artists)

	for i, a := range c.artworks {
		c.artworkByID[a.ID] = i
		c.byArtistID[a.ArtistID] = append(c.byArtistID[a.ArtistID], i)
	}
	for i, a := range c.artists {
		c.artistByID[a.ID] = i
	}
	return c
}

// Artworks returns the full catalog in catalog order.
func (c *Catalog) Artworks() []models.Artwork {
	out := make([]models.Artwork, len(c.artworks))
	copy(out, c.artworks)
	return out
}

func (c *Catalog) Artists() []models.Artist {
	out := make([]models.Artist, len(c.artists))
	copy(out, c.artists)
	return out
}

// Featured returns the artworks flagged for the home page, catalog order.
func (c *Catalog) Featured() []models.Artwork {
	var out []models.Artwork
	for _, a := range c.artworks {
		if a.IsFeatured {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) ArtworkByID(id string) (models.Artwork, error) {
	i, ok := c.artworkByID[id]
	if !ok {
		return models.Artwork{}, ErrNotFound
	}
	return c.artworks[i], nil
}

func (c *Catalog) ArtistByID(id string) (models.Artist, error) {
	i, ok := c.artistByID[id]
	if !ok {
		return models.Artist{}, ErrNotFound
	}
	return c.artists[i], nil
}

// ArtworksByArtist returns the artist's artworks in catalog order. An artist
// with no artworks yields an empty slice, not an error.
func (c *Catalog) ArtworksByArtist(artistID string) ([]models.Artwork, error) {
	if _, ok := c.artistByID[artistID]; !ok {
		return nil, ErrNotFound
	}
	idxs := c.byArtistID[artistID]
	out := make([]models.Artwork, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.artworks[i])
	}
	return out, nil
}
