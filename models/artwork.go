package models

// Artwork is one catalog record. The catalog is seeded once at startup and
// never mutated afterwards; admin "edits" are simulated and leave it alone.
type Artwork struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"` // display name, kept for the wire format
	ArtistID    string   `json:"artistId"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Style       string   `json:"style"`
	Colors      []string `json:"colors"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Dimensions  string   `json:"dimensions"`
	Medium      string   `json:"medium"`
	Year        int      `json:"year"`
	IsAvailable bool     `json:"isAvailable"`
	IsFeatured  bool     `json:"isFeatured"`
}

type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	Avatar     string   `json:"avatar"`
	Artworks   []string `json:"artworks"` // owned artwork ids
	IsVerified bool     `json:"isVerified"`
	JoinDate   string   `json:"joinDate"`
}
