package catalog

import "github.com/ReiKama414/mysterious-art-marketplace/models"

// Seed returns the demo dataset the storefront runs on. It stands in for a
// real backend: every deployment starts from the same records.
func Seed() ([]models.Artwork, []models.Artist) {
	artworks := []models.Artwork{
		{
			ID:          "1",
			Title:       "Ethereal Dreams",
			Artist:      "Luna Martinez",
			ArtistID:    "a1",
			Price:       1200,
			Category:    "Abstract",
			Style:       "Contemporary",
			Colors:      []string{"blue", "purple", "gold"},
			Image:       "https://images.pexels.com/photos/1266808/pexels-photo-1266808.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/1266808/pexels-photo-1266808.jpeg",
				"https://images.pexels.com/photos/1269968/pexels-photo-1269968.jpeg",
			},
			Description: "A mesmerizing abstract piece that captures the essence of dreams through flowing colors and ethereal forms.",
			Dimensions:  "80 x 60 cm",
			Medium:      "Acrylic on canvas",
			Year:        2023,
			IsAvailable: true,
			IsFeatured:  true,
		},
		{
			ID:          "2",
			Title:       "Urban Solitude",
			Artist:      "Kenji Tanaka",
			ArtistID:    "a2",
			Price:       850,
			Category:    "Modern",
			Style:       "Street Art",
			Colors:      []string{"gray", "red", "black"},
			Image:       "https://images.pexels.com/photos/1585325/pexels-photo-1585325.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/1585325/pexels-photo-1585325.jpeg",
			},
			Description: "A striking commentary on modern city life, blending graffiti techniques with fine art sensibilities.",
			Dimensions:  "100 x 70 cm",
			Medium:      "Mixed media on wood panel",
			Year:        2022,
			IsAvailable: true,
			IsFeatured:  true,
		},
		{
			ID:          "3",
			Title:       "Mountain Whispers",
			Artist:      "Elena Rossi",
			ArtistID:    "a3",
			Price:       2100,
			Category:    "Landscape",
			Style:       "Realistic",
			Colors:      []string{"green", "brown", "white"},
			Image:       "https://images.pexels.com/photos/1287145/pexels-photo-1287145.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/1287145/pexels-photo-1287145.jpeg",
				"https://images.pexels.com/photos/1568607/pexels-photo-1568607.jpeg",
			},
			Description: "A breathtaking alpine vista rendered with painstaking attention to light and atmosphere.",
			Dimensions:  "120 x 90 cm",
			Medium:      "Oil on canvas",
			Year:        2023,
			IsAvailable: true,
			IsFeatured:  false,
		},
		{
			ID:          "4",
			Title:       "Tides of Change",
			Artist:      "Luna Martinez",
			ArtistID:    "a1",
			Price:       1650,
			Category:    "Seascape",
			Style:       "Impressionist",
			Colors:      []string{"blue", "teal", "white"},
			Image:       "https://images.pexels.com/photos/1001682/pexels-photo-1001682.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/1001682/pexels-photo-1001682.jpeg",
			},
			Description: "Restless waves painted in loose, luminous strokes that shift with the viewer's distance.",
			Dimensions:  "90 x 60 cm",
			Medium:      "Oil on linen",
			Year:        2021,
			IsAvailable: true,
			IsFeatured:  true,
		},
		{
			ID:          "5",
			Title:       "Forest Cathedral",
			Artist:      "Elena Rossi",
			ArtistID:    "a3",
			Price:       1900,
			Category:    "Nature",
			Style:       "Realistic",
			Colors:      []string{"green", "gold", "brown"},
			Image:       "https://images.pexels.com/photos/15441/pexels-photo-15441.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/15441/pexels-photo-15441.jpeg",
			},
			Description: "Ancient redwoods reach skyward, sunlight filtering through the canopy like stained glass.",
			Dimensions:  "110 x 80 cm",
			Medium:      "Oil on canvas",
			Year:        2020,
			IsAvailable: true,
			IsFeatured:  false,
		},
		{
			ID:          "6",
			Title:       "Neon Reverie",
			Artist:      "Kenji Tanaka",
			ArtistID:    "a2",
			Price:       720,
			Category:    "Modern",
			Style:       "Contemporary",
			Colors:      []string{"pink", "cyan", "black"},
			Image:       "https://images.pexels.com/photos/2693212/pexels-photo-2693212.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/2693212/pexels-photo-2693212.jpeg",
			},
			Description: "Tokyo nights distilled into pure color: neon signs dissolving into rain-slicked streets.",
			Dimensions:  "70 x 50 cm",
			Medium:      "Acrylic and spray paint on canvas",
			Year:        2024,
			IsAvailable: true,
			IsFeatured:  false,
		},
		{
			ID:          "7",
			Title:       "Golden Hour Fields",
			Artist:      "Amara Okafor",
			ArtistID:    "a4",
			Price:       1350,
			Category:    "Landscape",
			Style:       "Impressionist",
			Colors:      []string{"gold", "orange", "green"},
			Image:       "https://images.pexels.com/photos/158827/field-corn-air-frisch-158827.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/158827/field-corn-air-frisch-158827.jpeg",
			},
			Description: "Wheat fields at dusk, captured in thick impasto strokes that hold the day's last warmth.",
			Dimensions:  "100 x 65 cm",
			Medium:      "Oil on canvas",
			Year:        2022,
			IsAvailable: false,
			IsFeatured:  false,
		},
		{
			ID:          "8",
			Title:       "Fragments of Memory",
			Artist:      "Amara Okafor",
			ArtistID:    "a4",
			Price:       2800,
			Category:    "Abstract",
			Style:       "Contemporary",
			Colors:      []string{"red", "black", "white"},
			Image:       "https://images.pexels.com/photos/1145720/pexels-photo-1145720.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/1145720/pexels-photo-1145720.jpeg",
				"https://images.pexels.com/photos/1183992/pexels-photo-1183992.jpeg",
			},
			Description: "Layered collage and paint explore how memories fracture and recombine over time.",
			Dimensions:  "150 x 100 cm",
			Medium:      "Mixed media on canvas",
			Year:        2023,
			IsAvailable: true,
			IsFeatured:  true,
		},
	}

	artists := []models.Artist{
		{
			ID:         "a1",
			Name:       "Luna Martinez",
			Bio:        "Luna explores the boundary between dream and waking life through layered abstraction. Her work has been shown in galleries across Barcelona and Lisbon.",
			Avatar:     "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
			Artworks:   []string{"1", "4"},
			IsVerified: true,
			JoinDate:   "2021-03-15",
		},
		{
			ID:         "a2",
			Name:       "Kenji Tanaka",
			Bio:        "A former street artist from Osaka, Kenji brings the energy of urban walls onto canvas, mixing spray paint with traditional techniques.",
			Avatar:     "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
			Artworks:   []string{"2", "6"},
			IsVerified: true,
			JoinDate:   "2020-11-02",
		},
		{
			ID:         "a3",
			Name:       "Elena Rossi",
			Bio:        "Elena paints the landscapes of her native Dolomites with a realist's patience and a romantic's eye for light.",
			Avatar:     "https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg",
			Artworks:   []string{"3", "5"},
			IsVerified: false,
			JoinDate:   "2022-06-20",
		},
		{
			ID:         "a4",
			Name:       "Amara Okafor",
			Bio:        "Working between Lagos and London, Amara builds dense mixed-media surfaces that carry personal and collective histories.",
			Avatar:     "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
			Artworks:   []string{"7", "8"},
			IsVerified: true,
			JoinDate:   "2021-09-08",
		},
	}

	return artworks, artists
}
