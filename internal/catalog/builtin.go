package catalog

import "github.com/mmcdole/streamvault/internal/domain"

const sampleVideoBase = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/"

var builtinTitles = []domain.Title{
	{
		ID:          1,
		Name:        "The Dark Knight",
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		Rating:      9.0,
		Year:        2008,
		Genres:      []string{"Action", "Crime", "Drama"},
		Duration:    "2h 32m",
		Category:    "action",
		ImageURL:    "https://images.unsplash.com/photo-1638310101210-3634f9ea9cc2?w=400&h=600&fit=crop",
		VideoURL:    sampleVideoBase + "BigBuckBunny.mp4",
	},
	{
		ID:          2,
		Name:        "Inception",
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		Rating:      8.8,
		Year:        2010,
		Genres:      []string{"Action", "Sci-Fi", "Thriller"},
		Duration:    "2h 28m",
		Category:    "action",
		ImageURL:    "https://images.unsplash.com/photo-1647740356652-413033453c6b?w=400&h=600&fit=crop",
		VideoURL:    sampleVideoBase + "ElephantsDream.mp4",
	},
	{
		ID:          3,
		Name:        "Mad Max: Fury Road",
		Description: "In a post-apocalyptic wasteland, a woman rebels against a tyrannical ruler in search for her homeland with the aid of a group of female prisoners.",
		Rating:      8.1,
		Year:        2015,
		Genres:      []string{"Action", "Adventure", "Sci-Fi"},
		Duration:    "2h 0m",
		Category:    "action",
		ImageURL:    "https://images.unsplash.com/photo-1604552873263-7ebedef6bc73?w=400&h=600&fit=crop",
		VideoURL:    sampleVideoBase + "ForBiggerBlazes.mp4",
	},
	{
		ID:          4,
		Name:        "John Wick",
		Description: "An ex-hit-man comes out of retirement to track down the gangsters that took everything from him.",
		Rating:      7.4,
		Year:        2014,
		Genres:      []string{"Action", "Crime", "Thriller"},
		Duration:    "1h 41m",
		Category:    "action",
		ImageURL:    "https://images.unsplash.com/photo-1638005101665-18d79f49bc07?w=400&h=600&fit=crop",
		VideoURL:    sampleVideoBase + "ForBiggerEscapes.mp4",
	},
	{
		ID:          5,
		Name:        "Mission: Impossible - Fallout",
		Description: "An American agent, under false suspicion of disloyalty, must discover and expose the real spy without the help of his organization.",
		Rating:      7.7,
		Year:        2018,
		Genres:      []string{"Action", "Adventure", "Thriller"},
		Duration:    "2h 27m",
		Category:    "action",
		ImageURL:    "https://images.unsplash.com/photo-1647926760535-42114bac33b9?w=400&h=600&fit=crop",
		VideoURL:    sampleVideoBase + "ForBiggerFun.mp4",
	},
}

var builtinFeatured = domain.Featured{
	Title: domain.Title{
		ID:          domain.FeaturedTitleID,
		Name:        "Stranger Things",
		Description: "When a young boy vanishes, a small town uncovers a mystery involving secret experiments, terrifying supernatural forces, and one strange little girl.",
		Rating:      8.7,
		Year:        2016,
		Genres:      []string{"Sci-Fi", "Horror", "Drama"},
		Duration:    "51m",
		Category:    "trending",
		ImageURL:    "https://images.unsplash.com/photo-1489599735734-79b4169c2a78?w=1200&h=600&fit=crop",
		VideoURL:    sampleVideoBase + "BigBuckBunny.mp4",
	},
	ContentRating: "TV-14",
	Seasons:       "4 Seasons",
}

var builtinAds = []domain.Advertisement{
	{
		ID:               1,
		Brand:            "Google Cast",
		Headline:         "Stream to Any Device",
		Description:      "Cast your favorite shows to your TV with Google Cast",
		ImageURL:         "https://images.unsplash.com/photo-1611532736597-de2d4265fba3?w=800&h=450&fit=crop",
		DurationSeconds:  15,
		SkipAfterSeconds: 5,
	},
	{
		ID:               2,
		Brand:            "Firefox",
		Headline:         "Browse Privately",
		Description:      "Experience the web with Firefox - Fast, Private & Secure",
		ImageURL:         "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800&h=450&fit=crop",
		DurationSeconds:  20,
		SkipAfterSeconds: 5,
	},
	{
		ID:               3,
		Brand:            "Safari",
		Headline:         "Privacy. That's iPhone.",
		Description:      "Safari on iPhone. Privacy included.",
		ImageURL:         "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=800&h=450&fit=crop",
		DurationSeconds:  15,
		SkipAfterSeconds: 5,
	},
	{
		ID:               4,
		Brand:            "iPhone 16",
		Headline:         "Hello, Apple Intelligence",
		Description:      "iPhone 16 Pro. Built for Apple Intelligence.",
		ImageURL:         "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=800&h=450&fit=crop",
		DurationSeconds:  30,
		SkipAfterSeconds: 5,
	},
}

var builtinPlans = []domain.Plan{
	{
		Tier:   domain.TierBasic,
		HasAds: true,
		Features: []string{
			"Watch on 1 device",
			"Good video quality",
			"Ads before content",
			"Limited downloads",
		},
	},
	{
		Tier:   domain.TierPremium,
		HasAds: false,
		Features: []string{
			"Watch on 4 devices",
			"Ultra HD quality",
			"No ads",
			"Unlimited downloads",
			"Exclusive content",
			"Early access to new releases",
		},
	},
}

var builtinOffers = []domain.PlanOffer{
	{
		Name:  "Standard with adverts",
		Price: "$7.99",
		Features: []string{
			"Video and sound quality: Good",
			"Resolution: 1080p (Full HD)",
			"Devices your household can watch at the same time: 2",
			"Adverts: Fewer than you might think",
		},
	},
	{
		Name:  "Standard",
		Price: "$17.99",
		Features: []string{
			"Video and sound quality: Good",
			"Resolution: 1080p (Full HD)",
			"Devices your household can watch at the same time: 2",
			"Adverts: No adverts",
		},
		Popular: true,
	},
	{
		Name:  "Premium",
		Price: "$24.99",
		Features: []string{
			"Video and sound quality: Best",
			"Resolution: 4K (Ultra HD) + HDR",
			"Spatial audio (immersive sound): Included",
			"Devices your household can watch at the same time: 4",
			"Adverts: No adverts",
		},
	},
}

// Builtin returns a copy of the compiled-in catalog tables
func Builtin() domain.CatalogData {
	titles := make([]domain.Title, len(builtinTitles))
	copy(titles, builtinTitles)
	featured := builtinFeatured

	return domain.CatalogData{
		Titles:     titles,
		Featured:   &featured,
		Shelves:    BuildShelves(titles),
		Ads:        append([]domain.Advertisement(nil), builtinAds...),
		Plans:      append([]domain.Plan(nil), builtinPlans...),
		PlanOffers: append([]domain.PlanOffer(nil), builtinOffers...),
	}
}
