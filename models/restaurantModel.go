package models

type SocialMedia struct {
	Whatsapp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

type RestaurantInfo struct {
	Name          string      `json:"name"`
	EnglishName   string      `json:"englishName"`
	Tagline       string      `json:"tagline"`
	Rating        float64     `json:"rating"`
	TotalReviews  int         `json:"totalReviews"`
	PriceRange    string      `json:"priceRange"`
	Phone         string      `json:"phone"`
	BusinessPhone string      `json:"businessPhone"`
	Address       string      `json:"address"`
	Location      string      `json:"location"`
	PlusCode      string      `json:"plusCode"`
	Timings       string      `json:"timings"`
	Services      []string    `json:"services"`
	SocialMedia   SocialMedia `json:"socialMedia"`
	MapEmbedUrl   string      `json:"mapEmbedUrl"`
}

// RestaurantDetails returns the static business metadata. Nothing here is
// persisted; edits ship with a new deploy.
func RestaurantDetails() RestaurantInfo {
	return RestaurantInfo{
		Name:          "दिल्ली तंदूरी मोमो",
		EnglishName:   "Delhi Tandoori Momo",
		Tagline:       "Authentic Delhi-Style Tandoori Momos in Bhagalpur",
		Rating:        4.5,
		TotalReviews:  104,
		PriceRange:    "₹1–200 per person",
		Phone:         "8873652662",
		BusinessPhone: "079790 16236",
		Address:       "Zila School Rd, Adampur, Bhagalpur, Bihar – 812001",
		Location:      "Nagarmal Sheonarain and Sons, Bhagalpur",
		PlusCode:      "7X2H+44 Bhagalpur, Bihar",
		Timings:       "Open daily, closes at 10:30 PM",
		Services:      []string{"Dine-in", "Takeaway", "Delivery", "Online Ordering"},
		SocialMedia: SocialMedia{
			Whatsapp:  "8873652662",
			Instagram: "rishijha390",
			Facebook:  "#",
		},
		MapEmbedUrl: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3610.8!2d87.32!3d25.25!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMjXCsDE1JzAwLjAiTiA4N8KwMTknMTIuMCJF!5e0!3m2!1sen!2sin!4v1234567890",
	}
}
