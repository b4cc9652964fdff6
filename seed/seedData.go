package seed

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishijha390/delhi-tandoori-momo/models"
)

// MenuItems returns the fixed launch catalogue.
func MenuItems() []models.MenuItem {
	now := time.Now().UTC()

	items := []models.MenuItem{
		// Tandoori Momos
		{Item_id: 101, Name: "Veg Tandoori Momos", Description: "Crispy grilled momos with mixed vegetables", Price: 80, Category: "Tandoori Momos", Is_veg: true, Image: "https://images.unsplash.com/photo-1625220194771-7ebdea0b70b9"},
		{Item_id: 102, Name: "Chicken Tandoori Momos", Description: "Juicy chicken momos with tandoori spices", Price: 120, Category: "Tandoori Momos", Is_veg: false, Image: "https://images.unsplash.com/photo-1694923450868-b432a8ee52aa"},
		{Item_id: 103, Name: "Paneer Tandoori Momos", Description: "Cottage cheese filled momos with tandoori coating", Price: 100, Category: "Tandoori Momos", Is_veg: true, Image: "https://images.unsplash.com/photo-1738608084602-f9543952188e"},
		// Afghani Momos
		{Item_id: 201, Name: "Veg Afghani Momos", Description: "Momos tossed in creamy afghani sauce", Price: 90, Category: "Afghani Momos", Is_veg: true, Image: "https://images.unsplash.com/photo-1534422298391-e4f8c172dddb"},
		{Item_id: 202, Name: "Chicken Afghani Momos", Description: "Tender chicken momos in white creamy sauce", Price: 130, Category: "Afghani Momos", Is_veg: false, Image: "https://images.pexels.com/photos/5409010/pexels-photo-5409010.jpeg"},
		// Chilli Momos
		{Item_id: 301, Name: "Veg Chilli Momos", Description: "Spicy momos with bell peppers and onions", Price: 85, Category: "Chilli Momos", Is_veg: true, Image: "https://images.pexels.com/photos/3911228/pexels-photo-3911228.jpeg"},
		{Item_id: 302, Name: "Chicken Chilli Momos", Description: "Fiery chicken momos in spicy sauce", Price: 125, Category: "Chilli Momos", Is_veg: false, Image: "https://images.unsplash.com/photo-1589047133481-02b4a5327d89"},
		{Item_id: 303, Name: "Paneer Chilli Momos", Description: "Cottage cheese momos with spicy gravy", Price: 95, Category: "Chilli Momos", Is_veg: true, Image: "https://images.unsplash.com/photo-1523905330026-b8bd1f5f320e"},
		// Steamed Momos
		{Item_id: 401, Name: "Veg Steamed Momos", Description: "Classic steamed momos with vegetables", Price: 60, Category: "Steamed Momos", Is_veg: true, Image: "https://images.unsplash.com/photo-1523905330026-b8bd1f5f320e"},
		{Item_id: 402, Name: "Chicken Steamed Momos", Description: "Traditional chicken momos steamed to perfection", Price: 100, Category: "Steamed Momos", Is_veg: false, Image: "https://images.unsplash.com/photo-1694923450868-b432a8ee52aa"},
		{Item_id: 403, Name: "Mixed Steamed Momos", Description: "Combination of veg and chicken momos", Price: 110, Category: "Steamed Momos", Is_veg: false, Image: "https://images.unsplash.com/photo-1625220194771-7ebdea0b70b9"},
	}

	for i := range items {
		items[i].Is_available = true
		items[i].Created_at = now
		items[i].Updated_at = now
	}
	return items
}

// Reviews returns the fixed set of pre-approved launch reviews.
func Reviews() []models.Review {
	now := time.Now().UTC()

	reviews := []models.Review{
		{Name: "Rahul Kumar", Rating: 5, Date: "2 weeks ago", Avatar: "RK", Review: "Amazing taste! The tandoori momos are absolutely delicious. Crunchy coating with flavorful filling. Best momos in Bhagalpur!"},
		{Name: "Priya Singh", Rating: 4, Date: "1 month ago", Avatar: "PS", Review: "Great value for money. The spicy fillings are perfect. Staff is very attentive and service is quick. Highly recommended!"},
		{Name: "Amit Sharma", Rating: 5, Date: "3 weeks ago", Avatar: "AS", Review: "Authentic Delhi-style taste in Bhagalpur. The afghani momos are creamy and delicious. Will definitely come back!"},
		{Name: "Sneha Verma", Rating: 4, Date: "1 week ago", Avatar: "SV", Review: "Loved the chilli momos! Spicy and tangy just the way I like it. Good hygiene and friendly staff."},
	}

	for i := range reviews {
		reviews[i].ID = primitive.NewObjectID()
		reviews[i].Review_id = reviews[i].ID.Hex()
		reviews[i].Is_approved = true
		reviews[i].Created_at = now
	}
	return reviews
}
