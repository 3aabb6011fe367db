package catalog

import "aadhira_hotel/internal/domain"

var defaultMenu = []domain.ServiceItem{
	{ID: "bf1", Name: "Continental Breakfast", Description: "Fresh pastries, fruits, coffee, and juice", Price: 18, Category: domain.CategoryBreakfast, Available: true},
	{ID: "bf2", Name: "American Breakfast", Description: "Eggs, bacon, toast, and hash browns", Price: 22, Category: domain.CategoryBreakfast, Available: true},
	{ID: "bf3", Name: "South Indian Breakfast", Description: "Idli, dosa, sambar, and chutney", Price: 16, Category: domain.CategoryBreakfast, Available: true},

	{ID: "ln1", Name: "Grilled Chicken Salad", Description: "Fresh greens with grilled chicken and vinaigrette", Price: 24, Category: domain.CategoryLunch, Available: true},
	{ID: "ln2", Name: "Pasta Carbonara", Description: "Creamy pasta with bacon and parmesan", Price: 26, Category: domain.CategoryLunch, Available: true},
	{ID: "ln3", Name: "Butter Chicken", Description: "Tender chicken in rich tomato gravy with naan", Price: 28, Category: domain.CategoryLunch, Available: true},

	{ID: "dn1", Name: "Grilled Salmon", Description: "Fresh salmon with seasonal vegetables", Price: 32, Category: domain.CategoryDinner, Available: true},
	{ID: "dn2", Name: "Beef Tenderloin", Description: "Premium cut with mashed potatoes", Price: 38, Category: domain.CategoryDinner, Available: true},
	{ID: "dn3", Name: "Vegetarian Curry", Description: "Mixed vegetables in aromatic spices", Price: 20, Category: domain.CategoryDinner, Available: true},

	{ID: "sn1", Name: "French Fries", Description: "Crispy golden fries with ketchup", Price: 8, Category: domain.CategorySnacks, Available: true},
	{ID: "sn2", Name: "Chicken Wings", Description: "Spicy wings with blue cheese dip", Price: 14, Category: domain.CategorySnacks, Available: true},
	{ID: "sn3", Name: "Nachos", Description: "Loaded nachos with cheese and salsa", Price: 12, Category: domain.CategorySnacks, Available: true},

	{ID: "bv1", Name: "Coffee", Description: "Fresh brewed coffee", Price: 4, Category: domain.CategoryBeverages, Available: true},
	{ID: "bv2", Name: "Tea", Description: "Assorted tea selection", Price: 3, Category: domain.CategoryBeverages, Available: true},
	{ID: "bv3", Name: "Fresh Juice", Description: "Orange, apple, or mixed fruit juice", Price: 6, Category: domain.CategoryBeverages, Available: true},
	{ID: "bv4", Name: "Soft Drinks", Description: "Coke, Pepsi, Sprite, or Fanta", Price: 3, Category: domain.CategoryBeverages, Available: true},
}

var defaultHousekeeping = []Rule{
	{
		Keywords: []string{"towel"}, Label: "fresh towels", Description: "Request for fresh towels",
		Priority: domain.PriorityMedium, ETAMinutes: 20,
		FollowUp: "Need anything else while you wait? Maybe some fresh bed linens or bathroom amenities?",
	},
	{
		Keywords: []string{"clean"}, Label: "room cleaning", Description: "Request for room cleaning",
		Priority: domain.PriorityLow, ETAMinutes: 60,
		FollowUp: "Would you like them to come now, or at a specific time?",
	},
	{
		Keywords: []string{"bed", "linen"}, Label: "bed linens", Description: "Request for fresh bed linens",
		Priority: domain.PriorityMedium, ETAMinutes: 30,
		FollowUp: "Is there anything else you need?",
	},
	{
		Keywords: []string{"bathroom", "amenities"}, Label: "bathroom amenities", Description: "Request for bathroom amenities",
		Priority: domain.PriorityMedium, ETAMinutes: 15,
		FollowUp: "What specific items do you need?",
	},
}

// TV issues stay low priority even though maintenance is usually urgent.
var defaultMaintenance = []Rule{
	{
		Keywords: []string{"ac", "air conditioning", "cooling"}, Label: "AC/heating", Description: "AC/Heating issue reported",
		Priority: domain.PriorityHigh, ETAMinutes: 30,
		FollowUp: "Is the AC completely off, or just not cooling properly?",
	},
	{
		Keywords: []string{"light", "bulb", "electricity"}, Label: "electrical", Description: "Electrical/Lighting issue reported",
		Priority: domain.PriorityMedium, ETAMinutes: 45,
		FollowUp: "Which lights are not working?",
	},
	{
		Keywords: []string{"water", "shower", "sink", "toilet"}, Label: "plumbing", Description: "Plumbing issue reported",
		Priority: domain.PriorityHigh, ETAMinutes: 30,
		FollowUp: "What specific water issue are you experiencing?",
	},
	{
		Keywords: []string{"tv", "television", "remote"}, Label: "TV/entertainment", Description: "TV/Entertainment issue reported",
		Priority: domain.PriorityLow, ETAMinutes: 60,
		FollowUp: "What's wrong with the TV?",
	},
	{
		Keywords: []string{"wifi", "internet", "connection"}, Label: "WiFi", Description: "WiFi/Internet connectivity issue reported",
		Priority: domain.PriorityHigh, ETAMinutes: 20,
		FollowUp: "Are you completely unable to connect, or is it just really slow?",
	},
}
