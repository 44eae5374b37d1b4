package store

import "majestea-api/models"

// Fixed demo content for an empty database. Counts matter to the frontend:
// 4 menu categories, 5 reviews, 6 gallery images.

var seedRestaurantInfo = models.RestaurantInfo{
	Name:         "Majestea",
	Slogan:       "Le brunch & café cosy où chaque moment devient délicieux",
	Address:      "123 Bd Paul Vaillant Couturier, 95190 Goussainville",
	Phone:        "01 39 91 43 93",
	Email:        "contact@majestea.fr",
	Instagram:    "@majestea_restaurant",
	GoogleRating: 4.7,
	TotalReviews: "2,1k",
	Hours: map[string]models.RestaurantHours{
		"monday":    {Open: "09:00", Close: "23:00"},
		"tuesday":   {Open: "09:00", Close: "23:00"},
		"wednesday": {Open: "09:00", Close: "23:00"},
		"thursday":  {Open: "09:00", Close: "23:00"},
		"friday":    {Open: "09:00", Close: "23:00"},
		"saturday":  {Open: "09:00", Close: "23:00"},
		"sunday":    {Open: "09:00", Close: "22:00"},
	},
	Features: []string{"Terrasse disponible", "WiFi gratuit", "Parking à proximité"},
}

var seedMenuCategories = []models.MenuCategory{
	{
		ID:   "mains",
		Name: "Plats Principaux",
		Items: []models.MenuItem{
			{ID: "1", Name: "Majestea Burger Poulet", Price: 19.00, Description: "Burger de poulet croustillant, sauce maison, légumes frais", CategoryID: "mains"},
			{ID: "2", Name: "Majestea Burger Bœuf", Price: 22.50, Description: "Burger de bœuf premium, cheddar affiné, oignons caramélisés", CategoryID: "mains"},
			{ID: "3", Name: "Linguine Sea Food", Price: 21.00, Description: "Linguine aux fruits de mer, sauce crémeuse à l'ail", CategoryID: "mains"},
			{ID: "4", Name: "Escalope Façon Saltimboca", Price: 19.50, Description: "Escalope de veau, jambon de parme, sauge fraîche", CategoryID: "mains"},
			{ID: "5", Name: "Chicken Alfredo", Price: 18.00, Description: "Poulet grillé, pâtes fraîches, sauce alfredo crémeuse", CategoryID: "mains"},
			{ID: "6", Name: "Saumon du Chef", Price: 24.50, Description: "Saumon rôti, légumes de saison, sauce citronnée", CategoryID: "mains"},
			{ID: "7", Name: "Filet de Bœuf", Price: 29.00, Description: "Filet de bœuf premium, sauce au poivre, pommes grenaille", CategoryID: "mains"},
		},
	},
	{
		ID:   "starters",
		Name: "Entrées",
		Items: []models.MenuItem{
			{ID: "8", Name: "Duo de Tacos", Price: 13.00, Description: "Deux tacos gourmands au choix du chef", CategoryID: "starters"},
			{ID: "9", Name: "Tartare de Saumon Exotique", Price: 13.00, Description: "Saumon frais, mangue, avocat, sauce passion", CategoryID: "starters"},
			{ID: "10", Name: "Burrata Pesto", Price: 13.00, Description: "Burrata crémeuse, pesto basilic, tomates confites", CategoryID: "starters"},
			{ID: "11", Name: "Potato Balls", Price: 11.50, Description: "Boulettes de pommes de terre croustillantes, dip maison", CategoryID: "starters"},
			{ID: "12", Name: "Crevettes Frites", Price: 11.50, Description: "Crevettes panées croustillantes, sauce cocktail", CategoryID: "starters"},
		},
	},
	{
		ID:   "salads",
		Name: "Salades",
		Items: []models.MenuItem{
			{ID: "13", Name: "Salade César", Price: 19.50, Description: "Laitue romaine, poulet grillé, parmesan, croûtons, sauce césar", CategoryID: "salads"},
			{ID: "14", Name: "Salade Crousty Chèvre Miel", Price: 19.50, Description: "Mesclun, chèvre chaud, miel, noix, vinaigrette balsamique", CategoryID: "salads"},
		},
	},
	{
		ID:   "desserts",
		Name: "Desserts & Douceurs",
		Items: []models.MenuItem{
			{ID: "15", Name: "Cœur Coulant Caramel Beurre Salé", Price: 12.80, Description: "Fondant au chocolat, cœur coulant caramel", CategoryID: "desserts"},
			{ID: "16", Name: "Brioche façon Pain Perdu", Price: 17.00, Description: "Brioche dorée, fruits frais, chantilly maison", CategoryID: "desserts"},
			{ID: "17", Name: "Tiramisu Pistache", Price: 12.80, Description: "Tiramisu revisité à la pistache, crumble", CategoryID: "desserts"},
		},
	},
}

var seedReviews = []models.Review{
	{
		ID:      "1",
		Name:    "Sophie L.",
		Rating:  5,
		Date:    "Il y a 2 jours",
		Comment: "Un endroit magnifique ! L'ambiance est chaleureuse et féminine, le brunch est délicieux. Je recommande vivement le tiramisu pistache !",
		Avatar:  "S",
	},
	{
		ID:      "2",
		Name:    "Marie D.",
		Rating:  5,
		Date:    "Il y a 1 semaine",
		Comment: "La meilleure adresse brunch de Goussainville. La terrasse est superbe et le service impeccable. Le burger poulet est incroyable !",
		Avatar:  "M",
	},
	{
		ID:      "3",
		Name:    "Camille R.",
		Rating:  4,
		Date:    "Il y a 2 semaines",
		Comment: "Cadre très joli et féminin, parfait pour un moment entre amies. Les plats sont copieux et savoureux. Un peu d'attente le week-end.",
		Avatar:  "C",
	},
	{
		ID:      "4",
		Name:    "Emma B.",
		Rating:  5,
		Date:    "Il y a 3 semaines",
		Comment: "J'adore cet endroit ! L'équipe est adorable et les desserts sont à tomber. Le cœur coulant caramel est mon préféré.",
		Avatar:  "E",
	},
	{
		ID:      "5",
		Name:    "Julie M.",
		Rating:  5,
		Date:    "Il y a 1 mois",
		Comment: "Un brunch parfait dans un cadre cosy. Le saumon du chef est exceptionnel. Je reviendrai avec plaisir !",
		Avatar:  "J",
	},
}

var seedGalleryImages = []models.GalleryImage{
	{
		ID:       "1",
		Src:      "https://images.unsplash.com/photo-1707643733189-d2e4c472e32c?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHwxfHxicnVuY2glMjByZXN0YXVyYW50fGVufDB8fHx8MTc2ODA1NDk5M3ww&ixlib=rb-4.1.0&q=85&w=800",
		Alt:      "Brunch gourmand",
		Category: "brunch",
	},
	{
		ID:       "2",
		Src:      "https://images.unsplash.com/photo-1667118399331-c6d546acee11?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHwyfHxicnVuY2glMjByZXN0YXVyYW50fGVufDB8fHx8MTc2ODA1NDk5M3ww&ixlib=rb-4.1.0&q=85&w=800",
		Alt:      "Desserts élégants",
		Category: "desserts",
	},
	{
		ID:       "3",
		Src:      "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NjZ8MHwxfHNlYXJjaHwzfHxnb3VybWV0JTIwZm9vZHxlbnwwfHx8fDE3NjgwNTQ5OTd8MA&ixlib=rb-4.1.0&q=85&w=800",
		Alt:      "Fine dining",
		Category: "plats",
	},
	{
		ID:       "4",
		Src:      "https://images.unsplash.com/photo-1628838463043-b81a343794d6?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NjZ8MHwxfHNlYXJjaHw0fHxnb3VybWV0JTIwZm9vZHxlbnwwfHx8fDE3NjgwNTQ5OTd8MA&ixlib=rb-4.1.0&q=85&w=800",
		Alt:      "Plats gourmands",
		Category: "plats",
	},
	{
		ID:       "5",
		Src:      "https://images.pexels.com/photos/248413/pexels-photo-248413.jpeg?w=800",
		Alt:      "Vin et fromages",
		Category: "ambiance",
	},
	{
		ID:       "6",
		Src:      "https://images.unsplash.com/photo-1596910715979-6a1ef3bb0731?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzB8MHwxfHNlYXJjaHwxfHxjYWZlJTIwdGVycmFjZXxlbnwwfHx8fDE3NjgwNTUwMDJ8MA&ixlib=rb-4.1.0&q=85&w=800",
		Alt:      "Terrasse ensoleillée",
		Category: "terrasse",
	},
}
