package catalog

import "github.com/savaneats/savan/internal/domain"

var menuItems = []domain.MenuItem{
	// Breakfast Snacks
	{
		ID:          "b1",
		Name:        "Savan Chapati",
		Slug:        "chapati",
		Description: "Soft, layered traditional flatbread. A Kenyan breakfast staple.",
		Price:       50,
		Category:    "Breakfast Snacks",
		Image:       "/images/hero-breakfast.png",
		Rating:      4.9,
		Reviews:     320,
		PrepTime:    "5-10 min",
		Tags:        []string{"Staple", "Vegetarian"},
	},
	{
		ID:          "b2",
		Name:        "Beef Samosa",
		Slug:        "samosa",
		Description: "Crispy pastry pockets filled with spiced minced beef and heritage herbs.",
		Price:       50,
		Category:    "Breakfast Snacks",
		Image:       "/images/beef-samosa.png",
		Rating:      4.8,
		Reviews:     215,
		PrepTime:    "5 min",
		Tags:        []string{"Crunchy", "Bestseller"},
	},
	{
		ID:          "b3",
		Name:        "Savan Rollex",
		Slug:        "rollex",
		Description: "Street-style egg and chapati wrap, loaded with onions and tomatoes.",
		Price:       150,
		Category:    "Breakfast Snacks",
		Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=800&q=80",
		Rating:      4.7,
		Reviews:     85,
		PrepTime:    "10-15 min",
		Tags:        []string{"Filling", "Street Food"},
	},
	{
		ID:          "b4",
		Name:        "Nduma (Arrowroot)",
		Slug:        "nduma",
		Description: "Earthy, nutrient-dense boiled arrowroot. A wholesome heritage choice.",
		Price:       100,
		Category:    "Breakfast Snacks",
		Image:       "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?w=800&q=80",
		Rating:      4.6,
		Reviews:     42,
		PrepTime:    "10 min",
		Tags:        []string{"Healthy", "Heritage"},
	},
	{
		ID:          "b5",
		Name:        "Savan Mandazi",
		Slug:        "mandazi",
		Description: "Golden-brown, fluffy Swahili donuts with a hint of cardamom.",
		Price:       30,
		Category:    "Breakfast Snacks",
		Image:       "/images/hero-breakfast.png",
		Rating:      4.9,
		Reviews:     432,
		PrepTime:    "2 min",
		Tags:        []string{"Sweet", "Classic"},
	},
	{
		ID:          "b6",
		Name:        "Beef Sausage",
		Slug:        "sausage",
		Description: "Premium grilled beef sausages, perfectly seasoned.",
		Price:       70,
		Category:    "Breakfast Snacks",
		Image:       "https://images.unsplash.com/photo-1544681280-d25a07c9920f?w=800&q=80",
		Rating:      4.7,
		Reviews:     88,
		PrepTime:    "5 min",
		Tags:        []string{"Protein", "Quick"},
	},
	{
		ID:          "b7",
		Name:        "Chips Masala",
		Slug:        "chips-masala",
		Description: "Golden fries tossed in a spicy, flavorful tomato and herb sauce.",
		Price:       200,
		Category:    "Breakfast Snacks",
		Image:       "/images/chips-masala.png",
		Rating:      4.8,
		Reviews:     156,
		PrepTime:    "15 min",
		Tags:        []string{"Spicy", "Comfort"},
	},
	{
		ID:          "b8",
		Name:        "Classic Omelette",
		Slug:        "omelette",
		Description: "Two-egg omelette with onions, tomatoes, and Kenyan herbs.",
		Price:       180,
		Category:    "Breakfast Snacks",
		Image:       "https://images.unsplash.com/photo-1510627489930-0c1b0ba6465d?w=800&q=80",
		Rating:      4.7,
		Reviews:     64,
		PrepTime:    "10 min",
		Tags:        []string{"Protein", "Breakfast"},
	},
	{
		ID:          "b9",
		Name:        "Quick Indomie",
		Slug:        "indomie",
		Description: "Spiced instant noodles, sautéed with onions and fresh vegetables.",
		Price:       150,
		Category:    "Breakfast Snacks",
		Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800&q=80",
		Rating:      4.5,
		Reviews:     32,
		PrepTime:    "5-8 min",
		Tags:        []string{"Quick", "Student Favorite"},
	},
	{
		ID:          "b10",
		Name:        "Savan Pancake",
		Slug:        "pancake",
		Description: "Sweet, fluffy traditional crepes with a hint of vanilla.",
		Price:       100,
		Category:    "Breakfast Snacks",
		Image:       "https://images.unsplash.com/photo-1528207776546-365bb710ee93?w=800&q=80",
		Rating:      4.8,
		Reviews:     55,
		PrepTime:    "10 min",
		Tags:        []string{"Sweet", "Delicate"},
	},
	{
		ID:          "b11",
		Name:        "Vegetable Samosa",
		Slug:        "veg-samosa",
		Description: "Crispy pastry pockets filled with spiced potato and green peas.",
		Price:       40,
		Category:    "Breakfast Snacks",
		Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=800&q=80",
		Rating:      4.6,
		Reviews:     98,
		PrepTime:    "5 min",
		Tags:        []string{"Vegetarian", "Crunchy"},
	},

	// Main Dishes
	{
		ID:          "m1",
		Name:        "Fish Wet Fry",
		Slug:        "fish-wet-fry",
		Description: "Fresh Tilapia stewed in a rich tomato, onion, and cilantro gravy.",
		Price:       450,
		Category:    "Main Dishes",
		Image:       "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=800&q=80",
		Rating:      4.9,
		Reviews:     450,
		PrepTime:    "25-30 min",
		Tags:        []string{"Fresh Fish", "Chef Special"},
		Options:     domain.ItemOptions{Sides: []string{"Ugali", "Rice", "Chapati", "Mukimo"}},
	},
	{
		ID:          "m2",
		Name:        "Savan Mbuzi Fry",
		Slug:        "mbuzi-fry",
		Description: "Tender goat meat sautéed with peppers, onions, and traditional spices.",
		Price:       400,
		Category:    "Main Dishes",
		Image:       "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800&q=80",
		Rating:      4.8,
		Reviews:     312,
		PrepTime:    "20-25 min",
		Tags:        []string{"Signature", "Spicy"},
		Options:     domain.ItemOptions{Sides: []string{"Ugali", "Rice", "Mukimo"}},
	},
	{
		ID:          "m3",
		Name:        "Nyama Choma",
		Slug:        "nyama-choma",
		Description: "Authentic Kenyan charcoal-grilled beef, seasoned with sea salt.",
		Price:       400,
		Category:    "Main Dishes",
		Image:       "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=800&q=80",
		Rating:      4.9,
		Reviews:     520,
		PrepTime:    "30-40 min",
		Tags:        []string{"Legendary", "Grilled"},
		Options:     domain.ItemOptions{Sides: []string{"Ugali", "Kachumbari"}},
	},
	{
		ID:          "m4",
		Name:        "Managu & Kienyeji",
		Slug:        "managu",
		Description: "Traditional African nightshade and seasonal greens, cooked with cream for a velvety finish.",
		Price:       200,
		Category:    "Main Dishes",
		Image:       "https://images.unsplash.com/photo-1574484284002-952d92456975?w=800&q=80",
		Rating:      4.7,
		Reviews:     128,
		PrepTime:    "15 min",
		Tags:        []string{"Organic", "Traditional"},
		Options:     domain.ItemOptions{Sides: []string{"Ugali"}},
	},
	{
		ID:          "m5",
		Name:        "Chicken Stew",
		Slug:        "chicken-stew",
		Description: "Succulent chicken pieces simmered in a vibrant vegetable and coriander broth.",
		Price:       400,
		Category:    "Main Dishes",
		Image:       "/images/chicken-stew.png",
		Rating:      4.8,
		Reviews:     245,
		PrepTime:    "25 min",
		Tags:        []string{"Comfort Food", "Chef Favorite"},
		Options:     domain.ItemOptions{Sides: []string{"Rice", "Chapati", "Ugali"}},
	},
	{
		ID:          "m6",
		Name:        "Matumbo Fry",
		Slug:        "matumbo-fry",
		Description: "Cleansed tripe expertly sautéed with onions, peppers, and house seasoning.",
		Price:       450,
		Category:    "Main Dishes",
		Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&q=80",
		Rating:      4.7,
		Reviews:     156,
		PrepTime:    "20-25 min",
		Tags:        []string{"Heritage", "Flavorful"},
		Options:     domain.ItemOptions{Sides: []string{"Ugali", "Rice"}},
	},
	{
		ID:          "m7",
		Name:        "Smoked Beef (Aliya)",
		Slug:        "smoked-beef",
		Description: "Traditional smoked beef strips cooked to tender perfection.",
		Price:       400,
		Category:    "Main Dishes",
		Image:       "https://images.unsplash.com/photo-1603048297172-c92544798d5a?w=800&q=80",
		Rating:      4.8,
		Reviews:     92,
		PrepTime:    "25 min",
		Tags:        []string{"Traditional", "Luo Heritage"},
		Options:     domain.ItemOptions{Sides: []string{"Ugali", "Managu"}},
	},
	{
		ID:          "m8",
		Name:        "Liver Curry",
		Slug:        "liver-curry",
		Description: "Tender beef liver sautéed in a rich tomato and ginger curry sauce.",
		Price:       450,
		Category:    "Main Dishes",
		Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&q=80",
		Rating:      4.7,
		Reviews:     74,
		PrepTime:    "20 min",
		Tags:        []string{"Iron-Rich", "Flavorful"},
		Options:     domain.ItemOptions{Sides: []string{"Ugali", "Rice"}},
	},

	// Plain Dishes
	{
		ID:          "p1",
		Name:        "Swahili Pilau",
		Slug:        "swahili-pilau",
		Description: "Fragrant rice cooked with beef cubes and a blend of heritage spices.",
		Price:       250,
		Category:    "Plain Dishes",
		Image:       "/images/pilau.png",
		Rating:      4.9,
		Reviews:     412,
		PrepTime:    "15 min",
		Tags:        []string{"Spiced", "Bestseller"},
	},
	{
		ID:          "p2",
		Name:        "Matoke in Peanut Sauce",
		Slug:        "matoke-peanut",
		Description: "Green bananas slow-cooked in a creamy peanut and tomato base.",
		Price:       300,
		Category:    "Plain Dishes",
		Image:       "https://images.unsplash.com/photo-1574484284002-952d92456975?w=800&q=80",
		Rating:      4.7,
		Reviews:     64,
		PrepTime:    "20 min",
		Tags:        []string{"Creamy", "Heritage"},
	},
	{
		ID:          "p3",
		Name:        "Authentic Githeri",
		Slug:        "githeri",
		Description: "Hearty mix of maize and beans, slow-cooked with fresh vegetables.",
		Price:       200,
		Category:    "Plain Dishes",
		Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=800&q=80",
		Rating:      4.6,
		Reviews:     87,
		PrepTime:    "15 min",
		Tags:        []string{"Healthy", "Staple"},
	},
	{
		ID:          "p4",
		Name:        "White Ugali",
		Slug:        "ugali",
		Description: "The quintessential Kenyan staple, made from premium maize flour.",
		Price:       100,
		Category:    "Plain Dishes",
		Image:       "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?w=800&q=80",
		Rating:      4.9,
		Reviews:     1200,
		PrepTime:    "10 min",
		Tags:        []string{"Staple", "Vegan"},
	},
	{
		ID:          "p5",
		Name:        "Steamed Rice",
		Slug:        "steamed-rice",
		Description: "Fluffy, aromatic white rice. Perfect accompaniment for stews.",
		Price:       150,
		Category:    "Plain Dishes",
		Image:       "https://images.unsplash.com/photo-1516684732162-798a0062be99?w=800&q=80",
		Rating:      4.7,
		Reviews:     85,
		PrepTime:    "15 min",
		Tags:        []string{"Sides", "Classic"},
	},
	{
		ID:          "p6",
		Name:        "Savan Mukimo",
		Slug:        "mukimo",
		Description: "Creamy mash of maize, beans, potatoes, and pumpkin leaves.",
		Price:       200,
		Category:    "Plain Dishes",
		Image:       "https://images.unsplash.com/photo-1574484284002-952d92456975?w=800&q=80",
		Rating:      4.8,
		Reviews:     142,
		PrepTime:    "20 min",
		Tags:        []string{"Heritage", "Filling"},
	},
	{
		ID:          "p7",
		Name:        "Brown Ugali",
		Slug:        "brown-ugali",
		Description: "Traditional millet or sorghum-based Ugali. High in fiber.",
		Price:       150,
		Category:    "Plain Dishes",
		Image:       "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?w=800&q=80",
		Rating:      4.8,
		Reviews:     85,
		PrepTime:    "12 min",
		Tags:        []string{"Whole Grain", "Traditional"},
	},

	// Special Dishes
	{
		ID:          "s1",
		Name:        "Special Mbuzi Fry",
		Slug:        "special-mbuzi",
		Description: "Large portion of tender Mbuzi Fry served with Pilau or Matoke.",
		Price:       600,
		Category:    "Special Dishes",
		Image:       "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800&q=80",
		Rating:      4.9,
		Reviews:     145,
		PrepTime:    "30-35 min",
		Tags:        []string{"Premium", "Feast"},
		Options:     domain.ItemOptions{Sides: []string{"Pilau", "Matoke in Peanut"}},
	},
	{
		ID:          "s2",
		Name:        "Special Chicken Stew",
		Slug:        "special-chicken",
		Description: "Kienyeji-style chicken stew served with premium sides.",
		Price:       600,
		Category:    "Special Dishes",
		Image:       "/images/chicken-stew.png",
		Rating:      4.8,
		Reviews:     67,
		PrepTime:    "30 min",
		Tags:        []string{"Luxury", "Traditional"},
		Options:     domain.ItemOptions{Sides: []string{"Pilau", "Mukimo"}},
	},

	// Hot Beverages
	{
		ID:          "h1",
		Name:        "Masala Ginger Tea",
		Slug:        "masala-tea",
		Description: "Brewed Kenyan tea leaves with fresh ginger and aromatic spices.",
		Price:       70,
		Category:    "Hot Beverages",
		Image:       "/images/masala-tea.png",
		Rating:      4.9,
		Reviews:     320,
		PrepTime:    "5 min",
		Tags:        []string{"Warming", "Must Try"},
	},
	{
		ID:          "h2",
		Name:        "Special Dawa",
		Slug:        "special-dawa",
		Description: "Lemon, honey, and ginger medicinal tea. The ultimate wellness brew.",
		Price:       100,
		Category:    "Hot Beverages",
		Image:       "https://images.unsplash.com/photo-1544787210-2213d24265cc?w=800&q=80",
		Rating:      4.8,
		Reviews:     145,
		PrepTime:    "5-8 min",
		Tags:        []string{"Healthy", "Classic"},
	},
	{
		ID:          "h4",
		Name:        "Savan Lemon Tea",
		Slug:        "lemon-tea",
		Description: "Refreshing black tea infused with fresh lemon zest and juice.",
		Price:       80,
		Category:    "Hot Beverages",
		Image:       "https://images.unsplash.com/photo-1544787210-2213d24265cc?w=800&q=80",
		Rating:      4.7,
		Reviews:     64,
		PrepTime:    "5 min",
		Tags:        []string{"Zesty", "Refreshing"},
	},
	{
		ID:          "h5",
		Name:        "Hot Savan Milk",
		Slug:        "hot-milk",
		Description: "Pure, warm milk, perfectly frothed and comforting.",
		Price:       70,
		Category:    "Hot Beverages",
		Image:       "https://images.unsplash.com/photo-1517431525049-74e2a392095f?w=800&q=80",
		Rating:      4.6,
		Reviews:     42,
		PrepTime:    "3 min",
		Tags:        []string{"Pure", "Comfort"},
	},
	{
		ID:          "h3",
		Name:        "Heritage Porridge (Uji)",
		Slug:        "uji",
		Description: "Fermented millet porridge, rich in nutrients and tradition.",
		Price:       50,
		Category:    "Hot Beverages",
		Image:       "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?w=800&q=80",
		Rating:      4.7,
		Reviews:     112,
		PrepTime:    "5 min",
		Tags:        []string{"Nutritious", "Traditional"},
	},

	// Cold Drinks
	{
		ID:          "c1",
		Name:        "Natural Spring Water",
		Slug:        "spring-water",
		Description: "Pure, chilled water. Available in 500ml or 1L.",
		Price:       70,
		Category:    "Cold Drinks",
		Image:       "https://images.unsplash.com/photo-1523362628742-0c297f112f1d?w=800&q=80",
		Rating:      4.9,
		Reviews:     320,
		PrepTime:    "1 min",
		Tags:        []string{"Hydration", "Pure"},
	},
	{
		ID:          "c2",
		Name:        "Exotic Hibiscus Juice",
		Slug:        "hibiscus-juice",
		Description: "Chilled Zobo-style juice infused with mint and citrus.",
		Price:       150,
		Category:    "Cold Drinks",
		Image:       "https://images.unsplash.com/photo-1513558161293-cdaf76589fd8?w=800&q=80",
		Rating:      4.8,
		Reviews:     95,
		PrepTime:    "2 min",
		Tags:        []string{"Refreshing", "Artisanal"},
	},
	{
		ID:          "c3",
		Name:        "Kenyan Heritage Soda",
		Slug:        "heritage-soda",
		Description: "Classic selection: Coca-Cola, Sprite, or Stoney Tangawizi.",
		Price:       80,
		Category:    "Cold Drinks",
		Image:       "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?w=800&q=80",
		Rating:      4.7,
		Reviews:     184,
		PrepTime:    "1 min",
		Tags:        []string{"Classic", "Chilled"},
	},
}
