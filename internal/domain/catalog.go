package domain

// PriceRange is an inclusive price band in USD.
type PriceRange struct {
	Min float64
	Max float64
}

type Category struct {
	Name   string
	Items  []string
	Prices PriceRange
}

// Catalog holds the lookup tables the generator draws from.
// Treat a Catalog as read-only once built.
type Catalog struct {
	Categories   []Category
	Brands       []string
	Adjectives   []string
	Descriptions []string // fmt templates taking the lowercased item name
	StatusSlots  []string // uniform draw over slots; repeat a value to weight it
	Discounts    []int
}

// Category looks up a category by name.
func (c Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []Category{
			{"Electronics", []string{"Smartphone", "Laptop", "Tablet", "Headphones", "Camera", "TV", "Speaker", "Monitor"}, PriceRange{50, 2000}},
			{"Clothing", []string{"T-Shirt", "Jeans", "Dress", "Jacket", "Shoes", "Hat", "Sweater", "Pants"}, PriceRange{15, 300}},
			{"Home & Garden", []string{"Chair", "Table", "Lamp", "Pillow", "Curtain", "Rug", "Plant", "Vase"}, PriceRange{20, 500}},
			{"Sports", []string{"Soccer Ball", "Tennis Racket", "Yoga Mat", "Dumbbell", "Bicycle", "Running Shoes"}, PriceRange{25, 800}},
			{"Books", []string{"Novel", "Cookbook", "Guide", "Biography", "Manual", "Dictionary"}, PriceRange{10, 50}},
			{"Beauty", []string{"Foundation", "Lipstick", "Shampoo", "Perfume", "Moisturizer", "Nail Polish"}, PriceRange{8, 150}},
			{"Toys", []string{"Action Figure", "Puzzle", "Board Game", "Doll", "Building Blocks", "Car Toy"}, PriceRange{12, 200}},
			{"Automotive", []string{"Tire", "Engine Oil", "Car Battery", "Brake Pad", "Air Filter", "Spark Plug"}, PriceRange{30, 1500}},
			{"Health", []string{"Vitamin", "Protein Powder", "First Aid Kit", "Thermometer", "Blood Pressure Monitor"}, PriceRange{15, 300}},
			{"Food", []string{"Pasta", "Rice", "Olive Oil", "Chocolate", "Coffee", "Tea", "Honey", "Bread"}, PriceRange{3, 100}},
			{"Tools", []string{"Hammer", "Screwdriver", "Drill", "Saw", "Wrench", "Pliers", "Level"}, PriceRange{20, 500}},
			{"Music", []string{"Guitar", "Piano", "Microphone", "Drum Set", "Violin", "Music Stand"}, PriceRange{50, 3000}},
		},
		Brands: []string{
			"TechCorp", "StyleMax", "HomeComfort", "SportsPro", "BookWorm", "BeautyGlow",
			"PlayTime", "AutoExpert", "WellnessFirst", "FoodieChoice", "ToolMaster", "SoundWave",
			"EliteGear", "ModernStyle", "ComfortZone", "ActiveLife", "SmartRead", "GlamourLux",
		},
		Adjectives: []string{
			"Premium", "Professional", "Deluxe", "Ultra", "Advanced", "Classic", "Modern",
			"Eco-Friendly", "High-Performance", "Luxury", "Compact", "Wireless", "Smart",
			"Durable", "Lightweight", "Waterproof", "Portable", "Energy-Saving",
		},
		Descriptions: []string{
			"High-quality %s perfect for daily use.",
			"Experience the best %s technology has to offer.",
			"Premium %s designed for performance and durability.",
			"Professional-grade %s for serious enthusiasts.",
			"Affordable yet reliable %s for everyone.",
		},
		StatusSlots: []string{"active", "active", "active", "inactive", "draft"},
		Discounts:   []int{5, 10, 15, 20, 25, 30},
	}
}
