package catalog

// Products is the fixed catalog available to the storefront. It is defined
// at build time and read-only for the lifetime of the process.
var Products = []Product{
	{
		ID:            "1",
		Name:          "Blush Leather Handbag",
		Category:      CategoryBags,
		Price:         1250,
		OriginalPrice: intPtr(1500),
		Rating:        4.8,
		Tags:          []string{"leather", "pink", "handbag", "luxury", "everyday"},
		Image:         "/assets/bag-1.jpg",
		Description:   "Sophisticated blush pink leather handbag crafted from premium Italian leather. Perfect for everyday elegance with spacious interior and gold hardware details.",
		IsNew:         true,
		OnSale:        true,
		Colors:        []string{"Blush Pink", "Cream", "Taupe"},
		Sizes:         []string{"Medium", "Large"},
	},
	{
		ID:          "2",
		Name:        "Midnight Evening Clutch",
		Category:    CategoryBags,
		Price:       850,
		Rating:      4.9,
		Tags:        []string{"clutch", "evening", "black", "formal", "gold"},
		Image:       "/assets/bag-2.jpg",
		Description: "Elegant black evening clutch with luxurious gold hardware. Perfect for special occasions and formal events.",
		Colors:      []string{"Black", "Navy", "Silver"},
		Sizes:       []string{"One Size"},
	},
	{
		ID:          "3",
		Name:        "Classic Tote Bag",
		Category:    CategoryBags,
		Price:       1450,
		Rating:      4.7,
		Tags:        []string{"tote", "brown", "leather", "work", "spacious"},
		Image:       "/assets/bag-3.jpg",
		Description: "Timeless brown leather tote bag perfect for work and travel. Spacious interior with multiple compartments for organization.",
		Colors:      []string{"Brown", "Black", "Cognac"},
		Sizes:       []string{"Large"},
	},
	{
		ID:            "4",
		Name:          "Rose Midi Dress",
		Category:      CategoryDresses,
		Price:         950,
		OriginalPrice: intPtr(1200),
		Rating:        4.6,
		Tags:          []string{"midi", "rose", "dress", "flowing", "romantic"},
		Image:         "/assets/dress-1.jpg",
		Description:   "Beautiful flowing midi dress in soft rose. Perfect for brunch dates, garden parties, and romantic occasions.",
		IsNew:         true,
		OnSale:        true,
		Colors:        []string{"Rose", "Sage", "Ivory"},
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
	},
	{
		ID:          "5",
		Name:        "Little Black Dress",
		Category:    CategoryDresses,
		Price:       1150,
		Rating:      4.9,
		Tags:        []string{"cocktail", "black", "dress", "classic", "evening"},
		Image:       "/assets/dress-2.jpg",
		Description: "The perfect little black dress for any occasion. Sleek silhouette that flatters every figure with timeless elegance.",
		Colors:      []string{"Black", "Navy"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
	},
	{
		ID:            "6",
		Name:          "Delicate Gold Necklace",
		Category:      CategoryAccessories,
		Price:         450,
		OriginalPrice: intPtr(550),
		Rating:        4.8,
		Tags:          []string{"necklace", "gold", "delicate", "jewelry", "pendant"},
		Image:         "/assets/accessory-1.jpg",
		Description:   "Elegant gold necklace with delicate chain and beautiful pendant. Perfect for layering or wearing alone.",
		IsNew:         true,
		OnSale:        true,
		Colors:        []string{"Gold", "Silver", "Rose Gold"},
		Sizes:         []string{"16 inch", "18 inch", "20 inch"},
	},
}

func intPtr(v int) *int { return &v }
