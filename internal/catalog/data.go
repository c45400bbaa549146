package catalog

// defaultProducts 内置商品数据
var defaultProducts = []Product{
	{
		ID:            1,
		Name:          "iPhone 15 Pro Max",
		Price:         1199.99,
		OriginalPrice: 1299.99,
		Image:         "/images/apple1.avif",
		Images:        []string{"/images/apple1.avif", "/images/iphone3.jpg", "/images/apple2.avif"},
		Description:   "The most advanced iPhone ever with titanium design, A17 Pro chip, and professional camera system.",
		Category:      "electronics",
		Brand:         "Apple",
		Rating:        4.8,
		Reviews:       2847,
		InStock:       true,
		Features:      []string{"A17 Pro Chip", "Titanium Design", "48MP Camera", "5G Ready"},
		Specifications: map[string]string{
			"Display": "6.7-inch Super Retina XDR",
			"Chip":    "A17 Pro",
			"Camera":  "48MP Main, 12MP Ultra Wide",
			"Storage": "256GB",
			"Battery": "Up to 29 hours video playback",
		},
		Tags:     []string{"smartphone", "apple", "premium", "5g"},
		Discount: 8,
	},
	{
		ID:            2,
		Name:          "MacBook Pro 16-inch",
		Price:         2499.99,
		OriginalPrice: 2699.99,
		Image:         "/images/laptop1.avif",
		Images:        []string{"/images/laptop1.avif", "/images/laptop2.jpg", "/images/laptop3.avif"},
		Description:   "Supercharged by M3 Pro chip. Built for professionals who demand the ultimate performance.",
		Category:      "electronics",
		Brand:         "Apple",
		Rating:        4.9,
		Reviews:       1523,
		InStock:       true,
		Features:      []string{"M3 Pro Chip", "16-inch Liquid Retina XDR", "22-hour battery", "Studio-quality mics"},
		Specifications: map[string]string{
			"Chip":    "Apple M3 Pro",
			"Display": "16-inch Liquid Retina XDR",
			"Memory":  "18GB Unified Memory",
			"Storage": "512GB SSD",
			"Battery": "Up to 22 hours",
		},
		Tags:     []string{"laptop", "apple", "professional", "m3"},
		Discount: 7,
	},
	{
		ID:            3,
		Name:          "Premium Cotton T-Shirt",
		Price:         29.99,
		OriginalPrice: 39.99,
		Image:         "/images/tshirt1.avif",
		Images:        []string{"/images/tshirt1.avif", "/images/tshirt2.avif", "/images/tshirt3.avif"},
		Description:   "Ultra-soft premium cotton t-shirt with perfect fit and sustainable materials.",
		Category:      "clothing",
		Brand:         "EcoWear",
		Rating:        4.6,
		Reviews:       892,
		InStock:       true,
		Features:      []string{"100% Organic Cotton", "Pre-shrunk", "Tagless", "Sustainable"},
		Specifications: map[string]string{
			"Material":      "100% Organic Cotton",
			"Fit":           "Regular Fit",
			"Care":          "Machine Washable",
			"Origin":        "Made in USA",
			"Certification": "GOTS Certified",
		},
		Tags:     []string{"t-shirt", "cotton", "organic", "sustainable"},
		Discount: 25,
	},
	{
		ID:            4,
		Name:          "Designer Denim Jeans",
		Price:         89.99,
		OriginalPrice: 119.99,
		Image:         "/images/denim1.avif",
		Images:        []string{"/images/denim1.avif", "/images/denim2.avif", "/images/denim3.avif"},
		Description:   "Premium denim jeans with perfect fit, comfort stretch, and timeless style.",
		Category:      "clothing",
		Brand:         "DenimCraft",
		Rating:        4.7,
		Reviews:       1247,
		InStock:       true,
		Features:      []string{"Comfort Stretch", "Fade Resistant", "Reinforced Seams", "Classic Fit"},
		Specifications: map[string]string{
			"Material":    "98% Cotton, 2% Elastane",
			"Fit":         "Slim Fit",
			"Rise":        "Mid Rise",
			"Leg Opening": "14 inches",
			"Care":        "Machine Wash Cold",
		},
		Tags:     []string{"jeans", "denim", "stretch", "classic"},
		Discount: 25,
	},
	{
		ID:            5,
		Name:          "AirPods Pro (3rd Gen)",
		Price:         249.99,
		OriginalPrice: 279.99,
		Image:         "/images/earbird1.avif",
		Images:        []string{"/images/earbird1.avif", "/images/earbird2.avif", "/images/earbird3.avif"},
		Description:   "Next-level Active Noise Cancellation and Adaptive Transparency for the ultimate listening experience.",
		Category:      "electronics",
		Brand:         "Apple",
		Rating:        4.8,
		Reviews:       3421,
		InStock:       true,
		Features:      []string{"Active Noise Cancellation", "Spatial Audio", "Adaptive Transparency", "MagSafe Charging"},
		Specifications: map[string]string{
			"Chip":             "H2 Chip",
			"Battery":          "Up to 6 hours listening",
			"Charging Case":    "MagSafe Compatible",
			"Water Resistance": "IPX4",
			"Connectivity":     "Bluetooth 5.3",
		},
		Tags:     []string{"earbuds", "apple", "wireless", "noise-cancelling"},
		Discount: 11,
	},
	{
		ID:            6,
		Name:          "Premium Hoodie",
		Price:         69.99,
		OriginalPrice: 89.99,
		Image:         "/images/hoddie1.webp",
		Images:        []string{"/images/hoddie1.webp", "/images/hoddie2.webp", "/images/hoddie3.avif"},
		Description:   "Ultra-comfortable premium hoodie with soft fleece lining and modern fit.",
		Category:      "clothing",
		Brand:         "ComfortWear",
		Rating:        4.5,
		Reviews:       756,
		InStock:       true,
		Features:      []string{"Fleece Lined", "Kangaroo Pocket", "Adjustable Hood", "Ribbed Cuffs"},
		Specifications: map[string]string{
			"Material": "80% Cotton, 20% Polyester",
			"Weight":   "320 GSM",
			"Fit":      "Regular Fit",
			"Care":     "Machine Washable",
			"Features": "Drawstring Hood",
		},
		Tags:     []string{"hoodie", "fleece", "comfortable", "casual"},
		Discount: 22,
	},
	{
		ID:            7,
		Name:          "Gaming Mechanical Keyboard",
		Price:         159.99,
		OriginalPrice: 199.99,
		Image:         "/images/keyboard1.avif",
		Images:        []string{"/images/keyboard1.avif", "/images/keyboard2.avif", "/images/keyboard3.avif"},
		Description:   "Professional gaming keyboard with RGB backlighting and premium mechanical switches.",
		Category:      "electronics",
		Brand:         "GameTech",
		Rating:        4.7,
		Reviews:       1834,
		InStock:       true,
		Features:      []string{"RGB Backlighting", "Mechanical Switches", "Anti-Ghosting", "Programmable Keys"},
		Specifications: map[string]string{
			"Switch Type":  "Cherry MX Blue",
			"Backlighting": "RGB Per-Key",
			"Connectivity": "USB-C",
			"Layout":       "Full Size (104 Keys)",
			"Polling Rate": "1000Hz",
		},
		Tags:     []string{"keyboard", "gaming", "mechanical", "rgb"},
		Discount: 20,
	},
	{
		ID:            8,
		Name:          "Smartwatch Series 9",
		Price:         399.99,
		OriginalPrice: 449.99,
		Image:         "/images/watch1.avif",
		Images:        []string{"/images/watch1.avif", "/images/watch2.avif", "/images/watch3.avif"},
		Description:   "Advanced health monitoring, fitness tracking, and smart features in a sleek design.",
		Category:      "electronics",
		Brand:         "Apple",
		Rating:        4.6,
		Reviews:       2156,
		InStock:       true,
		Features:      []string{"Health Monitoring", "GPS Tracking", "Water Resistant", "Always-On Display"},
		Specifications: map[string]string{
			"Display":          "45mm Retina LTPO OLED",
			"Chip":             "S9 SiP",
			"Battery":          "Up to 18 hours",
			"Water Resistance": "50 meters",
			"Connectivity":     "Wi-Fi, Bluetooth, Cellular",
		},
		Tags:     []string{"smartwatch", "fitness", "health", "apple"},
		Discount: 11,
	},
}
