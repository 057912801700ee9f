// internal/catalog/catalog.go
package catalog

import (
	"fmt"
	"os"

	"giftwise/internal/models"

	"gopkg.in/yaml.v3"
)

// Catalog is the curated gift set backing the fallback recommender and the
// public gift pages. A compiled-in catalog ships with the binary; an
// operator can replace it with a YAML file.
type Catalog struct {
	gifts []models.Gift
	byID  map[string]models.Gift
}

type yamlGift struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Category    string   `yaml:"category"`
	Reason      string   `yaml:"reason"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	Rating      float64  `yaml:"rating"`
	Reviews     int      `yaml:"reviews"`
}

type yamlCatalog struct {
	Gifts []yamlGift `yaml:"gifts"`
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return newCatalog(builtinGifts())
}

// Load reads a YAML catalog from path. An empty path returns the
// compiled-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(doc.Gifts) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no gifts", path)
	}

	gifts := make([]models.Gift, 0, len(doc.Gifts))
	for i, g := range doc.Gifts {
		if g.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		id := g.ID
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		gifts = append(gifts, models.Gift{
			ID:          id,
			Name:        g.Name,
			Description: g.Description,
			Price:       g.Price,
			Category:    g.Category,
			Reason:      g.Reason,
			ImageURL:    g.Image,
			PurchaseURL: "/gift/" + id,
			Tags:        g.Tags,
			Rating:      g.Rating,
			ReviewCount: g.Reviews,
		})
	}

	return newCatalog(gifts), nil
}

func newCatalog(gifts []models.Gift) *Catalog {
	byID := make(map[string]models.Gift, len(gifts))
	for _, g := range gifts {
		byID[g.ID] = g
	}
	return &Catalog{gifts: gifts, byID: byID}
}

// Gifts returns a copy of all catalog entries.
func (c *Catalog) Gifts() []models.Gift {
	out := make([]models.Gift, len(c.gifts))
	copy(out, c.gifts)
	return out
}

// GiftByID looks up a single catalog entry.
func (c *Catalog) GiftByID(id string) (models.Gift, bool) {
	g, ok := c.byID[id]
	return g, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.gifts)
}

// builtinGifts is the shipped catalog. Prices are in INR.
func builtinGifts() []models.Gift {
	return []models.Gift{
		{
			ID:          "1",
			Name:        "Bestselling Mystery Novel Collection",
			Description: "A collection of the top 3 bestselling mystery novels of the year, perfect for someone who loves reading and mysteries.",
			Price:       3800,
			ImageURL:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=800",
			Category:    "Books",
			Tags:        []string{"Reading", "Mystery", "Creative"},
			Rating:      4.8,
			ReviewCount: 124,
			PurchaseURL: "/gift/1",
			Reason:      "Based on their love for reading and mystery novels, this collection would be perfect for them to enjoy.",
		},
		{
			ID:          "2",
			Name:        "Gourmet Cooking Spice Set",
			Description: "A set of premium spices from around the world, perfect for the home chef who loves to experiment with new flavors.",
			Price:       3300,
			ImageURL:    "https://images.unsplash.com/photo-1607877361964-d5c3c2e0ff8a?q=80&w=800",
			Category:    "Cooking",
			Tags:        []string{"Cooking", "Gourmet", "Creative"},
			Rating:      4.6,
			ReviewCount: 89,
			PurchaseURL: "/gift/2",
			Reason:      "Since they enjoy cooking, this spice set will help them create new and exciting recipes.",
		},
		{
			ID:          "3",
			Name:        "Travel Journal with World Map",
			Description: "A beautiful leather-bound travel journal with a world map design, perfect for documenting adventures.",
			Price:       2400,
			ImageURL:    "https://images.unsplash.com/photo-1501785888041-af3ef285b470?q=80&w=800",
			Category:    "Travel",
			Tags:        []string{"Travel", "Thoughtful", "Creative"},
			Rating:      4.7,
			ReviewCount: 56,
			PurchaseURL: "/gift/3",
			Reason:      "For someone who loves travel, this journal provides a way to document their experiences and memories.",
		},
		{
			ID:          "4",
			Name:        "Cooking Class Gift Card",
			Description: "A gift card for a series of online cooking classes taught by world-renowned chefs.",
			Price:       9900,
			ImageURL:    "https://images.unsplash.com/photo-1556911220-bda9f7f7597e?q=80&w=800",
			Category:    "Experiences",
			Tags:        []string{"Cooking", "Learning", "Creative"},
			Rating:      4.9,
			ReviewCount: 42,
			PurchaseURL: "/gift/4",
			Reason:      "This combines their love of cooking with a unique experience they can enjoy at their own pace.",
		},
		{
			ID:          "5",
			Name:        "Personalized Bookends",
			Description: "Handcrafted wooden bookends that can be personalized with their initials or a short message.",
			Price:       5400,
			ImageURL:    "https://images.unsplash.com/photo-1513519245088-0e12902e5a38?q=80&w=800",
			Category:    "Home Decor",
			Tags:        []string{"Reading", "Thoughtful", "Personalized"},
			Rating:      4.5,
			ReviewCount: 38,
			PurchaseURL: "/gift/5",
			Reason:      "These bookends are both practical for their book collection and add a personal touch to their space.",
		},
		{
			ID:          "6",
			Name:        "Smart Fitness Tracker",
			Description: "A premium fitness tracker that monitors activity, sleep, and health metrics with a sleek design.",
			Price:       10800,
			ImageURL:    "https://images.unsplash.com/photo-1575311373937-040b8e1fd6b0?q=80&w=800",
			Category:    "Technology",
			Tags:        []string{"Fitness", "Technology", "Practical"},
			Rating:      4.7,
			ReviewCount: 215,
			PurchaseURL: "/gift/6",
			Reason:      "Perfect for someone who values fitness and enjoys tracking their progress with the latest technology.",
		},
		{
			ID:          "7",
			Name:        "Artisanal Coffee Subscription",
			Description: "A 3-month subscription to receive freshly roasted coffee beans from around the world.",
			Price:       6200,
			ImageURL:    "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?q=80&w=800",
			Category:    "Food & Drink",
			Tags:        []string{"Coffee", "Subscription", "Gourmet"},
			Rating:      4.8,
			ReviewCount: 92,
			PurchaseURL: "/gift/7",
			Reason:      "For coffee enthusiasts, this subscription offers a chance to explore new flavors every month.",
		},
		{
			ID:          "8",
			Name:        "Wireless Noise-Cancelling Headphones",
			Description: "Premium headphones with active noise cancellation and exceptional sound quality.",
			Price:       16600,
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=800",
			Category:    "Technology",
			Tags:        []string{"Music", "Technology", "Premium"},
			Rating:      4.9,
			ReviewCount: 178,
			PurchaseURL: "/gift/8",
			Reason:      "These headphones provide an immersive listening experience for music lovers or frequent travelers.",
		},
		{
			ID:          "9",
			Name:        "Indoor Herb Garden Kit",
			Description: "A complete kit for growing fresh herbs indoors, including seeds, pots, and soil.",
			Price:       4100,
			ImageURL:    "https://images.unsplash.com/photo-1585032226651-759b368d7246?q=80&w=800",
			Category:    "Gardening",
			Tags:        []string{"Cooking", "Gardening", "Sustainable"},
			Rating:      4.5,
			ReviewCount: 63,
			PurchaseURL: "/gift/9",
			Reason:      "This combines their interest in cooking with sustainable living, allowing them to grow fresh herbs at home.",
		},
		{
			ID:          "10",
			Name:        "Personalized Star Map",
			Description: "A custom star map showing the night sky from a specific location and date, beautifully framed.",
			Price:       7400,
			ImageURL:    "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?q=80&w=800",
			Category:    "Home Decor",
			Tags:        []string{"Personalized", "Thoughtful", "Romantic"},
			Rating:      4.7,
			ReviewCount: 105,
			PurchaseURL: "/gift/10",
			Reason:      "This thoughtful gift commemorates a special date and location with a beautiful piece of personalized art.",
		},
		{
			ID:          "11",
			Name:        "Virtual Reality Headset",
			Description: "An immersive VR headset with access to hundreds of games and experiences.",
			Price:       24900,
			ImageURL:    "https://images.unsplash.com/photo-1593305841991-05c297ba4575?q=80&w=800",
			Category:    "Technology",
			Tags:        []string{"Gaming", "Technology", "Immersive"},
			Rating:      4.6,
			ReviewCount: 142,
			PurchaseURL: "/gift/11",
			Reason:      "For tech enthusiasts and gamers, this provides countless hours of immersive entertainment.",
		},
		{
			ID:          "12",
			Name:        "Luxury Scented Candle Set",
			Description: "A set of premium scented candles made with natural ingredients and unique fragrance combinations.",
			Price:       5400,
			ImageURL:    "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?q=80&w=800",
			Category:    "Home Decor",
			Tags:        []string{"Relaxation", "Home Decor", "Luxury"},
			Rating:      4.8,
			ReviewCount: 87,
			PurchaseURL: "/gift/12",
			Reason:      "These candles create a relaxing atmosphere and add a touch of luxury to any space.",
		},
		{
			ID:          "13",
			Name:        "Traditional Indian Silk Scarf",
			Description: "Handwoven silk scarf with traditional Indian patterns, perfect for adding elegance to any outfit.",
			Price:       4500,
			ImageURL:    "https://images.unsplash.com/photo-1566454825481-9c31f1f8fcff?q=80&w=800",
			Category:    "Fashion",
			Tags:        []string{"Traditional", "Elegant", "Indian"},
			Rating:      4.7,
			ReviewCount: 68,
			PurchaseURL: "/gift/13",
			Reason:      "This beautiful handcrafted piece celebrates Indian artistry and adds a touch of elegance to any wardrobe.",
		},
		{
			ID:          "14",
			Name:        "Ayurvedic Wellness Gift Box",
			Description: "A curated collection of authentic Ayurvedic wellness products including oils, teas, and incense.",
			Price:       6800,
			ImageURL:    "https://images.unsplash.com/photo-1611072172377-0cabc3addb30?q=80&w=800",
			Category:    "Ayurvedic",
			Tags:        []string{"Wellness", "Traditional", "Self-care"},
			Rating:      4.9,
			ReviewCount: 42,
			PurchaseURL: "/gift/14",
			Reason:      "Perfect for someone interested in holistic wellness and traditional Indian healing practices.",
		},
		{
			ID:          "15",
			Name:        "Handcrafted Brass Decor Piece",
			Description: "Intricately designed brass figurine made by skilled Indian artisans using traditional techniques.",
			Price:       8200,
			ImageURL:    "https://images.unsplash.com/photo-1600431521340-491eca880813?q=80&w=800",
			Category:    "Home Decor",
			Tags:        []string{"Traditional", "Handcrafted", "Ethnic"},
			Rating:      4.8,
			ReviewCount: 56,
			PurchaseURL: "/gift/15",
			Reason:      "This authentic piece brings the rich heritage of Indian craftsmanship into their home.",
		},
		{
			ID:          "16",
			Name:        "Premium Spice Gift Box",
			Description: "Collection of premium Indian spices in an elegant wooden box with detailed recipe cards.",
			Price:       3900,
			ImageURL:    "https://images.unsplash.com/photo-1590794056226-79ef3a8147e1?q=80&w=800",
			Category:    "Cooking",
			Tags:        []string{"Indian", "Gourmet", "Cooking"},
			Rating:      4.7,
			ReviewCount: 93,
			PurchaseURL: "/gift/16",
			Reason:      "Perfect for food enthusiasts who want to explore authentic Indian flavors in their cooking.",
		},
	}
}
