package configs

import (
	"github.com/mohitkushwaha4020/zaika/entity"
	"github.com/mohitkushwaha4020/zaika/repository"
)

// SeedMenu fills an empty catalog with the restaurant's starting menu so
// a fresh deployment is usable immediately. A non-empty catalog is left
// alone.
func SeedMenu(catalog repository.MenuCatalog) error {
	existing, err := catalog.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Butter Chicken", Category: "Main Course", Price: 320, Description: "Tandoori chicken in a buttery tomato gravy", Rating: 4.8, Popular: true, Available: true, PreparationTime: 25},
		{Name: "Paneer Tikka", Category: "Starters", Price: 240, Description: "Char-grilled cottage cheese with mint chutney", Rating: 4.6, Popular: true, Available: true, PreparationTime: 15},
		{Name: "Dal Makhani", Category: "Main Course", Price: 220, Description: "Slow-cooked black lentils", Rating: 4.5, Available: true, PreparationTime: 20},
		{Name: "Garlic Naan", Category: "Breads", Price: 60, Description: "Clay-oven naan brushed with garlic butter", Rating: 4.4, Available: true, PreparationTime: 8},
		{Name: "Hyderabadi Biryani", Category: "Main Course", Price: 350, Description: "Layered basmati rice with saffron and spices", Rating: 4.9, Popular: true, Premium: true, Available: true, PreparationTime: 35},
		{Name: "Masala Dosa", Category: "South Indian", Price: 150, Description: "Crisp rice crepe with spiced potato filling", Rating: 4.3, Available: true, PreparationTime: 12},
		{Name: "Gulab Jamun", Category: "Desserts", Price: 90, Description: "Milk dumplings in rose syrup", Rating: 4.7, Available: true, PreparationTime: 5},
		{Name: "Mango Lassi", Category: "Beverages", Price: 80, Description: "Yogurt smoothie with alphonso mango", Rating: 4.5, Available: true, PreparationTime: 5},
	}

	for i := range items {
		if _, err := catalog.Add(&items[i]); err != nil {
			return err
		}
	}
	return nil
}
