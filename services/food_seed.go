package services

import (
	"context"

	"github.com/Muskanagrawal2005/AyuBalance/models"
)

// Starter catalog of common Ayurvedic foods.
var seedFoods = []models.FoodItem{
	// Grains
	{Name: "Basmati Rice (Cooked)", ServingSize: "1 cup", Calories: 205, ProteinG: 4.3, CarbsG: 44, FatG: 0.4, FiberG: 0.6,
		Rasa: "Sweet", Virya: "Cooling",
		VataEffect: models.DoshaPacifies, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaAggravates},
	{Name: "Quinoa (Cooked)", ServingSize: "1 cup", Calories: 222, ProteinG: 8, CarbsG: 39, FatG: 3.6, FiberG: 5,
		Rasa: "Sweet", Virya: "Heating",
		VataEffect: models.DoshaPacifies, PittaEffect: models.DoshaAggravates, KaphaEffect: models.DoshaPacifies},
	// Legumes
	{Name: "Mung Dal (Cooked)", ServingSize: "1 cup", Calories: 147, ProteinG: 14, CarbsG: 26, FatG: 0.8, FiberG: 15,
		Rasa: "Sweet", Virya: "Cooling", // tridoshic
		VataEffect: models.DoshaPacifies, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaPacifies},
	{Name: "Red Lentils (Masoor Dal)", ServingSize: "1 cup", Calories: 230, ProteinG: 18, CarbsG: 40, FatG: 0.8, FiberG: 16,
		Rasa: "Sweet", Virya: "Cooling",
		VataEffect: models.DoshaAggravates, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaPacifies},
	// Vegetables
	{Name: "Cooked Spinach", ServingSize: "1 cup", Calories: 41, ProteinG: 5, CarbsG: 7, FatG: 0.5, FiberG: 4,
		Rasa: "Bitter", Virya: "Cooling",
		VataEffect: models.DoshaAggravates, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaPacifies},
	{Name: "Sweet Potato (Baked)", ServingSize: "1 medium", Calories: 103, ProteinG: 2, CarbsG: 24, FatG: 0.2, FiberG: 4,
		Rasa: "Sweet", Virya: "Heating",
		VataEffect: models.DoshaPacifies, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaAggravates},
	// Fruits
	{Name: "Apple (Raw)", ServingSize: "1 medium", Calories: 95, ProteinG: 0.5, CarbsG: 25, FatG: 0.3, FiberG: 4.4,
		Rasa: "Astringent", Virya: "Cooling",
		VataEffect: models.DoshaAggravates, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaPacifies},
	{Name: "Banana (Ripe)", ServingSize: "1 medium", Calories: 105, ProteinG: 1.3, CarbsG: 27, FatG: 0.4, FiberG: 3.1,
		Rasa: "Sweet", Virya: "Heating",
		VataEffect: models.DoshaPacifies, PittaEffect: models.DoshaAggravates, KaphaEffect: models.DoshaAggravates},
	// Dairy & oils
	{Name: "Ghee", ServingSize: "1 tbsp", Calories: 120, ProteinG: 0, CarbsG: 0, FatG: 14, FiberG: 0,
		Rasa: "Sweet", Virya: "Cooling",
		VataEffect: models.DoshaPacifies, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaAggravates},
	{Name: "Warm Milk (Cow)", ServingSize: "1 cup", Calories: 150, ProteinG: 8, CarbsG: 12, FatG: 8, FiberG: 0,
		Rasa: "Sweet", Virya: "Cooling",
		VataEffect: models.DoshaPacifies, PittaEffect: models.DoshaPacifies, KaphaEffect: models.DoshaAggravates},
}

// SeedDefaults inserts the starter catalog when the table is still empty.
// Safe to call on every boot.
func (s *FoodService) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	foods := make([]models.FoodItem, len(seedFoods))
	copy(foods, seedFoods)
	return s.db.WithContext(ctx).Create(&foods).Error
}
