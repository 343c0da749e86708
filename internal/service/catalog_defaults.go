package service

import "github.com/guttosm/coffee-builder/internal/domain/model"

// DefaultCatalogs returns the reference price table. Each call returns a fresh copy.
func DefaultCatalogs() model.Catalogs {
	return model.Catalogs{
		BasePrice: DefaultBasePrice,
		Flavors: []model.Option{
			{ID: "normal", Name: "Normal", Description: "Classic coffee blend with balanced flavor", Price: 0, IsBaseline: true, Free: true},
			{ID: "dark", Name: "Dark", Description: "Rich, bold dark roast with intense flavor", Price: 25},
			{ID: "choco", Name: "Choco", Description: "Smooth coffee with rich chocolate notes", Price: 40},
			{ID: "hazelnut", Name: "Hazelnut", Description: "Aromatic coffee with creamy hazelnut flavor", Price: 35},
		},
		Grinds: []model.Option{
			{ID: "whole-bean", Name: "Whole Bean", Description: "Maximum freshness, grind at home", Price: 0, IsBaseline: true, Free: true},
			{ID: "coarse", Name: "Coarse", Description: "Perfect for French press and cold brew", Price: 15},
			{ID: "medium", Name: "Medium", Description: "Ideal for drip coffee makers", Price: 15},
			{ID: "fine", Name: "Fine", Description: "Best for espresso machines", Price: 15},
			{ID: "extra-fine", Name: "Extra Fine", Description: "Perfect for Turkish coffee", Price: 20},
		},
		Sizes: []model.Option{
			{ID: "small", Name: "Small", Description: "8 oz - Perfect for a quick pick-me-up", Price: 0, IsBaseline: true, Free: true},
			{ID: "medium", Name: "Medium", Description: "12 oz - The classic choice", Price: 40},
			{ID: "large", Name: "Large", Description: "16 oz - For serious coffee lovers", Price: 70},
			{ID: "extra-large", Name: "Extra Large", Description: "20 oz - Maximum caffeine boost", Price: 100},
		},
		Milks: []model.Option{
			{ID: "none", Name: "None", Description: "Pure black coffee", Price: 0, IsBaseline: true, Free: true},
			{ID: "whole", Name: "Whole Milk", Description: "Rich and creamy texture", Price: 20},
			{ID: "oat", Name: "Oat Milk", Description: "Creamy plant-based option", Price: 35},
			{ID: "almond", Name: "Almond Milk", Description: "Light, nutty flavor", Price: 30},
			{ID: "soy", Name: "Soy Milk", Description: "Classic dairy alternative", Price: 25},
			{ID: "coconut", Name: "Coconut Milk", Description: "Rich tropical flavor", Price: 40},
			{ID: "hemp", Name: "Hemp Milk", Description: "Nutty, sustainable option", Price: 45},
		},
		Syrups: []model.Addon{
			{ID: "vanilla", Name: "Vanilla", Price: 30},
			{ID: "caramel", Name: "Caramel", Price: 30},
			{ID: "hazelnut-syrup", Name: "Hazelnut", Price: 35},
			{ID: "cinnamon", Name: "Cinnamon", Price: 25},
			{ID: "peppermint", Name: "Peppermint", Price: 30},
			{ID: "coconut-syrup", Name: "Coconut", Price: 40},
			{ID: "almond-syrup", Name: "Almond", Price: 35},
			{ID: "chocolate", Name: "Chocolate", Price: 45},
		},
		Toppings: []model.Addon{
			{ID: "whipped-cream", Name: "Whipped Cream", Price: 25},
			{ID: "cinnamon-powder", Name: "Cinnamon Powder", Price: 15},
			{ID: "cocoa-powder", Name: "Cocoa Powder", Price: 20},
			{ID: "caramel-drizzle", Name: "Caramel Drizzle", Price: 30},
			{ID: "chocolate-shavings", Name: "Chocolate Shavings", Price: 35},
			{ID: "marshmallows", Name: "Marshmallows", Price: 25},
			{ID: "sea-salt", Name: "Sea Salt", Price: 10},
			{ID: "honey", Name: "Honey", Price: 20},
		},
	}
}
