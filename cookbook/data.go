package cookbook

// Recipe is one entry in the built-in recipe book.
type Recipe struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	PrepMinutes int      `json:"prepMinutes"`
	CookMinutes int      `json:"cookMinutes"`
	Servings    int      `json:"servings"`
}

// NutritionFacts describes one serving of a food.
type NutritionFacts struct {
	Food        string  `json:"food"`
	ServingSize string  `json:"servingSize"`
	Calories    int     `json:"calories"`
	ProteinG    float64 `json:"proteinG"`
	CarbsG      float64 `json:"carbsG"`
	FatG        float64 `json:"fatG"`
	FiberG      float64 `json:"fiberG"`
}

var recipes = []Recipe{
	{
		Name:        "Pasta Carbonara",
		Description: "Roman pasta with a silky egg and cheese sauce, no cream.",
		Ingredients: []string{"pasta", "eggs", "bacon", "parmesan", "black pepper", "salt"},
		Steps: []string{
			"Boil the pasta in well-salted water until al dente.",
			"Render the bacon in a wide pan until crisp.",
			"Whisk the eggs with grated parmesan and plenty of black pepper.",
			"Toss the drained pasta with the bacon off the heat, then stir in the egg mixture until it coats the pasta.",
			"Loosen with pasta water as needed and serve immediately.",
		},
		PrepMinutes: 10,
		CookMinutes: 15,
		Servings:    2,
	},
	{
		Name:        "Veggie Stir Fry",
		Description: "Quick wok-fried vegetables in a garlic-ginger soy glaze.",
		Ingredients: []string{"broccoli", "bell pepper", "carrot", "garlic", "ginger", "soy sauce", "sesame oil", "rice"},
		Steps: []string{
			"Cook the rice and set aside.",
			"Stir-fry the garlic and ginger in sesame oil until fragrant.",
			"Add the vegetables and fry over high heat until crisp-tender.",
			"Add the soy sauce, toss to glaze, and serve over rice.",
		},
		PrepMinutes: 15,
		CookMinutes: 10,
		Servings:    2,
	},
	{
		Name:        "Apple Crumble",
		Description: "Baked spiced apples under a buttery oat topping.",
		Ingredients: []string{"apple", "oats", "flour", "butter", "brown sugar", "cinnamon"},
		Steps: []string{
			"Toss sliced apples with cinnamon and half the sugar in a baking dish.",
			"Rub the butter into the flour, oats, and remaining sugar to form a crumble.",
			"Cover the apples with the crumble and bake at 190C until golden, about 35 minutes.",
		},
		PrepMinutes: 15,
		CookMinutes: 35,
		Servings:    6,
	},
	{
		Name:        "Greek Salad",
		Description: "No-cook salad of tomato, cucumber, olives, and feta.",
		Ingredients: []string{"tomato", "cucumber", "red onion", "olives", "feta", "olive oil", "oregano"},
		Steps: []string{
			"Cut the tomato, cucumber, and onion into chunky pieces.",
			"Combine with the olives, dress with olive oil and oregano, and top with feta.",
		},
		PrepMinutes: 10,
		CookMinutes: 0,
		Servings:    2,
	},
	{
		Name:        "Banana Pancakes",
		Description: "Fluffy pancakes sweetened with ripe banana.",
		Ingredients: []string{"banana", "flour", "eggs", "milk", "baking powder", "butter"},
		Steps: []string{
			"Mash the banana and whisk it with the eggs and milk.",
			"Fold in the flour and baking powder until just combined.",
			"Cook ladlefuls in butter over medium heat, flipping once bubbles form.",
		},
		PrepMinutes: 10,
		CookMinutes: 15,
		Servings:    3,
	},
	{
		Name:        "Chicken Fried Rice",
		Description: "Weeknight fried rice with chicken, egg, and peas.",
		Ingredients: []string{"rice", "chicken breast", "eggs", "peas", "soy sauce", "garlic", "scallions"},
		Steps: []string{
			"Dice and fry the chicken until cooked through, then set aside.",
			"Scramble the eggs in the same pan and set aside with the chicken.",
			"Fry the garlic, add cold cooked rice and peas, and toss over high heat.",
			"Return the chicken and eggs, season with soy sauce, and finish with scallions.",
		},
		PrepMinutes: 15,
		CookMinutes: 15,
		Servings:    3,
	},
}

// Keyed by lowercase food name.
var nutrition = map[string]NutritionFacts{
	"apple": {
		Food:        "apple",
		ServingSize: "1 medium apple (182g)",
		Calories:    95,
		ProteinG:    0.5,
		CarbsG:      25.1,
		FatG:        0.3,
		FiberG:      4.4,
	},
	"banana": {
		Food:        "banana",
		ServingSize: "1 medium banana (118g)",
		Calories:    105,
		ProteinG:    1.3,
		CarbsG:      27.0,
		FatG:        0.4,
		FiberG:      3.1,
	},
	"egg": {
		Food:        "egg",
		ServingSize: "1 large egg (50g)",
		Calories:    72,
		ProteinG:    6.3,
		CarbsG:      0.4,
		FatG:        4.8,
		FiberG:      0,
	},
	"chicken breast": {
		Food:        "chicken breast",
		ServingSize: "100g, cooked",
		Calories:    165,
		ProteinG:    31.0,
		CarbsG:      0,
		FatG:        3.6,
		FiberG:      0,
	},
	"rice": {
		Food:        "rice",
		ServingSize: "1 cup cooked (158g)",
		Calories:    205,
		ProteinG:    4.3,
		CarbsG:      44.5,
		FatG:        0.4,
		FiberG:      0.6,
	},
	"broccoli": {
		Food:        "broccoli",
		ServingSize: "1 cup chopped (91g)",
		Calories:    31,
		ProteinG:    2.5,
		CarbsG:      6.0,
		FatG:        0.3,
		FiberG:      2.4,
	},
}
