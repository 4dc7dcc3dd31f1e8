package catalog

// specs declares every tool the assistant can call, in the order they are
// presented to the model.
var specs = []*Spec{
	{
		Name:        "add_meal",
		Description: "Log a meal with one or more food items. Use this when the user wants to track food they've eaten.",
		Params: map[string]*Param{
			"name": {
				Type:     "string",
				Desc:     "Name of the meal (e.g., 'Breakfast', 'Lunch', 'Chicken salad')",
				Required: true,
			},
			"meal_type": {
				Type: "string",
				Enum: []string{"breakfast", "lunch", "dinner", "snack", "other"},
				Desc: "Type of meal",
			},
			"items": {
				Type:     "array",
				Desc:     "List of food items in the meal",
				Required: true,
				Items: &Param{
					Type: "object",
					Properties: map[string]*Param{
						"name":      {Type: "string", Desc: "Food item name", Required: true},
						"grams":     {Type: "number", Desc: "Amount in grams", Required: true},
						"calories":  {Type: "integer", Desc: "Calories", Required: true},
						"protein_g": {Type: "number", Desc: "Protein in grams", Required: true},
						"carbs_g":   {Type: "number", Desc: "Carbohydrates in grams", Required: true},
						"fat_g":     {Type: "number", Desc: "Fat in grams", Required: true},
					},
				},
			},
			"timestamp": {
				Type: "string",
				Desc: "ISO timestamp for the meal (optional, defaults to now)",
			},
		},
	},
	{
		Name:        "update_meal",
		Description: "Update a previously logged meal's name, type, or time.",
		Params: map[string]*Param{
			"meal_id": {
				Type:     "string",
				Desc:     "ID of the meal to update",
				Required: true,
			},
			"name": {
				Type: "string",
				Desc: "New meal name",
			},
			"meal_type": {
				Type: "string",
				Enum: []string{"breakfast", "lunch", "dinner", "snack", "other"},
				Desc: "New meal type",
			},
			"timestamp": {
				Type: "string",
				Desc: "New ISO timestamp for when the meal was eaten",
			},
		},
	},
	{
		Name:        "delete_meal",
		Description: "Delete a previously logged meal.",
		Params: map[string]*Param{
			"meal_id": {
				Type:     "string",
				Desc:     "ID of the meal to delete",
				Required: true,
			},
		},
	},
	{
		Name:        "add_workout",
		Description: "Log a workout session. Use this when the user wants to track exercise.",
		Params: map[string]*Param{
			"name": {
				Type:     "string",
				Desc:     "Name of the workout",
				Required: true,
			},
			"workout_type": {
				Type:     "string",
				Enum:     []string{"strength", "cardio", "hiit", "flexibility", "walking", "running", "cycling", "swimming", "sports", "other"},
				Desc:     "Type of workout",
				Required: true,
			},
			"duration_min": {
				Type:     "integer",
				Desc:     "Duration in minutes",
				Required: true,
			},
			"exercises": {
				Type: "array",
				Desc: "Optional list of exercises with sets/reps",
				Items: &Param{
					Type: "object",
					Properties: map[string]*Param{
						"name":      {Type: "string"},
						"sets":      {Type: "integer"},
						"reps":      {Type: "integer"},
						"weight_kg": {Type: "number"},
					},
				},
			},
			"calories_burned": {
				Type: "integer",
				Desc: "Estimated calories burned (optional)",
			},
			"timestamp": {
				Type: "string",
				Desc: "ISO timestamp (optional)",
			},
		},
	},
	{
		Name:        "add_water",
		Description: "Log water intake. Use when user mentions drinking water.",
		Params: map[string]*Param{
			"amount_ml": {
				Type:     "integer",
				Desc:     "Amount of water in milliliters (e.g., 250 for a glass, 500 for a bottle)",
				Required: true,
			},
			"timestamp": {
				Type: "string",
				Desc: "ISO timestamp (optional)",
			},
		},
	},
	{
		Name:        "add_weight",
		Description: "Log body weight measurement.",
		Params: map[string]*Param{
			"weight_kg": {
				Type:     "number",
				Desc:     "Body weight in kilograms",
				Required: true,
			},
			"timestamp": {
				Type: "string",
				Desc: "ISO timestamp (optional)",
			},
			"notes": {
				Type: "string",
				Desc: "Optional notes",
			},
		},
	},
	{
		Name:        "set_goal",
		Description: "Update user's fitness goals and recalculate macro targets.",
		Params: map[string]*Param{
			"goal_type": {
				Type: "string",
				Enum: []string{"cut", "maintain", "bulk"},
				Desc: "Fitness goal type",
			},
			"goal_rate_kg_per_week": {
				Type: "number",
				Desc: "Rate of weight change per week in kg (0-1.0)",
			},
			"activity_level": {
				Type: "string",
				Enum: []string{"sedentary", "light", "moderate", "active", "very_active"},
				Desc: "Activity level",
			},
			"target_weight_kg": {
				Type: "number",
				Desc: "Target weight in kg",
			},
		},
	},
	{
		Name:        "update_profile",
		Description: "Update the user's profile: display name, height, sex, birth date, water goal, or protein ratio.",
		Params: map[string]*Param{
			"display_name": {
				Type: "string",
				Desc: "Display name",
			},
			"height_cm": {
				Type: "number",
				Desc: "Height in centimeters",
			},
			"sex": {
				Type: "string",
				Enum: []string{"male", "female"},
				Desc: "Biological sex, used for calorie calculations",
			},
			"birth_date": {
				Type: "string",
				Desc: "Birth date in YYYY-MM-DD format",
			},
			"water_goal_ml": {
				Type: "number",
				Desc: "Daily water goal in milliliters",
			},
			"protein_ratio": {
				Type: "number",
				Desc: "Protein target in grams per kg of body weight",
			},
		},
	},
	{
		Name:        "search_food",
		Description: "Search for food nutrition information by name or barcode.",
		Params: map[string]*Param{
			"query": {
				Type: "string",
				Desc: "Food name to search for",
			},
			"barcode": {
				Type: "string",
				Desc: "Product barcode to look up",
			},
		},
	},
	{
		Name:        "get_daily_summary",
		Description: "Get today's nutrition and activity summary.",
		Params: map[string]*Param{
			"date": {
				Type: "string",
				Desc: "Date in YYYY-MM-DD format (optional, defaults to today)",
			},
		},
	},
	{
		Name:        "get_weekly_summary",
		Description: "Get nutrition and workout aggregates for the last 7 days.",
		Params: map[string]*Param{
			"end_date": {
				Type: "string",
				Desc: "Last day of the week in YYYY-MM-DD format (optional, defaults to today)",
			},
		},
	},
	{
		Name:        "save_favorite_food",
		Description: "Save a food with its per-100g nutrition as a favorite for quick logging later.",
		Params: map[string]*Param{
			"name": {
				Type:     "string",
				Desc:     "Food name",
				Required: true,
			},
			"calories_per_100g": {
				Type:     "number",
				Desc:     "Calories per 100 grams",
				Required: true,
			},
			"protein_per_100g": {
				Type:     "number",
				Desc:     "Protein per 100 grams",
				Required: true,
			},
			"carbs_per_100g": {
				Type:     "number",
				Desc:     "Carbohydrates per 100 grams",
				Required: true,
			},
			"fat_per_100g": {
				Type:     "number",
				Desc:     "Fat per 100 grams",
				Required: true,
			},
			"default_quantity_g": {
				Type: "number",
				Desc: "Typical serving size in grams (optional)",
			},
		},
	},
	{
		Name:        "list_favorite_foods",
		Description: "List the user's saved favorite foods, most recently used first.",
		Params:      map[string]*Param{},
	},
}
