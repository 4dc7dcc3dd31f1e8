package runtime

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/repo"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/foodfacts"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/macro"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
	"github.com/kinetra/kinetra/pkg/logger"
)

// Toolset implements the domain operation behind each catalog tool. Every
// handler acts only on the given user's data.
type Toolset struct {
	mealRepo     repo.MealRepository
	workoutRepo  repo.WorkoutRepository
	trackingRepo repo.TrackingRepository
	profileRepo  repo.ProfileRepository
	favoriteRepo repo.FavoriteRepository
	foodClient   *foodfacts.Client

	now   func() time.Time
	newID func() string
}

// NewToolset wires the handlers to their repositories.
func NewToolset(
	mealRepo repo.MealRepository,
	workoutRepo repo.WorkoutRepository,
	trackingRepo repo.TrackingRepository,
	profileRepo repo.ProfileRepository,
	favoriteRepo repo.FavoriteRepository,
	foodClient *foodfacts.Client,
) *Toolset {
	return &Toolset{
		mealRepo:     mealRepo,
		workoutRepo:  workoutRepo,
		trackingRepo: trackingRepo,
		profileRepo:  profileRepo,
		favoriteRepo: favoriteRepo,
		foodClient:   foodClient,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

func (t *Toolset) AddMeal(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	name, err := requireString(args, "name")
	if err != nil {
		return nil, err
	}
	eatenAt, err := argTime(args, "timestamp", t.now())
	if err != nil {
		return nil, err
	}

	mealType := entity.MealOther
	if mt, ok := argString(args, "meal_type"); ok {
		mealType = entity.MealType(mt)
	}

	rawItems, _ := args["items"].([]interface{})
	if len(rawItems) == 0 {
		return nil, fmt.Errorf("argument %q must be a non-empty array", "items")
	}

	meal := &entity.Meal{
		ID:        t.newID(),
		UserID:    userID,
		Name:      name,
		MealType:  mealType,
		EatenAt:   eatenAt,
		CreatedAt: t.now(),
	}

	for i, raw := range rawItems {
		itemArgs, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("items[%d] must be an object", i)
		}
		item, err := parseFoodItem(itemArgs)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		item.ID = t.newID()
		meal.Items = append(meal.Items, item)
	}
	meal.RecalculateTotals()

	if err := t.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}
	t.touchFavorites(ctx, userID, meal.Items)

	return map[string]interface{}{
		"meal_id":         meal.ID,
		"name":            meal.Name,
		"total_calories":  meal.TotalCalories,
		"total_protein_g": meal.TotalProteinG,
	}, nil
}

// touchFavorites refreshes the last-used timestamp of favorites whose name
// matches a logged item, keeping list_favorite_foods in recency order.
// Errors are logged, not returned.
func (t *Toolset) touchFavorites(ctx context.Context, userID string, items []*entity.FoodItem) {
	favorites, err := t.favoriteRepo.List(ctx, userID)
	if err != nil {
		logger.Warn("[Toolset] list favorites failed: %v", err)
		return
	}
	for _, f := range favorites {
		for _, item := range items {
			if strings.EqualFold(f.Name, item.Name) {
				if err := t.favoriteRepo.Touch(ctx, userID, f.ID); err != nil {
					logger.Warn("[Toolset] touch favorite %s failed: %v", f.ID, err)
				}
				break
			}
		}
	}
}

func parseFoodItem(args map[string]interface{}) (*entity.FoodItem, error) {
	name, err := requireString(args, "name")
	if err != nil {
		return nil, err
	}
	calories, err := requireFloat(args, "calories")
	if err != nil {
		return nil, err
	}
	protein, err := requireFloat(args, "protein_g")
	if err != nil {
		return nil, err
	}
	carbs, err := requireFloat(args, "carbs_g")
	if err != nil {
		return nil, err
	}
	fat, err := requireFloat(args, "fat_g")
	if err != nil {
		return nil, err
	}
	grams, ok := argFloat(args, "grams")
	if !ok {
		grams = 100
	}

	return &entity.FoodItem{
		Name:      name,
		QuantityG: grams,
		Calories:  calories,
		ProteinG:  protein,
		CarbsG:    carbs,
		FatG:      fat,
		Source:    entity.SourceChat,
	}, nil
}

func (t *Toolset) UpdateMeal(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	mealID, err := requireString(args, "meal_id")
	if err != nil {
		return nil, err
	}

	meal, err := t.mealRepo.Get(ctx, userID, mealID)
	if err != nil {
		if err == errno.ErrMealNotFound {
			return nil, fmt.Errorf("Meal not found")
		}
		return nil, err
	}

	if name, ok := argString(args, "name"); ok {
		meal.Name = name
	}
	if mt, ok := argString(args, "meal_type"); ok {
		meal.MealType = entity.MealType(mt)
	}
	if _, ok := argString(args, "timestamp"); ok {
		eatenAt, err := argTime(args, "timestamp", meal.EatenAt)
		if err != nil {
			return nil, err
		}
		meal.EatenAt = eatenAt
	}

	if err := t.mealRepo.Update(ctx, meal); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"meal_id":   meal.ID,
		"name":      meal.Name,
		"meal_type": string(meal.MealType),
	}, nil
}

func (t *Toolset) DeleteMeal(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	mealID, err := requireString(args, "meal_id")
	if err != nil {
		return nil, err
	}

	if err := t.mealRepo.Delete(ctx, userID, mealID); err != nil {
		if err == errno.ErrMealNotFound {
			return nil, fmt.Errorf("Meal not found")
		}
		return nil, err
	}

	return map[string]interface{}{
		"meal_id": mealID,
		"deleted": true,
	}, nil
}

func (t *Toolset) AddWorkout(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	name, err := requireString(args, "name")
	if err != nil {
		return nil, err
	}
	duration, err := requireFloat(args, "duration_min")
	if err != nil {
		return nil, err
	}
	performedAt, err := argTime(args, "timestamp", t.now())
	if err != nil {
		return nil, err
	}

	workoutType := entity.WorkoutOther
	if wt, ok := argString(args, "workout_type"); ok {
		workoutType = entity.WorkoutType(wt)
	}

	log := &entity.WorkoutLog{
		ID:          t.newID(),
		UserID:      userID,
		Name:        name,
		WorkoutType: workoutType,
		DurationMin: duration,
		PerformedAt: performedAt,
		CreatedAt:   t.now(),
	}
	if burned, ok := argFloat(args, "calories_burned"); ok {
		log.CaloriesBurned = &burned
	}
	if rawExercises, ok := args["exercises"].([]interface{}); ok {
		for _, raw := range rawExercises {
			exArgs, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			ex := &entity.Exercise{}
			ex.Name, _ = argString(exArgs, "name")
			if sets, ok := argFloat(exArgs, "sets"); ok {
				ex.Sets = int(sets)
			}
			if reps, ok := argFloat(exArgs, "reps"); ok {
				ex.Reps = int(reps)
			}
			if w, ok := argFloat(exArgs, "weight_kg"); ok {
				ex.WeightKg = &w
			}
			log.Exercises = append(log.Exercises, ex)
		}
	}

	if err := t.workoutRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"workout_id":   log.ID,
		"name":         log.Name,
		"duration_min": log.DurationMin,
	}, nil
}

func (t *Toolset) AddWater(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	amount, err := requireFloat(args, "amount_ml")
	if err != nil {
		return nil, err
	}
	drankAt, err := argTime(args, "timestamp", t.now())
	if err != nil {
		return nil, err
	}

	entry := &entity.WaterEntry{
		ID:       t.newID(),
		UserID:   userID,
		AmountMl: amount,
		DrankAt:  drankAt,
	}
	if err := t.trackingRepo.CreateWater(ctx, entry); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"entry_id":  entry.ID,
		"amount_ml": entry.AmountMl,
	}, nil
}

func (t *Toolset) AddWeight(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	weight, err := requireFloat(args, "weight_kg")
	if err != nil {
		return nil, err
	}
	measuredAt, err := argTime(args, "timestamp", t.now())
	if err != nil {
		return nil, err
	}

	entry := &entity.BodyWeightEntry{
		ID:         t.newID(),
		UserID:     userID,
		WeightKg:   weight,
		MeasuredAt: measuredAt,
	}
	entry.Notes, _ = argString(args, "notes")

	if err := t.trackingRepo.CreateWeight(ctx, entry); err != nil {
		return nil, err
	}

	// The profile's current weight follows the latest measurement.
	profile, err := t.loadOrInitProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.CurrentWeightKg = &weight
	profile.UpdatedAt = t.now()
	if err := t.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"entry_id":  entry.ID,
		"weight_kg": entry.WeightKg,
	}, nil
}

func (t *Toolset) SetGoal(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	profile, err := t.loadOrInitProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if gt, ok := argString(args, "goal_type"); ok {
		goal := entity.GoalType(gt)
		profile.GoalType = &goal
	}
	rateWarning := ""
	if rate, ok := argFloat(args, "goal_rate_kg_per_week"); ok {
		goal := entity.GoalType("")
		if profile.GoalType != nil {
			goal = *profile.GoalType
		}
		safe, reason := macro.ValidateGoalRate(goal, rate)
		if !safe {
			return nil, fmt.Errorf("%s", reason)
		}
		rateWarning = reason
		profile.WeeklyRateKg = &rate
	}
	if al, ok := argString(args, "activity_level"); ok {
		level := entity.ActivityLevel(al)
		profile.ActivityLevel = &level
	}
	if target, ok := argFloat(args, "target_weight_kg"); ok {
		profile.TargetWeightKg = &target
	}

	// Macro targets are recalculated only when the body metrics are all
	// known; otherwise the goal fields still update and the call succeeds.
	age := profile.Age(t.now())
	if profile.Sex != nil && age > 0 && profile.HeightCm != nil && profile.CurrentWeightKg != nil {
		in := macro.Input{
			Sex:      *profile.Sex,
			WeightKg: *profile.CurrentWeightKg,
			HeightCm: *profile.HeightCm,
			Age:      age,
		}
		if profile.ActivityLevel != nil {
			in.ActivityLevel = *profile.ActivityLevel
		}
		if profile.GoalType != nil {
			in.GoalType = *profile.GoalType
		}
		if profile.WeeklyRateKg != nil {
			in.GoalRateKgPerWeek = *profile.WeeklyRateKg
		}
		if profile.ProteinRatio != nil {
			in.ProteinPerKg = *profile.ProteinRatio
		}

		targets := macro.Calculate(in)
		calories := float64(targets.Calories)
		profile.CaloriesTarget = &calories
		profile.ProteinTargetG = &targets.ProteinG
		profile.CarbsTargetG = &targets.CarbsG
		profile.FatTargetG = &targets.FatG
		profile.FiberTargetG = &targets.FiberG
	}

	profile.UpdatedAt = t.now()
	if err := t.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	result := map[string]interface{}{}
	if profile.GoalType != nil {
		result["goal_type"] = string(*profile.GoalType)
	}
	if profile.ActivityLevel != nil {
		result["activity_level"] = string(*profile.ActivityLevel)
	}
	if rateWarning != "" {
		result["rate_warning"] = rateWarning
	}
	if profile.CurrentWeightKg != nil && profile.TargetWeightKg != nil && profile.WeeklyRateKg != nil {
		if weeks := macro.EstimateWeeksToGoal(*profile.CurrentWeightKg, *profile.TargetWeightKg, *profile.WeeklyRateKg); weeks > 0 {
			result["estimated_weeks"] = weeks
		}
	}
	return result, nil
}

func (t *Toolset) UpdateProfile(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	profile, err := t.loadOrInitProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := map[string]interface{}{}
	if name, ok := argString(args, "display_name"); ok {
		profile.DisplayName = name
		updated["display_name"] = name
	}
	if height, ok := argFloat(args, "height_cm"); ok {
		profile.HeightCm = &height
		updated["height_cm"] = height
	}
	if sex, ok := argString(args, "sex"); ok {
		s := entity.Sex(sex)
		profile.Sex = &s
		updated["sex"] = sex
	}
	if birth, ok := argString(args, "birth_date"); ok {
		d, err := time.ParseInLocation("2006-01-02", birth, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a valid date: %q", "birth_date", birth)
		}
		profile.BirthDate = &d
		updated["birth_date"] = birth
	}
	if goal, ok := argFloat(args, "water_goal_ml"); ok {
		profile.WaterGoalMl = &goal
		updated["water_goal_ml"] = goal
	}
	if ratio, ok := argFloat(args, "protein_ratio"); ok {
		profile.ProteinRatio = &ratio
		updated["protein_ratio"] = ratio
	}

	profile.UpdatedAt = t.now()
	if err := t.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return updated, nil
}

func (t *Toolset) SearchFood(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	if barcode, ok := argString(args, "barcode"); ok {
		product, err := t.foodClient.GetByBarcode(ctx, barcode)
		if err != nil {
			if err == errno.ErrProductNotFound {
				return nil, fmt.Errorf("Product not found")
			}
			return nil, err
		}
		return map[string]interface{}{
			"name":              product.Name,
			"brand":             product.Brand,
			"calories_per_100g": product.CaloriesPer100g,
			"protein_per_100g":  product.ProteinPer100g,
			"carbs_per_100g":    product.CarbsPer100g,
			"fat_per_100g":      product.FatPer100g,
		}, nil
	}

	if query, ok := argString(args, "query"); ok {
		products, err := t.foodClient.Search(ctx, query, 5)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]interface{}, 0, len(products))
		for _, p := range products {
			out = append(out, map[string]interface{}{
				"name":              p.Name,
				"brand":             p.Brand,
				"calories_per_100g": p.CaloriesPer100g,
			})
		}
		return out, nil
	}

	return nil, fmt.Errorf("No query or barcode provided")
}

func (t *Toolset) GetDailySummary(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	day, err := argDate(args, "date", t.now())
	if err != nil {
		return nil, err
	}
	return t.summarizeDay(ctx, userID, day)
}

func (t *Toolset) summarizeDay(ctx context.Context, userID string, day time.Time) (*entity.DailySummary, error) {
	start := day
	end := day.Add(24 * time.Hour)

	meals, err := t.mealRepo.ListByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	water, err := t.trackingRepo.ListWaterByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &entity.DailySummary{
		Date:       day.Format("2006-01-02"),
		MealsCount: len(meals),
	}
	for _, m := range meals {
		summary.Calories += m.TotalCalories
		summary.ProteinG += m.TotalProteinG
		summary.CarbsG += m.TotalCarbsG
		summary.FatG += m.TotalFatG
	}
	for _, w := range water {
		summary.WaterMl += w.AmountMl
	}
	return summary, nil
}

func (t *Toolset) GetWeeklySummary(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	endDay, err := argDate(args, "end_date", t.now())
	if err != nil {
		return nil, err
	}
	start := endDay.AddDate(0, 0, -6)
	end := endDay.Add(24 * time.Hour)

	meals, err := t.mealRepo.ListByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	water, err := t.trackingRepo.ListWaterByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	workouts, err := t.workoutRepo.ListByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &entity.WeeklySummary{
		StartDate:     start.Format("2006-01-02"),
		EndDate:       endDay.Format("2006-01-02"),
		MealsCount:    len(meals),
		WorkoutsCount: len(workouts),
	}
	for _, m := range meals {
		summary.Calories += m.TotalCalories
		summary.ProteinG += m.TotalProteinG
		summary.CarbsG += m.TotalCarbsG
		summary.FatG += m.TotalFatG
	}
	for _, w := range water {
		summary.WaterMl += w.AmountMl
	}
	for _, w := range workouts {
		summary.WorkoutMinutes += w.DurationMin
	}
	summary.AvgDailyCals = summary.Calories / 7
	summary.AvgDailyProtein = summary.ProteinG / 7
	return summary, nil
}

func (t *Toolset) SaveFavoriteFood(ctx context.Context, userID string, args map[string]interface{}) (interface{}, error) {
	name, err := requireString(args, "name")
	if err != nil {
		return nil, err
	}
	calories, err := requireFloat(args, "calories_per_100g")
	if err != nil {
		return nil, err
	}
	protein, err := requireFloat(args, "protein_per_100g")
	if err != nil {
		return nil, err
	}
	carbs, err := requireFloat(args, "carbs_per_100g")
	if err != nil {
		return nil, err
	}
	fat, err := requireFloat(args, "fat_per_100g")
	if err != nil {
		return nil, err
	}

	favorite := &entity.SavedFood{
		ID:              t.newID(),
		UserID:          userID,
		Name:            name,
		CaloriesPer100g: calories,
		ProteinPer100g:  protein,
		CarbsPer100g:    carbs,
		FatPer100g:      fat,
		LastUsedAt:      t.now(),
		CreatedAt:       t.now(),
	}
	if qty, ok := argFloat(args, "default_quantity_g"); ok {
		favorite.DefaultQuantityG = qty
	}

	if err := t.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"favorite_id": favorite.ID,
		"name":        favorite.Name,
	}, nil
}

func (t *Toolset) ListFavoriteFoods(ctx context.Context, userID string, _ map[string]interface{}) (interface{}, error) {
	favorites, err := t.favoriteRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, map[string]interface{}{
			"favorite_id":       f.ID,
			"name":              f.Name,
			"calories_per_100g": f.CaloriesPer100g,
			"protein_per_100g":  f.ProteinPer100g,
			"carbs_per_100g":    f.CarbsPer100g,
			"fat_per_100g":      f.FatPer100g,
		})
	}
	return out, nil
}

// loadOrInitProfile returns the stored profile, or a fresh one only for a
// user who has never saved profile data. Any other storage error propagates:
// saving a blank profile over an unreadable one would destroy it.
func (t *Toolset) loadOrInitProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profile, err := t.profileRepo.Get(ctx, userID)
	if err == errno.ErrProfileNotFound {
		return &entity.UserProfile{
			ID:        userID,
			CreatedAt: t.now(),
			UpdatedAt: t.now(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
