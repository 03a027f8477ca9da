package planner

import "github.com/DRSN-tech/fitplan-backend/internal/domain"

var (
	threeMeals = []string{"Breakfast", "Lunch", "Dinner"}
	fiveMeals  = []string{"Breakfast", "Snack 1", "Lunch", "Snack 2", "Dinner"}
)

// NutritionGenerator рассчитывает дневные нормы БЖУ и делит их по приемам пищи.
type NutritionGenerator struct{}

func NewNutritionGenerator() *NutritionGenerator {
	return &NutritionGenerator{}
}

func (n *NutritionGenerator) Generate(profile *domain.Profile) domain.NutritionPlan {
	ratios, ok := domain.MacroRatios[profile.MacroPreference]
	if !ok {
		ratios = domain.MacroRatios["balanced"]
	}

	kcal := profile.Calories
	daily := domain.NutrientTargets{
		Calories: kcal,
		Protein:  kcal * ratios.Protein / 4,
		Carbs:    kcal * ratios.Carbs / 4,
		Fat:      kcal * ratios.TotalFat / 9,
		Fiber:    kcal * domain.FiberPerCalorie(profile.DietType),
	}

	order := mealNames(profile.MealsPerDay)
	meals := make(map[string]domain.NutrientTargets, len(order))
	if count := float64(profile.MealsPerDay); count > 0 {
		for _, name := range order {
			meals[name] = domain.NutrientTargets{
				Calories: daily.Calories / count,
				Protein:  daily.Protein / count,
				Carbs:    daily.Carbs / count,
				Fat:      daily.Fat / count,
				Fiber:    daily.Fiber / count,
			}
		}
	}

	return domain.NutritionPlan{
		DailyTargets: daily,
		Meals:        meals,
		MealOrder:    order,
		DietType:     profile.DietType,
		MacroSplit:   ratios,
	}
}

func mealNames(mealsPerDay int) []string {
	if mealsPerDay <= 0 {
		return []string{}
	}
	if mealsPerDay <= len(threeMeals) {
		return append([]string(nil), threeMeals[:mealsPerDay]...)
	}
	return append([]string(nil), fiveMeals[:min(mealsPerDay, len(fiveMeals))]...)
}
