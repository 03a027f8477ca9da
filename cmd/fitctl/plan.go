package main

import (
	"math/rand"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	ml_model "github.com/DRSN-tech/fitplan-backend/internal/infrastructure/ml-model"
	"github.com/DRSN-tech/fitplan-backend/internal/infrastructure/planner"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	questionnairePath string
	workoutsPath      string
	planSeed          int64
)

type planResult struct {
	Cluster       domain.ClusterPrediction `json:"prediction"`
	Overview      domain.PlanOverview      `json:"overview"`
	WorkoutPlan   domain.WorkoutPlan       `json:"workout_plan"`
	NutritionPlan domain.NutritionPlan     `json:"nutrition_plan"`
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a 30-day plan from a questionnaire without the service",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&questionnairePath, "questionnaire", "q", "-", "Questionnaire JSON file (string values), - for stdin")
	planCmd.Flags().StringVar(&workoutsPath, "workouts", "data/workouts.json", "Path to workouts.json")
	planCmd.Flags().Int64Var(&planSeed, "seed", 0, "Random seed, 0 for time-based")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	var q questionnaireFile
	if err := readInput(questionnairePath, cmd.InOrStdin(), &q); err != nil {
		return err
	}

	profile, err := usecase.ProcessQuestionnaire(q.toUseCase())
	if err != nil {
		return err
	}

	model, err := loadModel(cmd.Context())
	if err != nil {
		return err
	}
	prediction, err := model.PredictCluster(profile.Features())
	if err != nil {
		return err
	}

	catalog, err := planner.LoadCatalog(cmd.Context(), ml_model.NewFileSource(""), workoutsPath)
	if err != nil {
		return err
	}

	seed := planSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workouts := planner.NewWorkoutGenerator(catalog, rand.New(rand.NewSource(seed))).Generate(profile)

	return render(cmd.OutOrStdout(), outputFormat, planResult{
		Cluster:       *prediction,
		Overview:      domain.NewPlanOverview(workouts),
		WorkoutPlan:   workouts,
		NutritionPlan: planner.NewNutritionGenerator().Generate(profile),
	})
}

// questionnaireFile — анкета в файле, все значения строками.
type questionnaireFile struct {
	WeightInKg      string `json:"weight_in_kg"`
	HeightInCm      string `json:"height_in_cm"`
	Age             string `json:"age"`
	DaysPerWeek     string `json:"days_per_week"`
	SleepHours      string `json:"sleep_hours"`
	Intensity       string `json:"intensity"`
	ExerciseType    string `json:"exercise_type"`
	CalorieTarget   string `json:"calorie_target"`
	MacroPreference string `json:"macro_preference"`
	DietType        string `json:"diet_type"`
	Equipment       string `json:"equipment"`
	FitnessLevel    string `json:"fitness_level"`
	MealsPerDay     string `json:"meals_per_day"`
}

func (q questionnaireFile) toUseCase() usecase.Questionnaire {
	return usecase.Questionnaire(q)
}
