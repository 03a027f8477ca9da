package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
)

var equipmentMap = map[string]string{
	"none":          "Body Only",
	"bands":         "Bands",
	"barbell":       "Barbell",
	"dumbbell":      "Dumbbell",
	"cable":         "Cable",
	"machine":       "Machine",
	"kettlebell":    "Kettlebells",
	"medicine ball": "Medicine Ball",
	"exercise ball": "Exercise Ball",
}

var levelMap = map[int]string{
	1: "Beginner",
	2: "Intermediate",
	3: "Expert",
}

const (
	defaultEquipment = "Body Only"
	defaultLevel     = "Intermediate"
)

// Catalog — неизменяемый каталог упражнений.
type Catalog struct {
	workouts []domain.Workout
}

func NewCatalog(workouts []domain.Workout) *Catalog {
	return &Catalog{workouts: slices.Clone(workouts)}
}

// LoadCatalog загружает каталог упражнений (JSON-массив) из источника артефактов.
func LoadCatalog(ctx context.Context, src usecase.ArtifactSource, key string) (*Catalog, error) {
	const op = "planner.LoadCatalog"

	data, err := src.Fetch(ctx, key)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var workouts []domain.Workout
	if err := json.Unmarshal(data, &workouts); err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: workouts catalog: %v", e.ErrInvalidModelData, err))
	}

	return NewCatalog(workouts), nil
}

func (c *Catalog) Len() int {
	return len(c.workouts)
}

// workoutGroups — упражнения, подходящие пользователю, по типам тренировки.
type workoutGroups map[string][]domain.Workout

// groupFor отбирает упражнения по оборудованию и уровню и сортирует группы по рейтингу.
func (c *Catalog) groupFor(equipment, level string) workoutGroups {
	groups := workoutGroups{
		domain.WorkoutCardio:      nil,
		domain.WorkoutStrength:    nil,
		domain.WorkoutFlexibility: nil,
	}

	for _, w := range c.workouts {
		if !strings.Contains(w.Equipment, equipment) || w.Level != level {
			continue
		}

		switch w.Type {
		case "Cardio":
			groups[domain.WorkoutCardio] = append(groups[domain.WorkoutCardio], w)
		case "Strength":
			groups[domain.WorkoutStrength] = append(groups[domain.WorkoutStrength], w)
		case "Stretching", "Plyometrics":
			groups[domain.WorkoutFlexibility] = append(groups[domain.WorkoutFlexibility], w)
		}
	}

	for _, g := range groups {
		slices.SortStableFunc(g, func(a, b domain.Workout) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			default:
				return 0
			}
		})
	}

	return groups
}

func mapEquipment(equipment string) string {
	if mapped, ok := equipmentMap[strings.ToLower(strings.TrimSpace(equipment))]; ok {
		return mapped
	}
	return defaultEquipment
}

func mapLevel(level int) string {
	if mapped, ok := levelMap[level]; ok {
		return mapped
	}
	return defaultLevel
}
