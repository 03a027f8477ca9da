package domain

// Workout — упражнение из каталога.
type Workout struct {
	Title     string  `json:"Title"`
	Desc      string  `json:"Desc"`
	Type      string  `json:"Type"`
	BodyPart  string  `json:"BodyPart"`
	Equipment string  `json:"Equipment"`
	Level     string  `json:"Level"`
	Rating    float64 `json:"Rating"`
}

const (
	WorkoutCardio      = "Cardio"
	WorkoutStrength    = "Strength"
	WorkoutFlexibility = "Flexibility"
	WorkoutRest        = "Rest"
)
