package models

// User is the canonical account record. Profile submissions denormalize
// their physiological fields onto it, so those stay optional here.
type User struct {
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender,omitempty"`
	Weight           float64  `json:"weight,omitempty"`
	Height           float64  `json:"height,omitempty"`
	BMI              float64  `json:"bmi,omitempty"`
	FitnessLevel     string   `json:"fitness_level"`
	Goals            []string `json:"goals,omitempty"`
	HealthConditions []string `json:"health_conditions,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// Profile is the richer physiological record, stored in its own collection
// keyed by user_id and copied onto the User on every write.
type Profile struct {
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender,omitempty"`
	Weight           float64  `json:"weight,omitempty"`
	Height           float64  `json:"height,omitempty"`
	BMI              float64  `json:"bmi,omitempty"`
	FitnessLevel     string   `json:"fitness_level"`
	Goals            []string `json:"goals,omitempty"`
	HealthConditions []string `json:"health_conditions,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// AsUser maps a profile onto the denormalized User shape.
func (p Profile) AsUser() User {
	return User{
		UserID:           p.UserID,
		Name:             p.Name,
		Age:              p.Age,
		Gender:           p.Gender,
		Weight:           p.Weight,
		Height:           p.Height,
		BMI:              p.BMI,
		FitnessLevel:     p.FitnessLevel,
		Goals:            p.Goals,
		HealthConditions: p.HealthConditions,
		CreatedAt:        p.CreatedAt,
	}
}
