package workout

// Base plan templates per goal. A template is fixed apart from the tier
// label and the advanced set scaling applied in Generate.

func weightLossPlan(tier Tier) Plan {
	return Plan{
		Name:            "Weight Loss Program",
		Description:     "Combination of strength and cardio exercises",
		Type:            TypeCardio,
		Difficulty:      tier,
		DurationMinutes: 45,
		Exercises: []Exercise{
			{Name: "Squats", Sets: 3, Reps: "12-15"},
			{Name: "Push-ups", Sets: 3, Reps: "10-12"},
			{Name: "Plank", Sets: 3, Duration: "30-60 sec"},
			{Name: "Lunges", Sets: 3, Reps: "10 each leg"},
			{Name: "Cardio intervals", Duration: "15-20 min"},
		},
	}
}

func muscleGainPlan(tier Tier) Plan {
	return Plan{
		Name:            "Muscle Building Program",
		Description:     "Strength training with progressive overload",
		Type:            TypeStrength,
		Difficulty:      tier,
		DurationMinutes: 60,
		Exercises: []Exercise{
			{Name: "Bench Press", Sets: 4, Reps: "8-10"},
			{Name: "Barbell Squats", Sets: 4, Reps: "8-10"},
			{Name: "Deadlift", Sets: 3, Reps: "6-8"},
			{Name: "Overhead Press", Sets: 3, Reps: "8-10"},
			{Name: "Pull-ups", Sets: 3, Reps: "to failure"},
		},
	}
}

func maintenancePlan(tier Tier) Plan {
	return Plan{
		Name:            "Fitness Maintenance Program",
		Description:     "Balanced workouts for general health",
		Type:            TypeStrength,
		Difficulty:      tier,
		DurationMinutes: 40,
		Exercises: []Exercise{
			{Name: "Squats", Sets: 3, Reps: "12-15"},
			{Name: "Push-ups", Sets: 3, Reps: "10-15"},
			{Name: "Plank", Sets: 3, Duration: "45 sec"},
			{Name: "Lunges", Sets: 3, Reps: "12 each leg"},
			{Name: "Back extensions", Sets: 3, Reps: "15"},
		},
	}
}

// Imbalance→exercise mapping for the corrective warm-up.
var (
	shoulderCorrectives = []Exercise{
		{Name: "Face Pull", Sets: 3, Reps: "15"},
		{Name: "Chest Stretch", Duration: "30 sec"},
	}

	hipCorrectives = []Exercise{
		{Name: "Side Plank", Sets: 3, Duration: "30 sec"},
		{Name: "Side-lying leg lifts", Sets: 3, Reps: "12"},
	}
)
