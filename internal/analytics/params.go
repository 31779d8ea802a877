package analytics

// Parameter describes one core mental health parameter for the keyword
// fallback. Indicators are keywords associated with the problem itself;
// ReverseIndicators are keywords of absence or wellness.
type Parameter struct {
	Name              string
	Description       string
	Indicators        []string
	ReverseIndicators []string
}

// Parameter keys, in the order they appear on the assessment record.
const (
	ParamAnxiety             = "anxiety_level"
	ParamDepression          = "depression_indicators"
	ParamStress              = "stress_level"
	ParamSelfEsteem          = "self_esteem"
	ParamEmotionalRegulation = "emotional_regulation"
	ParamMotivation          = "motivation_level"
	ParamSleepQuality        = "sleep_quality"
)

// ParameterOrder lists all parameter keys in record order.
var ParameterOrder = []string{
	ParamAnxiety,
	ParamDepression,
	ParamStress,
	ParamSelfEsteem,
	ParamEmotionalRegulation,
	ParamMotivation,
	ParamSleepQuality,
}

// Parameters is the static dictionary backing the fallback path.
var Parameters = map[string]Parameter{
	ParamAnxiety: {
		Name:              "anxiety",
		Description:       "Level of anxiety, worry, and nervousness",
		Indicators:        []string{"worry", "nervous", "anxious", "panic", "fear", "overwhelmed", "racing thoughts"},
		ReverseIndicators: []string{"calm", "relaxed", "peaceful", "confident"},
	},
	ParamDepression: {
		Name:              "depression",
		Description:       "Signs of depression, sadness, and hopelessness",
		Indicators:        []string{"sad", "hopeless", "empty", "worthless", "depressed", "no energy", "no motivation"},
		ReverseIndicators: []string{"happy", "hopeful", "energetic", "motivated", "content"},
	},
	ParamStress: {
		Name:              "stress",
		Description:       "Level of stress and pressure",
		Indicators:        []string{"stressed", "pressure", "overwhelmed", "burned out", "exhausted"},
		ReverseIndicators: []string{"relaxed", "manageable", "balanced", "in control"},
	},
	ParamSelfEsteem: {
		Name:              "self_esteem",
		Description:       "Self-worth, confidence, and self-image",
		Indicators:        []string{"confident", "proud", "capable", "worthy", "strong"},
		ReverseIndicators: []string{"worthless", "inadequate", "failure", "incompetent", "weak"},
	},
	ParamEmotionalRegulation: {
		Name:              "emotional_regulation",
		Description:       "Ability to manage and control emotions",
		Indicators:        []string{"emotional control", "manage feelings", "stay calm", "regulate emotions"},
		ReverseIndicators: []string{"emotional outbursts", "can't control", "overwhelming emotions"},
	},
	ParamMotivation: {
		Name:              "motivation",
		Description:       "Drive, enthusiasm, and goal-oriented behavior",
		Indicators:        []string{"motivated", "driven", "enthusiastic", "goals", "ambitious"},
		ReverseIndicators: []string{"unmotivated", "apathetic", "no drive", "giving up", "listless"},
	},
	ParamSleepQuality: {
		Name:              "sleep",
		Description:       "Sleep patterns, quality, and rest",
		Indicators:        []string{"good sleep", "well rested", "sleeping well", "refreshed"},
		ReverseIndicators: []string{"insomnia", "can't sleep", "tired", "exhausted", "sleep problems"},
	},
}
