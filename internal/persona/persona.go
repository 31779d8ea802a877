// Package persona defines the system-prompt presets that shape the chat
// assistant's tone and strategy. The selected persona's system prompt is
// injected into every LLM completion for a session; conversation history is
// carried separately as chat messages.
package persona

// Persona is a named system-prompt preset.
type Persona struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// SystemPrompt is not exposed over the API.
	SystemPrompt string `json:"-"`
}

const (
	KeyCounselor = "counselor"
	KeyListener  = "listener"
	KeyCoach     = "coach"
	KeyCBT       = "cbt"
)

// presets is ordered; List returns it in this order.
var presets = []Persona{
	{
		Key:          KeyCounselor,
		Name:         "Balanced Counselor",
		Description:  "The balanced and supportive companion that provides empathetic yet structured mental health support.",
		SystemPrompt: counselorPrompt,
	},
	{
		Key:          KeyListener,
		Name:         "Compassionate Listener",
		Description:  "A deeply empathetic companion that focuses on active listening and validation.",
		SystemPrompt: listenerPrompt,
	},
	{
		Key:          KeyCoach,
		Name:         "Motivational Coach",
		Description:  "A high-energy companion that encourages and empowers users to take action for self-improvement.",
		SystemPrompt: coachPrompt,
	},
	{
		Key:          KeyCBT,
		Name:         "CBT Guide",
		Description:  "A rational companion that helps reframe negative thoughts using cognitive behavioral techniques.",
		SystemPrompt: cbtPrompt,
	},
}

var byKey = func() map[string]Persona {
	m := make(map[string]Persona, len(presets))
	for _, p := range presets {
		m[p.Key] = p
	}
	return m
}()

// List returns all persona presets in their display order.
func List() []Persona {
	out := make([]Persona, len(presets))
	copy(out, presets)
	return out
}

// Get returns the persona for a key.
func Get(key string) (Persona, bool) {
	p, ok := byKey[key]
	return p, ok
}

// Default returns the default persona used when a session does not select one.
func Default() Persona {
	return presets[0]
}

// Valid reports whether key names a known persona.
func Valid(key string) bool {
	_, ok := byKey[key]
	return ok
}
