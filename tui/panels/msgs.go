package panels

// TapeTickMsg advances the tape animation by one step.
type TapeTickMsg struct{}

// SeedSelectedMsg is sent when a topic is picked, from the tape, the
// topics list or the popup menu.
type SeedSelectedMsg struct {
	Seed string
}

// TopicsMenuMsg asks for the topics menu over the tape's segments.
type TopicsMenuMsg struct {
	Segments []string
}

// PopupClosedMsg is sent when the topics menu goes away.
type PopupClosedMsg struct{}

// SeedSubmitMsg is sent when a valid seed is submitted for generation.
type SeedSubmitMsg struct {
	Seed string
}

// LoginSubmitMsg is sent when the login form passes its checks.
type LoginSubmitMsg struct {
	Account  string
	Remember bool
}

// FeatureTickMsg reveals the next title of the feature tour.
type FeatureTickMsg struct{}
