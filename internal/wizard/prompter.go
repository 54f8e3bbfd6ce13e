package wizard

// SelectItem is one entry of a single-choice prompt.
type SelectItem struct {
	ID     string
	Label  string
	Detail string
}

// Prompter is the narrow prompting surface the wizard needs. All three
// methods return ok=false when the user dismisses the prompt without
// choosing; err is reserved for I/O failures of the prompting medium.
type Prompter interface {
	// Select shows a single-choice prompt and returns the chosen item id.
	Select(title string, items []SelectItem) (id string, ok bool, err error)

	// Input shows a free-text prompt seeded with initial. Implementations
	// re-prompt inline until validate accepts the value or the user
	// dismisses; a nil validate accepts anything.
	Input(title, initial string, validate func(string) error) (value string, ok bool, err error)

	// PickFolder asks the user for a directory path.
	PickFolder(title string) (dir string, ok bool, err error)
}
