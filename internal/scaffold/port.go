package scaffold

import "context"

// Port is everything the flows need from the host UI.
type Port interface {
	// PromptForName asks for a name, suggesting defaultName. ok is false
	// when the user dismissed the prompt.
	PromptForName(ctx context.Context, defaultName string) (name string, ok bool, err error)

	// RevealFile shows a generated file to the user.
	RevealFile(ctx context.Context, path string) error

	// NotifyError shows a single error message.
	NotifyError(msg string)
}
