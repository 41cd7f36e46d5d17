package command

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Prompter

// Prompter asks the operator for whatever the flags and config did not
// provide. bosh-cli's ui.UI satisfies it.
type Prompter interface {
	AskForText(label string) (string, error)
	AskForPassword(label string) (string, error)
}
