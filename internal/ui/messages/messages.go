package messages

import "github.com/fragmede/linkedinify/internal/api"

// View transition messages.
type (
	GoBackMsg      struct{}
	OpenHistoryMsg struct{}
	LogoutMsg      struct{}
)

// AuthMode tells which form produced an AuthResultMsg.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthRegister
)

// Data messages.
type (
	AuthResultMsg struct {
		Mode AuthMode
		Err  error
	}

	TransformResultMsg struct {
		Gen  uint64
		Post string
		Err  error
	}

	HistoryLoadedMsg struct {
		Gen     uint64
		Entries []api.HistoryEntry
		Err     error
	}

	StatusMsg struct {
		Text    string
		IsError bool
	}
)

// ReuseInputMsg asks the composer to take Text as its input.
type ReuseInputMsg struct {
	Text string
}
