package domain

import "context"

// ExecFunc is the executable part of a command.
type ExecFunc func(ctx context.Context, args ...any) error

// Command is a globally addressable operation invoked by id from the host UI.
type Command struct {
	ID          string   `json:"id" yaml:"id" mapstructure:"id"`
	Description string   `json:"description" yaml:"description" mapstructure:"description"`
	Exec        ExecFunc `json:"-" yaml:"-" mapstructure:"-"`
}

// CommandInfo is the serializable part of a command, used for palettes and listings.
type CommandInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Info returns the command without its closure.
func (c Command) Info() CommandInfo {
	return CommandInfo{ID: c.ID, Description: c.Description}
}
