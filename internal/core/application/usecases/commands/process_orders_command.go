package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrProcessOrdersCommandIsNotConstructed = errors.New(
		"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor",
	)
	ErrStatusIsInvalid = errors.New("order status must be greater than 0")
)

// ProcessOrdersCommand represents a request to run one pipeline pass over
// the orders currently in a given marketplace status.
//
// Example:
//
//	cmd, err := NewProcessOrdersCommand(2) // status 2: ready for AWB
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, cmd)
type ProcessOrdersCommand struct {
	status int

	guard guard.ConstructorGuard
}

// NewProcessOrdersCommand creates a command for the given feed status
// filter. Returns an error when the status is not a positive code.
func NewProcessOrdersCommand(status int) (ProcessOrdersCommand, error) {
	if status <= 0 {
		return ProcessOrdersCommand{}, ErrStatusIsInvalid
	}

	return ProcessOrdersCommand{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}

// Status returns the marketplace status code the feed is filtered by.
func (c ProcessOrdersCommand) Status() int {
	return c.status
}
