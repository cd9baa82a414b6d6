package ports

import "context"

// CommandRunner runs an external process to completion.
// Implementations connect the child's stdio to the parent's streams.
type CommandRunner interface {
	Run(ctx context.Context, args []string) error
}
