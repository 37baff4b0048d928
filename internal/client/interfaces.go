package client

// Client is a runnable board front end.
type Client interface {
	// Run blocks until the user leaves the board or the process is
	// interrupted.
	Run() error
}

var _ Client = (*App)(nil)
