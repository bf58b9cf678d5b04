package stub

// StartupError reports a stub that could not get from Starting to Serving.
// The message is the underlying error's; a listen error already names Addr.
type StartupError struct {
	Service string
	Addr    string
	Err     error
}

func (e *StartupError) Error() string {
	return e.Err.Error()
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
