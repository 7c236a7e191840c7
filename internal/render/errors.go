package render

import "fmt"

// RenderError reports a failure while executing a template. Err carries the
// engine's message, including the template position, for logging only.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("render template: %v", e.Err)
	}
	return fmt.Sprintf("render template %q: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
