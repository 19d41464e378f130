package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParent matches errors returned when a theme names a parent that is not registered.
	ErrUnknownParent = errors.New("unknown parent theme")
	// ErrUnknownTheme matches errors returned when a theme name is not registered.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrThemeExists is returned when a theme name is registered twice.
	ErrThemeExists = errors.New("theme already defined")
	ErrEmptyName   = errors.New("theme name must not be empty")
)

// UnknownParentError is returned by Define when the parent theme is not registered.
type UnknownParentError struct {
	Theme  string
	Parent string
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("theme %q: unknown parent theme %q", e.Theme, e.Parent)
}

func (e *UnknownParentError) Unwrap() error {
	return ErrUnknownParent
}

// UnknownThemeError is returned when a lookup names a theme that is not registered.
type UnknownThemeError struct {
	Name string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q", e.Name)
}

func (e *UnknownThemeError) Unwrap() error {
	return ErrUnknownTheme
}
