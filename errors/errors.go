package errors

import "fmt"

var (
	ErrBlankGlobalFormat = fmt.Errorf("'global-format' is blank or does not exist")
	ErrNoGroupProvider   = fmt.Errorf("no group provider configured")
	ErrUnknownUser       = fmt.Errorf("user unknown to group provider")
	ErrNoGroupFormat     = fmt.Errorf("no non-blank group format")
	ErrInvalidColorSpec  = fmt.Errorf("invalid color spec")
)
