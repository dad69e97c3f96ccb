package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrProfileNameNotUnique = errors.New("the profile name must be unique")
	ErrMatchRuleNoGlob      = errors.New("the match rule must have a match pattern")
)
