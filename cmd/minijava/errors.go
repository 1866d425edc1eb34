package main

import "errors"

// Sentinel errors for command operations
var (
	ErrInputFileNotExist = errors.New("input file does not exist")
	ErrNoSourceFiles     = errors.New("no source files found")
	ErrCheckFailed       = errors.New("syntax check failed")
	ErrInvalidTokens     = errors.New("source contains invalid tokens")
)
