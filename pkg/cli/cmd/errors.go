package cmd

import "errors"

var errEmptyEditorName = errors.New("editor name must not be empty")
