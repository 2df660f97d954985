package domain

import "errors"

var ErrTaskContentRequired = errors.New("task content is required")
