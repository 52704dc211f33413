package helper

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance for all DTOs.
var Validate = validator.New()
