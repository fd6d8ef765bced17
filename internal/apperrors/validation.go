// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apperrors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FromValidator converts validator failures into a ValidationError naming the first offending field.
func FromValidator(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return Validation(fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
	}

	return Validation(err.Error())
}
