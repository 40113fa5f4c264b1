package crud

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/domain/entity"
)

// Title returns Plural with its first letter upper-cased, e.g. "Medical records".
func (n Names) Title() string {
	r := []rune(n.Plural)
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Lower returns Singular in lower case, e.g. "medical record".
func (n Names) Lower() string {
	return strings.ToLower(n.Singular)
}

// Invalid converts a validation failure into a 400 error. Errors that are
// already *apperror.Error pass through.
func Invalid(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return apperror.BadRequest(verr.Message, verr.Error())
	}
	return apperror.BadRequest("Invalid request", err.Error())
}

// Patch turns an update input whose optional fields are nil pointers tagged
// `json:",omitempty"` into the map of provided fields.
func Patch(in any) (map[string]any, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, apperror.BadRequest("Invalid request", err.Error())
	}
	fields := map[string]any{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, apperror.BadRequest("Invalid request", err.Error())
	}
	return fields, nil
}
