package shared

import (
	"fmt"
	"net/http"
	"strconv"

	"nihom/shared/dto"
	"nihom/shared/failure"
)

// FilterByID builds the single-row filter used by get/update/delete by id.
func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByActive keeps only rows whose active flag is set.
func FilterByActive(fieldIsActive, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldIsActive,
				Value:    true,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FormInt reads an integer form field, falling back to def when the field is
// absent or empty. A present but malformed value is a validation error.
func FormInt(r *http.Request, key string, def int) (int, error) {
	value := r.FormValue(key)
	if value == "" {
		return def, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be an integer", key))
	}

	return parsed, nil
}

// FormRequiredInt reads an integer form field that must be present.
func FormRequiredInt(r *http.Request, key string) (int, error) {
	if r.FormValue(key) == "" {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s is required", key))
	}

	return FormInt(r, key, 0)
}

// FormBool reads a boolean form field, falling back to def when the field is
// absent or empty.
func FormBool(r *http.Request, key string, def bool) (bool, error) {
	value := r.FormValue(key)
	if value == "" {
		return def, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, failure.BadRequestFromString(fmt.Sprintf("%s must be a boolean", key))
	}

	return parsed, nil
}
