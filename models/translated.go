package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mbriand/portfolio-backend/errs"
)

// Every user-facing text field is stored as a closed two-key object holding
// an English and a French value. The checks below run on the raw JSON so a
// payload of the wrong shape reaches the validator instead of failing at
// decode time.

// decodeObject parses raw JSON into a key -> raw value map. ok is false when
// raw is absent, null, or not a JSON object.
func decodeObject(raw []byte) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 || isNull(raw) {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// truthy mirrors the presence rule for locale values: a key that holds an
// empty string (or any other empty value) counts as missing.
func truthy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// ValidateTranslatedText checks that raw is an object with exactly the "en"
// and "fr" keys, both holding non-empty strings. baseMsg is the entity's own
// error text; the checks run in a fixed order and the first failure wins.
func ValidateTranslatedText(field string, raw []byte, baseMsg string) error {
	obj, ok := decodeObject(raw)
	if !ok {
		return errs.NewValidationError(field, baseMsg)
	}
	en, enPresent := obj["en"]
	fr, frPresent := obj["fr"]
	if !enPresent || !frPresent || !truthy(en) || !truthy(fr) {
		return errs.NewValidationError(field, baseMsg)
	}
	if len(obj) != 2 {
		return errs.NewValidationError(field, baseMsg+" Found an extra field.")
	}
	var s string
	if json.Unmarshal(en, &s) != nil || json.Unmarshal(fr, &s) != nil {
		return errs.NewValidationError(field, `'en' and 'fr' keys must be of type string.`)
	}
	return nil
}

// ValidateTranslatedLines checks the two-key closure like
// ValidateTranslatedText, but each locale holds an ordered array of strings.
// An empty array is valid; there is no minimum-length rule.
func ValidateTranslatedLines(field string, raw []byte, baseMsg string) error {
	obj, ok := decodeObject(raw)
	if !ok {
		return errs.NewValidationError(field, baseMsg)
	}
	en, enPresent := obj["en"]
	fr, frPresent := obj["fr"]
	if !enPresent || !frPresent || isNull(en) || isNull(fr) {
		return errs.NewValidationError(field, baseMsg)
	}
	if len(obj) != 2 {
		return errs.NewValidationError(field, baseMsg+" Found an extra field.")
	}
	for _, locale := range []string{"en", "fr"} {
		var lines []json.RawMessage
		if err := json.Unmarshal(obj[locale], &lines); err != nil {
			return errs.NewValidationError(field, baseMsg)
		}
		for _, line := range lines {
			var s string
			if json.Unmarshal(line, &s) != nil {
				return errs.NewValidationError(field,
					fmt.Sprintf("'%s' must be an array of strings.", locale))
			}
		}
	}
	return nil
}

// ValidateDate checks a [month, year] pair. The four checks run in a fixed
// order; only the first failing check is reported.
func ValidateDate(field string, raw []byte) error {
	var items []json.RawMessage
	if len(raw) == 0 || isNull(raw) || json.Unmarshal(raw, &items) != nil {
		return errs.NewValidationError(field, "date must be a list.")
	}
	if len(items) != 2 {
		return errs.NewValidationError(field, "date must be of length 2.")
	}
	var month, year int
	if json.Unmarshal(items[0], &month) != nil || json.Unmarshal(items[1], &year) != nil {
		return errs.NewValidationError(field, "Month and year must be integers.")
	}
	if month < 1 || month > 12 {
		return errs.NewValidationError(field, "Month must be in [1, 12].")
	}
	if year < 2000 || year > 2100 {
		return errs.NewValidationError(field, "Year must be in [2000, 2100].")
	}
	return nil
}
