package handlers

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"myblog/internal/category"
	"myblog/internal/slug"
)

// fieldRule is one entry of the post payload rule table. The same table
// serves create and update; the two flows differ only in whether required
// fields must be present.
type fieldRule struct {
	field    string
	required bool
	check    func(field string, v any) string
}

// postRules is evaluated in order; the first violated rule's message is
// returned and later rules are not checked.
var postRules = []fieldRule{
	{"title", true, nonBlankString},
	{"slug", true, stringWith(
		validation.Required.Error("cannot be blank"),
		validation.Match(slug.Pattern).Error("must contain only lowercase letters, digits, and single hyphens"),
	)},
	{"content", true, nonBlankString},
	{"category", false, stringWith(
		// ozzo rules skip empty values, so Required keeps "" out of the enum.
		validation.Required.Error("must be a valid category id"),
		validation.In(categoryIDs()...).Error("must be a valid category id"),
	)},
	{"status", false, stringWith(
		validation.Required.Error("must be either draft or published"),
		validation.In("draft", "published").Error("must be either draft or published"),
	)},
	{"tags", false, stringSlice},
	{"description", false, anyString},
	{"suggested_category", false, stringWith(
		validation.Required.Error("must be a valid category id"),
		validation.In(categoryIDs()...).Error("must be a valid category id"),
	)},
}

// validateCreatePost checks an untyped create payload. Returns "" when the
// payload is acceptable, otherwise the first violation.
func validateCreatePost(payload map[string]any) string {
	return validatePost(payload, true)
}

// validateUpdatePost checks an untyped update payload: id is mandatory,
// every other field is optional and only checked when supplied.
func validateUpdatePost(payload map[string]any) string {
	if msg := checkField(payload, fieldRule{"id", true, nonBlankString}, true); msg != "" {
		return msg
	}
	return validatePost(payload, false)
}

// validateMemoContent checks a quick-memo create payload.
func validateMemoContent(payload map[string]any) string {
	v, ok := payload["content"]
	if !ok || v == nil {
		return "Content is required"
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "Content is required"
	}
	return ""
}

func validatePost(payload map[string]any, requireAll bool) string {
	for _, rule := range postRules {
		if msg := checkField(payload, rule, requireAll); msg != "" {
			return msg
		}
	}
	return ""
}

// checkField applies one rule. JSON null is treated the same as an absent key.
func checkField(payload map[string]any, rule fieldRule, requireAll bool) string {
	v, present := payload[rule.field]
	if !present || v == nil {
		if rule.required && requireAll {
			return rule.field + " is required"
		}
		return ""
	}
	return rule.check(rule.field, v)
}

// nonBlankString requires a string value with non-whitespace content.
func nonBlankString(field string, v any) string {
	s, ok := v.(string)
	if !ok {
		return field + " must be a string"
	}
	if err := validation.Validate(strings.TrimSpace(s), validation.Required.Error("cannot be blank")); err != nil {
		return field + " " + err.Error()
	}
	return ""
}

// anyString requires a string value of any content.
func anyString(field string, v any) string {
	if _, ok := v.(string); !ok {
		return field + " must be a string"
	}
	return ""
}

// stringWith builds a check that requires a string value passing the given
// ozzo rules, prefixing their message with the field name.
func stringWith(rules ...validation.Rule) func(string, any) string {
	return func(field string, v any) string {
		s, ok := v.(string)
		if !ok {
			return field + " must be a string"
		}
		if err := validation.Validate(s, rules...); err != nil {
			return field + " " + err.Error()
		}
		return ""
	}
}

// stringSlice requires an ordered sequence whose every element is a string.
func stringSlice(field string, v any) string {
	items, ok := v.([]any)
	if !ok {
		return field + " must be an array of strings"
	}
	for _, item := range items {
		if _, ok := item.(string); !ok {
			return field + " must be an array of strings"
		}
	}
	return ""
}

// categoryIDs adapts the catalog to ozzo's In rule.
func categoryIDs() []any {
	ids := make([]any, len(category.Catalog))
	for i, c := range category.Catalog {
		ids[i] = c.ID
	}
	return ids
}
