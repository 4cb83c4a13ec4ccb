package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// Rule is one row of a decision table, derived from a validate tag.
type Rule struct {
	Field     string
	Type      string
	Required  bool
	Min       *int
	Max       *int
	MinLength *int
	MaxLength *int
	Format    string
	NotFuture bool
}

// RecordRules returns the record decision table in field order.
func RecordRules() []Rule {
	return rulesFor(reflect.TypeOf(domain.RecordSubmission{}))
}

func rulesFor(t reflect.Type) []Rule {
	rules := make([]Rule, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}
		rules = append(rules, parseRule(jsonName(f), f.Type, tag))
	}
	return rules
}

func parseRule(name string, typ reflect.Type, tag string) Rule {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	r := Rule{Field: name, Type: typeName(typ.Kind())}
	isString := typ.Kind() == reflect.String

	for _, part := range strings.Split(tag, ",") {
		key, param, _ := strings.Cut(part, "=")
		switch key {
		case "required":
			r.Required = true
		case "gt":
			if n, ok := atoi(param); ok {
				n++
				r.Min = &n
			}
		case "min":
			if n, ok := atoi(param); ok {
				if isString {
					r.MinLength = &n
				} else {
					r.Min = &n
				}
			}
		case "max":
			if n, ok := atoi(param); ok {
				if isString {
					r.MaxLength = &n
				} else {
					r.Max = &n
				}
			}
		case "datetime":
			r.Type = "date"
			r.Format = "YYYY-MM-DD"
		case "notfuture":
			r.NotFuture = true
		}
	}
	return r
}

func typeName(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return k.String()
	}
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
