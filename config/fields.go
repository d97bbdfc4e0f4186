package config

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownField is returned when a field name matches nothing in CaveConfig
var ErrUnknownField = errors.New("unknown config field")

// lookupField finds a CaveConfig field by Go name or JSON tag, ignoring case
func lookupField(cfg *CaveConfig, name string) (reflect.Value, string, bool) {
	val := reflect.ValueOf(cfg).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if strings.EqualFold(f.Name, name) || (tag != "" && strings.EqualFold(tag, name)) {
			return val.Field(i), f.Name, true
		}
	}
	return reflect.Value{}, "", false
}

// GetField returns the value of a config field by name
func GetField(cfg *CaveConfig, name string) (interface{}, error) {
	field, _, ok := lookupField(cfg, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownField, "%q", name)
	}
	return field.Interface(), nil
}

// SetField sets a config field by name. Numbers may arrive as any numeric type
// since JSON decodes them as float64. The result is not validated.
func SetField(cfg *CaveConfig, name string, value interface{}) error {
	field, fieldName, ok := lookupField(cfg, name)
	if !ok {
		return errors.Wrapf(ErrUnknownField, "%q", name)
	}

	switch field.Kind() {
	case reflect.Int:
		var intVal int64
		switch v := value.(type) {
		case int:
			intVal = int64(v)
		case int64:
			intVal = v
		case float64:
			if v != float64(int64(v)) {
				return errors.Wrapf(ErrInvalidConfig, "%s needs a whole number, got %v", fieldName, v)
			}
			intVal = int64(v)
		default:
			return errors.Wrapf(ErrInvalidConfig, "cannot convert %T to int for %s", value, fieldName)
		}
		field.SetInt(intVal)

	case reflect.Float64:
		var floatVal float64
		switch v := value.(type) {
		case float64:
			floatVal = v
		case float32:
			floatVal = float64(v)
		case int:
			floatVal = float64(v)
		default:
			return errors.Wrapf(ErrInvalidConfig, "cannot convert %T to float64 for %s", value, fieldName)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return errors.Wrapf(ErrInvalidConfig, "cannot convert %T to bool for %s", value, fieldName)
		}
		field.SetBool(boolVal)

	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return errors.Wrapf(ErrInvalidConfig, "cannot convert %T to string for %s", value, fieldName)
		}
		field.SetString(strVal)

	default:
		return errors.Wrapf(ErrInvalidConfig, "unsupported field type %s for %s", field.Kind(), fieldName)
	}

	// A fixed seed only makes sense with random seeding off
	if fieldName == "Seed" {
		cfg.UseRandomSeed = false
	}

	return nil
}
