// Package parameters handles generic configuration Params, a map[string]string
// parsed from the user's "key=value,key=value" configuration strings.
package parameters

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString creates params from the user's configuration string,
// a comma-separated list of key=value settings. A key without "=value" maps
// to the empty string, which boolean lookups read as true.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		params[key] = value
	}
	return params
}

// PopParamOr is like GetParamOr, but also deletes the retrieved parameter
// from params. Popping every known parameter lets the caller reject whatever
// is left over as unknown.
func PopParamOr[T bool | int | string](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr parses the parameter under key to the given type, or returns
// defaultValue if the key is absent.
//
// For bool, a key present without a value is interpreted as true.
func GetParamOr[T bool | int | string](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	parsed := defaultValue
	switch p := any(&parsed).(type) {
	case *string:
		*p = value
	case *int:
		if value == "" {
			return defaultValue, nil
		}
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		*p = intValue
	case *bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			*p = true
		case "false", "0":
			*p = false
		default:
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	}
	return parsed, nil
}
