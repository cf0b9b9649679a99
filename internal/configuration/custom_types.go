package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		SecondsToDurationHookFunc(),
		// curves.FanCurve implements encoding.TextUnmarshaler
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// SecondsToDurationHookFunc returns a mapstructure decode hook for time.Duration values.
// Plain numbers are interpreted as seconds, strings may also use
// the time.ParseDuration format (f.ex. "1500ms").
func SecondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != durationType {
			return data, nil
		}

		switch v := data.(type) {
		case time.Duration:
			return v, nil
		case int:
			return time.Duration(v) * time.Second, nil
		case int64:
			return time.Duration(v) * time.Second, nil
		case float64:
			return time.Duration(v * float64(time.Second)), nil
		case string:
			text := strings.TrimSpace(v)
			if seconds, err := strconv.Atoi(text); err == nil {
				return time.Duration(seconds) * time.Second, nil
			}
			if seconds, err := strconv.ParseFloat(text, 64); err == nil {
				return time.Duration(seconds * float64(time.Second)), nil
			}
			duration, err := time.ParseDuration(text)
			if err != nil {
				return nil, fmt.Errorf("invalid duration %q, use seconds or a duration like '1500ms'", v)
			}
			return duration, nil
		}

		return data, nil
	}
}
