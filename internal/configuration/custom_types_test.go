package configuration

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsToDurationHookFunc(t *testing.T) {
	hook := SecondsToDurationHookFunc()
	durationType := reflect.TypeOf(time.Duration(0))

	var tests = []struct {
		tn    string
		input interface{}
		want  time.Duration
	}{
		{tn: "int seconds", input: 5, want: 5 * time.Second},
		{tn: "int64 seconds", input: int64(2), want: 2 * time.Second},
		{tn: "float seconds", input: 0.5, want: 500 * time.Millisecond},
		{tn: "string seconds", input: "5", want: 5 * time.Second},
		{tn: "string float seconds", input: "2.5", want: 2500 * time.Millisecond},
		{tn: "string duration", input: "250ms", want: 250 * time.Millisecond},
		{tn: "duration", input: 3 * time.Second, want: 3 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.tn, func(t *testing.T) {
			// WHEN
			result, err := hook(reflect.TypeOf(tt.input), durationType, tt.input)

			// THEN
			assert.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestSecondsToDurationHookFunc_Invalid(t *testing.T) {
	// GIVEN
	hook := SecondsToDurationHookFunc()

	// WHEN
	_, err := hook(reflect.TypeOf(""), reflect.TypeOf(time.Duration(0)), "five")

	// THEN
	assert.Error(t, err)
}

func TestSecondsToDurationHookFunc_IgnoresOtherTypes(t *testing.T) {
	// GIVEN
	hook := SecondsToDurationHookFunc()

	// WHEN
	result, err := hook(reflect.TypeOf(""), reflect.TypeOf(""), "5")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "5", result)
}
