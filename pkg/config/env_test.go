package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")

	assert.Equal(t, "value", GetEnvString("TEST_STR", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_STR_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "42", want: 42},
		{name: "negative", value: "-3", want: -3},
		{name: "not a number", value: "abc", want: 7},
		{name: "trailing garbage", value: "12abc", want: 7},
		{name: "empty", value: "", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("TEST_INT", 7))
		})
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("TEST_INT64", "10485760")
	assert.Equal(t, int64(10485760), GetEnvInt64("TEST_INT64", 1))

	t.Setenv("TEST_INT64", "1.5")
	assert.Equal(t, int64(1), GetEnvInt64("TEST_INT64", 1))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.25")
	assert.InDelta(t, 0.25, GetEnvFloat("TEST_FLOAT", 1), 1e-9)

	t.Setenv("TEST_FLOAT", "quarter")
	assert.InDelta(t, 1.0, GetEnvFloat("TEST_FLOAT", 1), 1e-9)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"FALSE", false},
		{"0", false},
		{"yes", true}, // invalid, falls back to default
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DUR", time.Second))

	t.Setenv("TEST_DUR", "90")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_DUR", time.Second))
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", " https://a.example, ,https://b.example ")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetEnvStringList("TEST_LIST", nil))

	t.Setenv("TEST_LIST", " , ")
	assert.Equal(t, []string{"x"}, GetEnvStringList("TEST_LIST", []string{"x"}))
}
