package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "  value ")
	assert.Equal(t, "value", GetEnvString("TEST_STR", "def"))
	assert.Equal(t, "def", GetEnvString("TEST_STR_UNSET", "def"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "2048", 2048},
		{"negative", "-3", -3},
		{"empty", "", 1024},
		{"decimal", "1.5", 1024},
		{"garbage", "lots", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("TEST_INT", 1024))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.75")
	assert.InDelta(t, 0.75, GetEnvFloat("TEST_FLOAT", 0.5), 1e-12)

	t.Setenv("TEST_FLOAT", "half")
	assert.InDelta(t, 0.5, GetEnvFloat("TEST_FLOAT", 0.5), 1e-12)
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
		{"yes", true}, // invalid, default
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "720h")
	assert.Equal(t, 720*time.Hour, GetEnvDuration("TEST_DUR", time.Hour))

	t.Setenv("TEST_DUR", "30 days")
	assert.Equal(t, time.Hour, GetEnvDuration("TEST_DUR", time.Hour))
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", " a, ,b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvStringList("TEST_LIST", nil))

	t.Setenv("TEST_LIST", " , ")
	assert.Equal(t, []string{"x"}, GetEnvStringList("TEST_LIST", []string{"x"}))
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 3 * * *"))
	assert.NoError(t, ValidateCronSchedule("*/15 * * * 1-5"))
	assert.NoError(t, ValidateCronSchedule("@daily"))
	assert.Error(t, ValidateCronSchedule(""))
	assert.Error(t, ValidateCronSchedule("61 * * * *"))
	assert.Error(t, ValidateCronSchedule("every night"))
}

func TestValidatePositiveDuration(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Nanosecond))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.Error(t, ValidatePositiveDuration(-time.Second))
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange(1, 1, 3))
	assert.NoError(t, ValidateIntRange(3, 1, 3))
	assert.Error(t, ValidateIntRange(0, 1, 3))
	assert.Error(t, ValidateIntRange(4, 1, 3))
	assert.Error(t, ValidateIntRange(2, 3, 1))
}
