package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("SENAI_TEST_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"set variable", "host: ${SENAI_TEST_HOST}", "host: db.internal"},
		{"set variable ignores default", "host: ${SENAI_TEST_HOST:localhost}", "host: db.internal"},
		{"unset with default", "port: ${SENAI_TEST_PORT:5432}", "port: 5432"},
		{"unset with empty default", "password: ${SENAI_TEST_PASSWORD:}", "password: "},
		{"unset without default stays", "key: ${SENAI_TEST_MISSING}", "key: ${SENAI_TEST_MISSING}"},
		{"no placeholder", "plain: value", "plain: value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnv(tt.input))
		})
	}
}
