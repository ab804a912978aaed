package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textkit/pkg/i18n"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     i18n.M
		expected string
	}{
		{name: "single", template: "{{count}} days ago", args: i18n.M{"count": 3}, expected: "3 days ago"},
		{name: "several", template: "{{a}} and {{b}}", args: i18n.M{"a": "x", "b": 2.5}, expected: "x and 2.5"},
		{name: "inner spaces", template: "hi {{ name }}", args: i18n.M{"name": "Jo"}, expected: "hi Jo"},
		{name: "unknown kept", template: "{{a}} {{zzz}}", args: i18n.M{"a": 1}, expected: "1 {{zzz}}"},
		{name: "value not re-expanded", template: "{{a}}", args: i18n.M{"a": "{{b}}", "b": "no"}, expected: "{{b}}"},
		{name: "unterminated", template: "x {{a", args: i18n.M{"a": 1}, expected: "x {{a"},
		{name: "no args", template: "{{a}}", expected: "{{a}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.Expand(tt.template, tt.args))
		})
	}
}
