package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageTemplate_Render(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		recruit  string
		expected string
	}{
		{
			name:     "single placeholder",
			content:  "Hi {name}! How's training going?",
			recruit:  "Sarah",
			expected: "Hi Sarah! How's training going?",
		},
		{
			name:     "repeated placeholder",
			content:  "{name}, this one's for you, {name}.",
			recruit:  "Mike",
			expected: "Mike, this one's for you, Mike.",
		},
		{
			name:     "no placeholder",
			content:  "Quick reminder about tomorrow's session.",
			recruit:  "Sarah",
			expected: "Quick reminder about tomorrow's session.",
		},
		{
			name:     "empty name leaves a hole",
			content:  "Hi {name}!",
			recruit:  "",
			expected: "Hi !",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := &MessageTemplate{Content: tt.content}
			assert.Equal(t, tt.expected, template.Render(tt.recruit))
		})
	}
}
