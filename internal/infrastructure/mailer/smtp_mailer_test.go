package mailer

import (
	"strings"
	"testing"
)

// The data keys here mirror what the invitation flows actually send; every
// placeholder in the templates must be covered by one of them.
func TestTemplatesRenderWithoutLeftovers(t *testing.T) {
	cases := []struct {
		template string
		data     map[string]string
	}{
		{
			template: TemplateFriendInvitation,
			data: map[string]string{
				"targetName": "Bob",
				"senderName": "Alice",
				"appName":    "gather",
			},
		},
		{
			template: TemplateEventInvitation,
			data: map[string]string{
				"targetName":    "Bob",
				"organizerName": "Alice",
				"eventName":     "Party",
				"eventDate":     "2026-09-12",
				"appName":       "gather",
			},
		},
	}
	for _, tc := range cases {
		body, err := renderTemplate(tc.template, tc.data)
		if err != nil {
			t.Fatalf("render %s failed: %v", tc.template, err)
		}
		if strings.Contains(body, "{{") || strings.Contains(body, "}}") {
			t.Fatalf("template %s left placeholders unfilled:\n%s", tc.template, body)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := renderTemplate("no-such-template", nil); err == nil {
		t.Fatal("expected an error for an unknown template")
	}
}
