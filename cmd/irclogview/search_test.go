package main

import "testing"

func TestHighlightQuery(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{
			"plain match",
			"the needle is here", "needle",
			"the " + sColorBoldRed + "needle" + sColorReset + " is here",
		},
		{
			"case insensitive",
			"NEEDLE and needle", "Needle",
			sColorBoldRed + "NEEDLE" + sColorReset + " and " + sColorBoldRed + "needle" + sColorReset,
		},
		{
			// Ⱥ is two bytes, its lowercase ⱥ is three: offsets into a
			// lowered copy would overrun the original.
			"length-changing rune before the match",
			"Ⱥ abc", "abc",
			"Ⱥ " + sColorBoldRed + "abc" + sColorReset,
		},
		{
			"multibyte fold match",
			"Ⱥbc", "ⱥbc",
			sColorBoldRed + "Ⱥbc" + sColorReset,
		},
		{"no match", "nothing here", "zzz", "nothing here"},
		{"empty query", "text", "", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := highlightQuery(tt.text, tt.query); got != tt.want {
				t.Errorf("highlightQuery(%q, %q)\n got %q\nwant %q", tt.text, tt.query, got, tt.want)
			}
		})
	}
}
