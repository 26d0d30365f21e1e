package services

import "testing"

func TestCleanProfileText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "bold markers stripped",
			input:  "**Industry:** Beverages",
			expect: "Industry: Beverages",
		},
		{
			name:   "headings flattened",
			input:  "## Ideal Customer Profile\nMid-size bottlers",
			expect: "Ideal Customer Profile\nMid-size bottlers",
		},
		{
			name:   "bullets normalized",
			input:  "* imports annually\n- pays in USD",
			expect: "• imports annually\n• pays in USD",
		},
		{
			name:   "blank runs collapsed",
			input:  "Overview\n\n\n\nDetails",
			expect: "Overview\n\nDetails",
		},
		{
			name:   "underscore emphasis stripped",
			input:  "__key account__ since 2021",
			expect: "key account since 2021",
		},
		{
			name:   "windows line endings",
			input:  "# Profile\r\n**Summary**",
			expect: "Profile\nSummary",
		},
		{
			name:   "empty input",
			input:  "   \n  ",
			expect: "",
		},
		{
			name:   "plain text untouched",
			input:  "A chemicals importer in Nairobi.",
			expect: "A chemicals importer in Nairobi.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanProfileText(tt.input); got != tt.expect {
				t.Errorf("CleanProfileText(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
