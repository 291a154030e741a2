package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTestSummary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    TestSummary
		found   bool
	}{
		{
			name:    "text summary",
			content: "[PASS] A\n[FAIL] B\nTests run: 2 Passed: 1 Inconclusive: 0 Failed: 1 Ignored: 0\n",
			want:    TestSummary{Total: 2, Passed: 1, Failed: 1, Text: "Tests run: 2 Passed: 1 Inconclusive: 0 Failed: 1 Ignored: 0"},
			found:   true,
		},
		{
			name:    "last summary wins",
			content: "Tests run: 1 Passed: 1 Failed: 0\nTests run: 5 Passed: 5 Failed: 0\n",
			want:    TestSummary{Total: 5, Passed: 5, Text: "Tests run: 5 Passed: 5 Failed: 0"},
			found:   true,
		},
		{
			name: "xunit",
			content: `noise before
<?xml version="1.0" encoding="utf-8"?>
<assemblies>
  <assembly name="a.dll" total="3" passed="2" failed="1" skipped="0" errors="0"/>
  <assembly name="b.dll" total="4" passed="4" failed="0" skipped="0" errors="0"/>
</assemblies>`,
			want:  TestSummary{Total: 7, Passed: 6, Failed: 1, Text: "Tests run: 7 Passed: 6 Failed: 1 (assemblies)"},
			found: true,
		},
		{
			name:    "nunit3",
			content: `<test-run id="0" total="10" passed="8" failed="2"><test-suite total="10" failed="2"/></test-run>`,
			want:    TestSummary{Total: 10, Passed: 8, Failed: 2, Text: "Tests run: 10 Passed: 8 Failed: 2 (test-run)"},
			found:   true,
		},
		{
			name:    "nunit2",
			content: `<test-results total="6" errors="1" failures="1" not-run="1"></test-results>`,
			want:    TestSummary{Total: 6, Passed: 3, Failed: 2, Text: "Tests run: 6 Passed: 3 Failed: 2 (test-results)"},
			found:   true,
		},
		{
			name:    "truncated xunit still counts",
			content: `<assemblies><assembly total="2" passed="2" failed="0">`,
			want:    TestSummary{Total: 2, Passed: 2, Text: "Tests run: 2 Passed: 2 Failed: 0 (assemblies)"},
			found:   true,
		},
		{
			name:    "nothing",
			content: "app started\napp stopped\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ParseTestSummary([]byte(tt.content))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
