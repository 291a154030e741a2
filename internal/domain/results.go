package domain

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// TestSummary is the outcome a test payload reported about itself.
type TestSummary struct {
	Total  int
	Passed int
	Failed int
	// Text is the summary line or a description of the XML document it came from.
	Text string
}

var textSummary = regexp.MustCompile(`Tests run:\s*(\d+)\s+Passed:\s*(\d+).*?Failed:\s*(\d+)`)

var xmlRoots = []string{"<?xml", "<assemblies", "<test-run", "<test-results", "<testsuites"}

// ParseTestSummary looks for a result summary in the stream a payload sent back. Both the
// text summary line ("Tests run: 10 Passed: 9 ... Failed: 1") and the xUnit, NUnit 2/3 and
// JUnit XML documents are understood. ok is false when neither is present.
func ParseTestSummary(content []byte) (TestSummary, bool) {
	if start := xmlStart(content); start >= 0 {
		if summary, err := parseXMLSummary(content[start:]); err == nil {
			return summary, true
		}
	}

	var (
		summary TestSummary
		found   bool
	)

	// The last summary line wins; payloads print one per assembly before the total.
	for _, line := range strings.Split(string(content), "\n") {
		match := textSummary.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		summary.Total, _ = strconv.Atoi(match[1])
		summary.Passed, _ = strconv.Atoi(match[2])
		summary.Failed, _ = strconv.Atoi(match[3])
		summary.Text = strings.TrimSpace(line)
		found = true
	}

	return summary, found
}

// ParseTestSummaryFile is ParseTestSummary over a file.
func ParseTestSummaryFile(path string) (TestSummary, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return TestSummary{}, false, fmt.Errorf("failed to read results %s: %w", path, err)
	}

	summary, ok := ParseTestSummary(content)

	return summary, ok, nil
}

func xmlStart(content []byte) int {
	start := -1

	for _, root := range xmlRoots {
		if i := bytes.Index(content, []byte(root)); i >= 0 && (start < 0 || i < start) {
			start = i
		}
	}

	return start
}

func parseXMLSummary(content []byte) (TestSummary, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.Strict = false

	var (
		summary  TestSummary
		root     string
		haveRoot bool
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			if haveRoot {
				break
			}

			return TestSummary{}, err
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		name := start.Name.Local
		if !haveRoot {
			root, haveRoot = name, true
		}

		switch {
		case name == "assembly" && root == "assemblies":
			summary.Total += intAttr(start, "total")
			summary.Passed += intAttr(start, "passed")
			summary.Failed += intAttr(start, "failed") + intAttr(start, "errors")
		case name == "test-run" && root == "test-run":
			summary.Total = intAttr(start, "total")
			summary.Passed = intAttr(start, "passed")
			summary.Failed = intAttr(start, "failed")
		case name == "test-results" && root == "test-results":
			summary.Total = intAttr(start, "total")
			summary.Failed = intAttr(start, "failures") + intAttr(start, "errors")
			summary.Passed = summary.Total - summary.Failed - intAttr(start, "not-run")
		case name == "testsuites" && root == "testsuites":
			summary.Total = intAttr(start, "tests")
			summary.Failed = intAttr(start, "failures") + intAttr(start, "errors")
			summary.Passed = summary.Total - summary.Failed
		}
	}

	if !haveRoot {
		return TestSummary{}, errors.New("no xml document")
	}

	summary.Text = fmt.Sprintf("Tests run: %d Passed: %d Failed: %d (%s)", summary.Total, summary.Passed, summary.Failed, root)

	return summary, nil
}

func intAttr(start xml.StartElement, name string) int {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			n, _ := strconv.Atoi(attr.Value)
			return n
		}
	}

	return 0
}
