package adapter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineWriter(t *testing.T) {
	var lines []string

	w := NewLineWriter(func(line string) { lines = append(lines, line) })

	fmt.Fprint(w, "first\r\nsec")
	assert.Equal(t, []string{"first"}, lines)

	fmt.Fprint(w, "ond\nthird")
	assert.Equal(t, []string{"first", "second"}, lines)

	w.Flush()
	w.Flush()
	assert.Equal(t, []string{"first", "second", "third"}, lines)
}
