package timing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevEnabled := out, enabled
	t.Cleanup(func() { out, enabled = prevOut, prevEnabled })
	out = &buf

	enabled = false
	Log("skipped")
	assert.Empty(t, buf.String())

	enabled = true
	Log("store opened")
	assert.Contains(t, buf.String(), "[TIMING] store opened: +")
	assert.Contains(t, buf.String(), "ms (total: ")
}
