package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutPath(t *testing.T) {
	assert.Equal(t, "notes.txt.tlk", defaultOutPath("notes.txt", false))
	assert.Equal(t, "notes.txt", defaultOutPath("notes.txt.tlk", true))
	assert.Equal(t, "", defaultOutPath("notes.txt", true), "no extension to strip, caller must use -o")
	assert.Equal(t, "", defaultOutPath(".tlk", true), "stripping would leave an empty path")
}
