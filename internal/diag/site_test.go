package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHereCapturesCallingFunction(t *testing.T) {
	site := capturedSite()
	assert.True(t, site.IsValid())
	assert.Contains(t, site.Function, "capturedSite")
}

func capturedSite() Site {
	return Here(0)
}

func TestSiteStringFormat(t *testing.T) {
	s := Site{File: "kernel.go", Line: 42, Function: "pkg.buildKernel"}
	assert.Equal(t, "pkg.buildKernel (kernel.go:42)", s.String())

	anon := Site{File: "kernel.go", Line: 7}
	assert.Equal(t, "kernel.go:7", anon.String())
}

func TestZeroSiteIsInvalid(t *testing.T) {
	assert.False(t, Site{}.IsValid())
}
