package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/core/core1_0"
	"github.com/vkngwrapper/extensions/khr_surface"
	"testing"
)

func TestChooseSwapSurfaceFormatPrefersSRGB(t *testing.T) {
	app := &GPUTrasherApplication{}

	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	chosen := app.chooseSwapSurfaceFormat(formats)
	assert.Equal(t, core1_0.FormatB8G8R8A8SRGB, chosen.Format)
	assert.Equal(t, khr_surface.ColorSpaceSRGBNonlinear, chosen.ColorSpace)
}

func TestChooseSwapSurfaceFormatFallsBackToFirst(t *testing.T) {
	app := &GPUTrasherApplication{}

	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	chosen := app.chooseSwapSurfaceFormat(formats)
	assert.Equal(t, formats[0], chosen)
}

func TestChooseSwapPresentModePrefersMailbox(t *testing.T) {
	app := &GPUTrasherApplication{}

	modes := []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox}
	assert.Equal(t, khr_surface.PresentModeMailbox, app.chooseSwapPresentMode(modes))
}

func TestChooseSwapPresentModeFallsBackToFIFO(t *testing.T) {
	app := &GPUTrasherApplication{}

	modes := []khr_surface.PresentMode{khr_surface.PresentModeImmediate}
	assert.Equal(t, khr_surface.PresentModeFIFO, app.chooseSwapPresentMode(modes))
}

func TestChooseSwapExtentUsesCurrentExtent(t *testing.T) {
	app := &GPUTrasherApplication{}

	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent: core1_0.Extent2D{Width: 1080, Height: 960},
	}
	assert.Equal(t, core1_0.Extent2D{Width: 1080, Height: 960}, app.chooseSwapExtent(capabilities))
}
