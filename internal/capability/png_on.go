//go:build !no_png_unpack

package capability

const pngUnpackEnabled = true
