//go:build !no_jpeg2000_unpack

package capability

const jpeg2000UnpackEnabled = true
