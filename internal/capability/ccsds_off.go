//go:build no_ccsds_unpack

package capability

const ccsdsUnpackEnabled = false
