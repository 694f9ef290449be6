//go:build !no_gridpoints_proj

package capability

const gridpointsProjEnabled = true
