//go:build no_time_calculation

package capability

const timeCalculationEnabled = false
