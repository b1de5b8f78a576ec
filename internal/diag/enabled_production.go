//go:build styled_production

package diag

const Enabled = false
