//go:build !styled_production

package diag

// Enabled reports whether diagnostic checks are compiled in.
const Enabled = true
