// Package logging configures the process-wide zerolog logger.
//
// Profiles pick the defaults; PALLETCTL_LOG_* environment variables override them.
package logging
