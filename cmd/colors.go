package cmd

import (
	"strings"

	"github.com/fatih/color"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatStatusWithColor(status string) string {
	switch strings.ToUpper(status) {
	case "PRESENT_CONFIRMED", "COMPLETED":
		return colorSuccess(status)
	case "PRESENT_PARTIAL", "MANUAL_REQUIRED", "NEEDS_ENTITY_INPUT", "REQUIRES_PROVIDER":
		return colorWarn(status)
	case "ABSENT", "ERROR":
		return colorError(status)
	case "QUEUED", "RUNNING", "SKIPPED":
		return colorInfo(status)
	default:
		return status
	}
}
