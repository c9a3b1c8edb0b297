// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// verboseEnabled reports whether verbose diagnostics were requested,
// typically via the sync command's --verbose flag.
func verboseEnabled() bool {
	return os.Getenv("BUILDSYNC_VERBOSE") == "1"
}

// GRPCErrorType represents the category of gRPC error
type GRPCErrorType int

const (
	GRPCErrorUnknown GRPCErrorType = iota
	GRPCErrorNetwork
	GRPCErrorTimeout
	GRPCErrorInternal
	GRPCErrorUnavailable
)

// ParseGRPCError categorizes a gRPC error message
func ParseGRPCError(errMsg string) GRPCErrorType {
	lower := strings.ToLower(errMsg)

	// Check for specific error patterns
	if strings.Contains(lower, "rst_stream") || strings.Contains(lower, "connection reset") || strings.Contains(lower, "connection refused") {
		return GRPCErrorNetwork
	}
	if strings.Contains(lower, "internal_error") {
		return GRPCErrorInternal
	}
	if strings.Contains(lower, "unavailable") || strings.Contains(lower, "service unavailable") {
		return GRPCErrorUnavailable
	}
	if strings.Contains(lower, "deadline") || strings.Contains(lower, "timeout") {
		return GRPCErrorTimeout
	}

	return GRPCErrorUnknown
}

// FormatConnectionError formats a daemon connection error in a user-friendly way
func FormatConnectionError(errMsg string) string {
	errType := ParseGRPCError(errMsg)

	var builder strings.Builder

	// Title
	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Daemon Connection Lost"))
	builder.WriteString("\n\n")

	// User-friendly description
	switch errType {
	case GRPCErrorNetwork:
		builder.WriteString("The connection to the build daemon was interrupted unexpectedly.\n")
		builder.WriteString("This usually happens when:\n")
		builder.WriteString("  • The daemon process stopped or was restarted\n")
		builder.WriteString("  • The network path to the daemon was interrupted\n")
		builder.WriteString("  • A firewall or proxy closed the connection\n")

	case GRPCErrorInternal:
		builder.WriteString("An internal error occurred in the build daemon.\n")
		builder.WriteString("This could mean:\n")
		builder.WriteString("  • The daemon encountered an unexpected issue\n")
		builder.WriteString("  • The daemon is being updated or restarted\n")
		builder.WriteString("  • There was a temporary problem processing the request\n")

	case GRPCErrorUnavailable:
		builder.WriteString("The build daemon is currently unavailable.\n")
		builder.WriteString("Possible reasons:\n")
		builder.WriteString("  • The daemon is not running at the configured address\n")
		builder.WriteString("  • The daemon is temporarily overloaded\n")
		builder.WriteString("  • The daemon is still starting up\n")

	case GRPCErrorTimeout:
		builder.WriteString("The connection to the build daemon timed out.\n")
		builder.WriteString("This could be due to:\n")
		builder.WriteString("  • Slow or unstable network connection\n")
		builder.WriteString("  • A long-running build blocking the daemon\n")
		builder.WriteString("  • Network latency issues\n")

	default:
		builder.WriteString("The synchronization was interrupted.\n")
		builder.WriteString("This could mean:\n")
		builder.WriteString("  • Network connection dropped\n")
		builder.WriteString("  • The daemon is restarting or under maintenance\n")
		builder.WriteString("  • Session timeout\n")
	}

	builder.WriteString("\n")

	// Action to take
	builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please try running 'buildsync sync' again"))
	builder.WriteString("\n")

	// Technical details, only when verbose diagnostics were requested
	if verboseEnabled() && strings.TrimSpace(errMsg) != "" {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(errMsg)))
	}

	return builder.String()
}

// PresentConnectionError displays a formatted daemon connection error
func PresentConnectionError(errMsg string) {
	fmt.Println()
	fmt.Println(FormatConnectionError(errMsg))
	fmt.Println()
}
