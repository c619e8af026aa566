// Package utils provides small shared helpers for the device-auditor
// application, mainly formatting of nullable values for tabular report output.
package utils
