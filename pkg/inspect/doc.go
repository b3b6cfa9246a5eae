// Package inspect provides property table inspection utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing property selectors (e.g., "INFO_VIN", "0x11100100")
//   - Resolving ids back to symbolic names
//   - Formatting tables and declarations for display
//   - Diffing two compiled tables
package inspect
