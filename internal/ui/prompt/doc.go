// Package prompt provides simple interactive prompts.
//
// Prompts render to stderr so stdout stays clean for command output.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input
package prompt
