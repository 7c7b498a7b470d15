// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The table normalisation policy lives here; PDF parsing, Drive access and
// spreadsheet encoding are all behind driven ports.
package services
