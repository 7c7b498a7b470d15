// Package domain defines the core entities for drivetables.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RemoteFile: A file reference returned by the remote folder listing
//   - Table: Raw rows of cell text detected in one region of a PDF page
//   - Record: A row conformed to the fixed nine-column schema plus provenance
//   - ExtractionResult: The per-file outcome of extraction and normalisation
//   - Config: Explicit run configuration passed into the pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
