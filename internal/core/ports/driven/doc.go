// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - FileLister: Lists files in a remote folder (Google Drive)
//   - FileFetcher: Downloads a remote file to local storage (Google Drive)
//   - TableDetector: Detects tables in a local PDF (stream detection)
//   - SpreadsheetWriter: Writes the merged table (xlsx)
//   - CredentialProvider: Yields an authorised OAuth token source
//
// # Import Rules
//
//   - Can Import: domain package, golang.org/x/oauth2 types
//   - Cannot Import: Any adapter or connector package
package driven
