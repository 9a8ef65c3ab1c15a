// Package filets provides convenience wrappers over filesystem and path
// operations.
//
// This package is organized into specialized modules:
//   - basic: Core file operations (read, write, append, JSON)
//   - directory: Directory lifecycle (ensure, create, copy, move, listing)
//   - operations: File manipulation (copy, move, rename, writability probe)
//   - metadata: File metadata and statistics
//   - search: Recursive file and directory search (substring, glob)
//   - paths: Path algebra and filename sanitization
//   - formats: Structured formats (YAML, TOML, CSV)
//   - archives: Archive operations (ZIP, TAR with compression)
//
// All operations:
//   - Are stateless free functions; no state survives between calls
//   - Run synchronously and surface failures on first occurrence
//   - Wrap failures exactly once with a fixed operation prefix
//
// Existence checks and idempotent removals never fail on absent paths;
// errors are reserved for operations that assert a required effect.
//
// Example Usage:
//
//	if err := filets.WriteTextFile("out/report.txt", "done"); err != nil {
//		log.Fatal(err)
//	}
//	matches, err := filets.FindFiles("out", ".txt")
package filets
