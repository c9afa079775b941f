// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, metrics export and debug introspection for hiovec.
//
// Provides:
//   - YAML configuration with validation and a reload-aware store
//   - A prometheus collector over allocator and slice pool statistics
//   - Debug probes dumped through zap
package control
