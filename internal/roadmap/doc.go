// Package roadmap loads, normalizes, and validates roadmap task files.
//
// The roadmap file (roadmap.json) is either an object with a "tasks"
// array or a bare array of task records:
//
//	{
//	  "tasks": [
//	    {
//	      "title": "Ship the importer",
//	      "description": "Optional free text",
//	      "phase": "Now",
//	      "status": "To Do"
//	    }
//	  ]
//	}
//
// # Normalization
//
// Records are normalized once at the load boundary so downstream code
// never checks for missing fields:
//
//   - description falls back to the legacy "desc" key, then to the
//     misspelled "desciptio" key still present in old files, then to ""
//   - phase defaults to "Unassigned" when absent or blank
//   - status defaults to "To Do" when absent or blank
//   - records without a title are dropped; non-object array elements
//     are skipped (both are counted in Stats)
//
// # Validation
//
// The package supports two validation modes:
//
// 1. JSON Schema validation (when a schema file is provided):
//   - Full validation against JSON Schema draft-2020-12
//
// 2. Minimal fallback validation (when no schema is available):
//   - Structural checks on the tasks array
//   - Records the loader would silently skip are reported as warnings
//
// # Phases
//
// Recognized ordered phases are "Now", "Next", and "Later". Any other
// label (including the "Unassigned" default) is preserved as its own
// bucket; grouping and ordering live in the render package.
package roadmap
