// Package services implements the driving port interfaces.
// Services contain the core catalogue logic: record normalisation,
// link resolution, collection building and query filtering.
//
// Services are pure Go with no external I/O; the raw collection is
// supplied by a driven adapter and held in memory.
package services
