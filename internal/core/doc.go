// Package core provides the business logic of the applicant service.
//
// This package composes the applicant store and the CSV codec, which know
// nothing about each other. It contains all domain rules independent of the
// HTTP layer and can be driven by web handlers or tests without modification.
//
// # Sessions
//
// Every visitor works on a private collection. [Service.StartSession] mints a
// session ID and an empty [applicant.Store]; all collection operations take
// that ID and fail with [ErrSessionNotFound] once the session ends or the
// janitor started by [Service.StartSessionJanitor] expires it.
//
// # Import and Export
//
// [Service.Import] decodes a CSV upload and merges it into the session:
//
//  1. An import slot is acquired from the [ImportLimiter]
//  2. The body is read up to the configured byte limit and decoded
//  3. Partial records are completed (absent fields take zero values)
//  4. The collection is appended to or replaced, unless DryRun is set
//
// [Service.Export] writes the session's collection with the same codec.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - VAL001-VAL002: Form and request validation
//   - FILE001-FILE003: Uploaded file problems
//   - IMP001-IMP004: Import process errors
//   - SES001: Session errors
//   - RATE001: Request throttling
//
// # Course Catalogue
//
// Courses are registered at init time using [RegisterCourse]; the
// internal/core/courses package registers the standard catalogue.
package core
