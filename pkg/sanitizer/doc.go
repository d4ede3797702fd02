// Package sanitizer provides text normalization and the raw-record
// sanitization pipeline for catalog data.
//
// All normalization functions are idempotent - applying them twice produces
// the same result as applying them once. Functions handle invalid input
// gracefully, returning empty strings rather than errors.
//
// Normalization layers:
//   - Normalize: Unicode NFKC folding, whitespace runs collapsed to single
//     spaces and trimmed, case folded. Applied to every free-text field.
//   - StripDiacritics: combining marks removed after NFD decomposition.
//     Applied only to identity fields (email, attendee name), never to
//     venue or event fields.
//   - SanitizeRecords: lazy pipeline over loosely-typed raw rows that
//     yields clean records and silently drops rows without a usable email.
package sanitizer
