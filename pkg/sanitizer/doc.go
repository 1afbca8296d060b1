// Package sanitizer provides input normalization for customer and vendor
// data before validation and storage.
//
// All functions are idempotent and handle invalid input by returning an
// empty string rather than an error.
//
//   - Phone numbers: converted to E.164 (+[country][number])
//   - Names and labels: whitespace collapsed, leading/trailing space trimmed
//   - Cities: lowercased with special characters stripped, "New Delhi"
//     becomes "newdelhi"
package sanitizer
