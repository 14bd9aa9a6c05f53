// Package models defines the core domain models for AidLedger.
//
// # Registry
//
// The registry holds the people an organization serves:
//   - Individual: a registered person, the primary record of the domain
//   - AdditionalMember: an informally tracked dependent stored inside an
//     individual's record rather than as its own row
//   - Child: a child record attached to a parent individual and a family
//   - Family: a household grouping individuals and children
//
// # Distributions
//
//   - Distribution: one aid-giving event of a single aid type
//   - Allocation: the quantity and value one recipient received in a
//     distribution
//
// Recipients of a distribution are identified by references (see package
// recipient), not by these structs directly. A walk-in recipient has no
// registry record at all and is persisted only as free text.
//
// # Design Principles
//
// 1. **Money is decimal**: every monetary amount is a decimal.Decimal
// 2. **IDs are strings**: UUIDs in string form; an empty string means "none"
// 3. **No pointers between records**: relationships are ID strings
package models
