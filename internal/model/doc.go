// Package model holds the API table and record schemas. See types.go for
// the closed sums (ArgKind, RetKind), calls.go for the table itself, and
// records.go for the three LVM record schemas.
package model
