// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/document). This root
// package holds the sentinel errors that outbound adapters translate
// downstream failures into, and the field-level validation error type.
package domain
