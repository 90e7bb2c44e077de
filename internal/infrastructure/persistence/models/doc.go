// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Every business record embeds OwnedModel. Column names and types match the
// SQL migrations under migrations/, so the sqlite AutoMigrate path produces
// an equivalent schema.
package models
