// Package models defines the GORM models stored by the database feature.
//
// Fundamentals are keyed by ticker and overwritten on upsert. Quotations are
// append-only daily bars; Date uses the YYYY-MM-DD layout so lexical order is
// chronological order.
package models
