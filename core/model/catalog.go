// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// CatalogSchemaVersion is written into every exported catalog file.
const CatalogSchemaVersion = 1

// CatalogData is the on-disk container for an item universe.
type CatalogData struct {
	// SchemaVersion helps in handling format changes on import.
	SchemaVersion int    `json:"schema_version" yaml:"schema_version"`
	Items         []Item `json:"items" yaml:"items"`
}
