// Package entity contains the core business objects of the project.
package entity

import "time"

// Category groups products for catalog browsing and revenue breakdowns.
type Category struct {
	ID          int64     `json:"id"`          // Auto-assigned identifier, unique among categories.
	Name        string    `json:"name"`        // Display name, required, at most 100 characters.
	Description string    `json:"description"` // Optional free text, at most 500 characters.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the category was created.
}
