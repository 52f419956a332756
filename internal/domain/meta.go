package domain

import "time"

// Meta holds the system-generated identity and timestamps shared by every
// stored entity. Embed it in an entity struct to make the type usable with
// the generic resource service.
type Meta struct {
	ID        string    `json:"id" dynamodbav:"id"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

// EntityMeta returns the embedded Meta. Promoted onto every entity pointer,
// which is what the resource service's type constraint relies on.
func (m *Meta) EntityMeta() *Meta { return m }
