package civic

// EmergencyContact is one entry in the emergency directory.
//
// CreatedAt and UpdatedAt hold whatever timestamp value the writer supplies;
// the seed tool passes the store's server-timestamp sentinel.
type EmergencyContact struct {
	Name        string `firestore:"name" yaml:"name"`
	Number      string `firestore:"number" yaml:"number"`
	Category    string `firestore:"category" yaml:"category"`
	Description string `firestore:"description" yaml:"description"`
	CreatedAt   any    `firestore:"createdAt" yaml:"createdAt"`
	UpdatedAt   any    `firestore:"updatedAt" yaml:"updatedAt"`
}

// Fields returns the persisted attribute map.
func (c EmergencyContact) Fields() map[string]any {
	return map[string]any{
		"name":        c.Name,
		"number":      c.Number,
		"category":    c.Category,
		"description": c.Description,
		"createdAt":   c.CreatedAt,
		"updatedAt":   c.UpdatedAt,
	}
}
