package generation

// Template describes an available CV layout.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Templates returns the available CV templates. The list is static.
func Templates() []Template {
	return []Template{
		{
			ID:          "professional",
			Name:        "Professional",
			Description: "Clean, ATS-friendly template suitable for most industries",
		},
		{
			ID:          "modern",
			Name:        "Modern",
			Description: "Contemporary design with subtle styling",
		},
		{
			ID:          "minimal",
			Name:        "Minimal",
			Description: "Ultra-clean template focused on content",
		},
	}
}
