package openapi

// NewComponents returns components pre-populated with the error responses
// shared by every endpoint.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Property{
					"error": {Type: "string", Description: "Error message"},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      ResponseJSON("Invalid request", "Error"),
			"NotFound":        ResponseJSON("Resource not found", "Error"),
			"Conflict":        ResponseJSON("Resource already exists", "Error"),
			"PayloadTooLarge": ResponseJSON("Request body exceeds the configured limit", "Error"),
			"Unavailable":     ResponseJSON("Backend unavailable", "Error"),
		},
	}
}

// AddSchemas merges schemas into the component set, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the component set, replacing existing names.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		c.Responses[name] = response
	}
}
