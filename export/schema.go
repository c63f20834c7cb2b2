package export

import "github.com/invopop/jsonschema"

// DocumentSchema returns the JSON Schema describing the Document snapshot,
// for consumers that validate exported artifacts downstream.
func DocumentSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return reflector.Reflect(&Document{})
}
