package probe

import (
	"github.com/darbotlabs/lanton-stubs/pkg/jsonschema"
)

const timestampPattern = `^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}(\\.\\d{1,6})?$`

var (
	bitnetSchema = jsonschema.MustCompile("bitnet-descriptor", `{
	"type": "object",
	"required": ["service", "version", "status", "endpoints", "timestamp"],
	"additionalProperties": false,
	"properties": {
		"service": { "const": "BitNet" },
		"version": { "const": "1.0.0" },
		"status": { "const": "running" },
		"endpoints": { "const": ["/status", "/data", "/connect"] },
		"timestamp": { "type": "string", "pattern": "`+timestampPattern+`" }
	}
}`)

	omniparserSchema = jsonschema.MustCompile("omniparser-descriptor", `{
	"type": "object",
	"required": ["service", "version", "status", "capabilities", "timestamp"],
	"additionalProperties": false,
	"properties": {
		"service": { "const": "OmniParser" },
		"version": { "const": "0.9.2" },
		"status": { "const": "ready" },
		"capabilities": { "const": ["text", "json", "xml", "markdown"] },
		"timestamp": { "type": "string", "pattern": "`+timestampPattern+`" }
	}
}`)

	parsedSchema = jsonschema.MustCompile("omniparser-parsed", `{
	"type": "object",
	"required": ["service", "parsed", "input_type", "output", "timestamp"],
	"additionalProperties": false,
	"properties": {
		"service": { "const": "OmniParser" },
		"parsed": { "const": true },
		"input_type": {},
		"output": { "const": "Successfully parsed your input" },
		"timestamp": { "type": "string", "pattern": "`+timestampPattern+`" }
	}
}`)

	failedSchema = jsonschema.MustCompile("omniparser-failed", `{
	"type": "object",
	"required": ["service", "parsed", "error", "timestamp"],
	"additionalProperties": false,
	"properties": {
		"service": { "const": "OmniParser" },
		"parsed": { "const": false },
		"error": { "const": "Failed to parse input" },
		"timestamp": { "type": "string", "pattern": "`+timestampPattern+`" }
	}
}`)

	flaskStatusSchema = jsonschema.MustCompile("flaskgui-status", `{
	"type": "object",
	"required": ["service", "status", "port"],
	"additionalProperties": false,
	"properties": {
		"service": { "const": "Flask GUI" },
		"status": { "const": "running" },
		"port": { "type": "string", "pattern": "^[0-9]+$" }
	}
}`)
)
