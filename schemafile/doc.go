// Package schemafile loads declarative YAML property schemas and compiles
// them into frozen registries, plus a minimal parser for key=value
// properties files.
//
// # Schema Overview
//
// The schema file has the following structure:
//
//	version: "1"
//	properties:
//	  - name: pool.min
//	    type: int
//	    required: true
//	    category: pool
//	    default: "1"
//	    depends_on: pool.max
//	    rules:
//	      - not_blank
//	      - min: 1
//	  - name: db.url
//	    type: string
//	    deprecated:
//	      since: "2.0.0"
//	      replaced_by: db.dsn
//	groups:
//	  - name: pool
//	    description: connection pool bounds
//	    properties: [pool.min, pool.max]
//	    rules:
//	      - less_than_or_equal: [pool.min, pool.max]
//
// Rules are referenced by name; a bare string names a no-argument rule,
// a single-key map passes arguments. Defaults in YAML are static values;
// computed and conditional defaults are built in code.
package schemafile
