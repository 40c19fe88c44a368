// Package cli implements the valid command line tool.
//
// The check command reads a form document, builds a constraint set for every
// field from its declarative rules, validates the fields as one collection
// and prints a report:
//
//	valid check --form signup.yaml --messages messages.yaml --format json
//
// A form lists fields with a tag, a value and rules:
//
//	fields:
//	  - tag: name
//	    value: "Al"
//	    rules:
//	      - {type: mandatory, priority: 0, value: true}
//	      - {type: min_length, priority: 1, value: 3}
//	  - tag: age
//	    kind: number
//	    value: 17
//	    rules:
//	      - {type: min, priority: 0, value: 18}
//
// Messages are read from a YAML or JSON catalog, or from a Redis hash with
// --redis-url and --redis-hash. The execution strategy comes from
// VALID_STRATEGY and VALID_POOL_SIZE, and logging from VALID_LOG_LEVEL and
// VALID_LOG_FORMAT; the matching flags override them.
//
// The rules command lists the rule types a form can use with the message
// keys each of them needs.
//
// Run returns ExitNotValid when at least one field fails and ExitError when
// the run itself fails.
package cli
