// Package schema builds form definitions from declarative YAML documents,
// so the daemon can serve forms without recompilation:
//
//	forms:
//	  contact:
//	    fields:
//	      - name: name
//	        roles: [reply_to_name, subject]
//	        processors:
//	          - filter: trim
//	          - rule: required
//	          - rule: length
//	            min: 2
//	            max: 100
//	      - name: email
//	        roles: [reply_to_email]
//	        processors:
//	          - filter: sanitize_email
//	          - rule: required
//	          - rule: email
//
// Processors are referenced by snake_case name with their options inline.
// Misconfiguration (unknown processor names, uncompilable patterns,
// invalid directions) surfaces as an error from Load/Parse rather than a
// construction panic, since schema files are runtime input.
package schema
