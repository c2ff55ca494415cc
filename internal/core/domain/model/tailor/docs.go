// Package tailor provides the fulfillment-agent entity of the workflow.
// A Tailor is a directory record: availability and skill metadata consulted
// at assignment time. No lifecycle logic lives here; orders reference
// tailors, never the other way around — "a tailor's orders" is a query over
// orders by assignee, not state on the tailor.
//
// Tailors are soft-deactivated rather than deleted so that historical
// orders keep a resolvable assignee reference.
package tailor
