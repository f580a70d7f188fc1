// Package docs LocAbility API.
//
// Crowdsourced accessibility map service. Citizens report accessibility
// spots (ramps, elevators, accessible entrances and more), vote on their
// condition, and query neighborhoods for nearby spots and an aggregate
// 0-100 accessibility score. Known accessibility features can also be
// imported from OpenStreetMap.
//
// Main capabilities:
// - Spot lifecycle: submit, update, delete, upvote/downvote
// - Proximity queries: spots within a radius, nearest first
// - Area accessibility score combining quantity, condition and variety
// - OpenStreetMap import with near-duplicate suppression
// - Collection statistics
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
