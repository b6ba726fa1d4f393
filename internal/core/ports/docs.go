// Package ports declares the interfaces the core needs from the outside
// world: order and shop storage behind a unit of work, event publishing and
// the identity collaborator's stores.
package ports
