// Package trends queries the external trending-products API for countdown
// topic candidates.
//
// The Service interface hides whether an endpoint is configured: NewService
// returns a real HTTP client when trends.base_url is set and a noop
// implementation otherwise. Manifest generation never depends on this
// package; it exists for the `slate trends` planning command.
package trends
