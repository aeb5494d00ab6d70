// Package core provides the request-to-persistence pipeline for the book catalog.
//
// The package owns the domain types and the stateless request handlers. It has
// no HTTP or SQL dependencies: transport lives in package web and storage in
// package store, which implements [Store].
//
// # Pipeline
//
// Every handler on [Service] is invoked once per request:
//
//  1. The transport decodes a form body into a [BookRequest] (or a [DecodeError])
//  2. [Validate] checks the request's field constraints
//  3. At most one [Store] call runs per branch
//  4. The outcome is returned as a [View], or as a typed error on read paths
//
// # Error Handling
//
// Errors fall into five kinds: [DecodeError], [ValidationError], [NotFoundError],
// [PersistenceError] and [FatalStartupError]. Decode, validation and write-path
// persistence failures are recovered into the returned [View] (View.Err) so the
// presentation layer can re-render the originating form. Read-path failures are
// returned as errors and never replaced with an empty entity.
//
// [MapError] turns any of these into a [UserMessage] with a support code.
package core
