// Package coretest provides test doubles for the core package.
//
// MemoryStore is an in-memory core.Store with per-operation error injection
// and call recording. It is shared by the core and web tests so that handler
// behavior can be verified without a database.
package coretest
