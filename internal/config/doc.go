// Package config provides configuration loading, merging, and validation
// facilities for the notes-board server and client.
//
// Configuration is assembled from multiple sources and merged with mergo.
// A field set by an earlier source is never overwritten by a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the backend and
// [GetClientConfig] for the terminal client. Both are views over
// [StructuredConfig].
package config
