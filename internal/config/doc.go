// Package config provides configuration loading, merging, and validation
// facilities for the job-alerts server and client.
//
// Configuration is assembled from multiple sources. Earlier sources take
// precedence for non-zero fields:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the REST service and
// [GetClientConfig] for the terminal client.
package config
