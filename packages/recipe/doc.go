// Package recipe loads request recipe files and builds the requests they
// describe.
//
// A recipe file is YAML (or JSON) with optional variables and defaults and a
// list of requests. Each request may name a director preset ("get",
// "json-post") and override any field. Values may contain {{...}}
// placeholders resolved by the env package.
package recipe
