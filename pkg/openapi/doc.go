// Package openapi exports question configurations as OpenAPI 3 schemas built
// with github.com/getkin/kin-openapi, so API clients can discover the options
// of a radios question and check submitted answers against them.
package openapi
