// Package oatables turns the OpenAlex snapshot into relational tables. The
// snapshot ships as newline delimited, gzip compressed JSON, one entity per
// line; we normalize each line into a typed record and flatten it into rows
// for a fixed postgres schema.
package oatables

// Version of the toolkit.
const Version = "0.2.1"
