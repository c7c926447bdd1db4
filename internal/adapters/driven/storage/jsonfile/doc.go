// Package jsonfile reads the profile collection from a JSON document.
//
// The document is either a bare array of profile records or an object
// with a "profiles" array. Record types are exported so other adapters
// can share the same encoding for nested fields.
package jsonfile
