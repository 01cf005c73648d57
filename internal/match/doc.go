// Package match provides identifier normalization used to pair factory
// parameters with declared columns.
//
// A factory parameter like "userID" and a column named "user_id" refer to
// the same thing; both normalize to "userid".
package match
