// Package put holds the runtime contract between putgen-generated
// resolvers and the code that executes storage operations.
//
// A generated resolver implements Resolver[T]: it maps an instance to an
// ordered column-value set, an insert query, and an update query. The
// resolver itself is stateless and immutable; concurrent callers may share
// one resolver value without synchronization.
package put
