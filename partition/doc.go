// Package partition implements recursive-bisection K-way partitioning with
// a vertex separator, per spec.md §4.4. Each level induces a subgraph,
// invokes the active vertex-separator strategy to produce a tripartition
// {part 0, part 1, separator}, and recurses on each non-terminal half over
// a split sub-context, exactly the shape dfs's recursive traversal and
// gridgraph's connected-component splitting take in the teacher package.
package partition
