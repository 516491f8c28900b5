// Package graph implements the computation graph of lvgrad: a node arena,
// its construction API, a topological scheduler and the forward/backward
// executors.
//
// What:
//
//   - Context owns every Node. Nodes are created through CreateNode (leaves)
//     and the composers Relu, Softmax, Add, Sub, Matmul and CrossEntropy.
//     Operands are NodeIDs of earlier nodes, so graphs are acyclic by
//     construction.
//   - Program is a linear execution order rooted at one node. Compile caches
//     two of them: the forward program (rooted at the output) and the cost
//     program (rooted at the cost).
//   - Evaluate runs a Program forwards; AccumulateGradients runs it backwards,
//     adding into gradient buffers so a node with several consumers receives
//     the sum of their contributions.
//
// Flags:
//
//	FlagRequiresGrad  allocate a gradient and take part in backward passes
//	FlagParameter     learned leaf; gradient persists across backward calls
//	FlagInput, FlagOutput, FlagDesiredOutput, FlagCost   role designations
//
// Errors:
//
//	Construction never creates a partial node: shape problems return
//	ErrShapeMismatch together with InvalidNode. Executors stop at the first
//	failing kernel and return its error wrapped with the node index.
//
// Concurrency:
//
//	Single-threaded. A Context, its Programs and its matrices must not be
//	used from several goroutines without external serialisation.
package graph
