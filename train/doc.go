// Package train fits the parameters of a compiled lvgrad graph with
// mini-batch gradient descent.
//
// What:
//
//   - Trainer drives a graph.Context that designates input, desired-output,
//     output and cost nodes. Each epoch shuffles the running sample order,
//     walks it in full batches and applies value -= (lr/batch)·grad to every
//     parameter after each batch. Trailing samples that do not fill a batch
//     are skipped for that epoch.
//   - Evaluate reports mean cost and argmax accuracy over a labelled set.
//   - Progress goes to a Reporter; LogReporter writes through log/slog.
//
// Configuration:
//
//	Epochs        DefaultEpochs        (10)
//	BatchSize     DefaultBatchSize     (50)
//	LearningRate  DefaultLearningRate  (0.01)
//
// Randomness comes from the prng.Source passed to New; the same seed and data
// reproduce the same run.
//
// Concurrency:
//
//	A Trainer mutates its Context and Source and is not safe for concurrent
//	use.
package train
