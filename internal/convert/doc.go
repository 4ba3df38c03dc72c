// Package convert executes a conversion plan. A Runner partitions the
// plan's tasks into fixed-size waves and drives each task through the
// skip policy and the atomic converter, folding every outcome into a
// mutex-guarded statistics block. Waves are separated by a hard barrier:
// wave N+1 never starts before every task in wave N reached a terminal
// state, so progress observations land at wave boundaries only and at
// most one wave of codec invocations is ever in flight.
//
// Output files appear atomically. The converter encodes into a hidden
// temp file beside the final path and publishes with a single rename;
// a failed task removes its temp file and never aborts the batch.
package convert
