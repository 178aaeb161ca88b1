/*
Package domain defines the minesweeper state model driven by the dispatch engine.

A State is a rectangular grid of Cells plus the counters the rules depend on.
Actions are small immutable values. The state is only ever written by the
reducer in package sweeper; everything else reads it or works on a Snapshot.
*/
package domain
