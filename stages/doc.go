// Package stages implements the bounded pipeline stages the routing
// table builder runs: Limited (a capped BOD with full parent
// back-links), and the three specialized variants — Stage1
// (reachable-with-first-hop), Stage2 (possible senders, no back-link,
// meant to run on a reversed graph), and Stage3 (next-after-target).
//
// All four share BOD's expansion loop from package bod with one
// addition: any candidate whose accumulated cost exceeds either cap
// (C1, C2) is discarded before it reaches the frontier. They differ
// only in which back-link field of search.State they populate.
package stages
