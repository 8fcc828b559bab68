// Package biroute computes Pareto-optimal routes under two additive
// cost objectives and synthesizes decentralized forwarding tables from
// them.
//
// A network is a directed multigraph whose edges each carry a pair of
// non-negative costs (package graph). Bi-objective Dijkstra and its
// target-directed variant, Bi-objective A* (package bod), compute the
// full Pareto front of non-dominated paths between vertices, built on
// a lexicographic search frontier (package search) and a dominance-
// maintaining solution set (package pareto). Three bounded variants of
// the same search (package stages) feed a routing-table builder
// (package routing) that derives, for a single source, the forwarding
// decision every other node in the network would make — and a
// decentralizability check that verifies those decisions agree with
// what each node would compute for itself.
//
//	go get github.com/birouted/biroute
package biroute
