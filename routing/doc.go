// Package routing builds a per-source next-hop forwarding table by
// orchestrating the pipeline stages in package stages, and checks
// whether a pathfinder/selector pair behaves decentrally: that a node
// partway along a chosen path would choose to keep forwarding along
// that same path if it re-ran the search itself.
//
// BuildTable and BuildFirstHopTable are functional-options
// constructors: WithCaps, WithSelector, and WithFullTable configure the
// pipeline without an exploding parameter list.
package routing
