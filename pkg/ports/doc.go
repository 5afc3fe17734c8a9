/*
Package ports defines the boundary interfaces between the formgate engine and
its environment (driven ports in Hexagonal Architecture terms).

  - FormSource: the engine's only inbound dependency, resolving a form id to
    its FormConfig.
  - SchemaStore: persistence for managed schema envelopes, with pluggable
    adapters (in-memory, redis).
*/
package ports
