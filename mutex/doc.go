// Package mutex provides two futex-backed mutual exclusion locks.
//
// Mutex is the general-purpose choice: a compact three-state word
// (unlocked/locked/contended) with a brief active spin before parking.
// QueuedMutex trades a slightly larger per-acquisition footprint (a
// heap-allocated Ticket per Lock call) for exact FIFO ordering and no
// thundering herd under heavy contention, via an MCS-style intrusive
// waiter chain.
package mutex
