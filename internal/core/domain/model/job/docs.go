// Package job contains the deferred-job aggregate driving order consolidation.
//
// A Job represents one scheduling event for one order. It owns a small state
// machine (scheduled -> processing -> completed | scheduled(retry) | failed)
// together with the attempt counter and exponential-backoff policy. All state
// transitions go through validated methods; the queue never mutates job fields
// directly.
//
// Jobs are in-memory only. They live from Schedule until the queue's cleanup
// removes them after the retention window, and they do not survive a process
// restart.
package job
