// Package scorecache persists per-URL fetch outcomes so repeated runs over
// the same worklist do not hammer imslp.org. Entries expire after a TTL and
// a file lock keeps concurrent scorefind processes from racing on writes.
package scorecache
