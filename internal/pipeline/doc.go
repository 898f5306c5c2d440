// Package pipeline runs one scorefind batch end to end: match every
// worklist row against the catalog, then verify and scrape the matched
// IMSLP pages with a bounded worker pool. One row failing never aborts the
// batch; failures are recorded per row and surface in the report.
package pipeline
