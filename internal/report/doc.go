// Package report renders the outcome of a processing run as a standalone
// HTML page: summary statistics up top, then one section per worklist row
// with the matched work, its IMSLP link, and any score files found.
package report
