// Package imslp talks to imslp.org: verifying that work pages exist,
// scraping downloadable score links from them, and fetching the PDFs.
//
// All requests go through a shared rate limiter so batch runs stay polite.
package imslp
