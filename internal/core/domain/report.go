package domain

import "slices"

// Report accumulates per-package audit outcomes. Failures keep the order in
// which packages were visited, which is the order they are listed in the
// final summary.
type Report struct {
	audited  int
	failures []string
}

// RecordPass counts a package that passed analysis.
func (r *Report) RecordPass() {
	r.audited++
}

// RecordFailure counts a package that failed analysis and remembers its name.
func (r *Report) RecordFailure(name string) {
	r.audited++
	r.failures = append(r.failures, name)
}

// Audited returns the number of packages visited so far.
func (r *Report) Audited() int {
	return r.audited
}

// Failed reports whether any package failed analysis.
func (r *Report) Failed() bool {
	return len(r.failures) > 0
}

// Failures returns the failed package names in visit order.
func (r *Report) Failures() []string {
	return slices.Clone(r.failures)
}
