package ticket

// Report aggregates the tickets of one organization. Total counts every
// ticket; statuses other than pending and completed only count toward it.
type Report struct {
	EmpresaID string
	Total     int
	Pending   int
	Completed int
	Urgent    int
}

// Summarize computes the report for empresaID, skipping tickets that belong
// to another organization.
func Summarize(empresaID string, tickets []*Ticket) Report {
	r := Report{EmpresaID: empresaID}
	for _, t := range tickets {
		if t.EmpresaID() != empresaID {
			continue
		}
		r.Total++
		switch {
		case t.Status().IsCompleted():
			r.Completed++
		case t.Status().IsPending():
			r.Pending++
		}
		if t.Urgent() {
			r.Urgent++
		}
	}
	return r
}
