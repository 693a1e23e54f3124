package sat

import (
	"bufio"
	"io"
	"strconv"
)

// Clause is a disjunction of signed 1-based literals.
type Clause []int

// Formula is a CNF conjunction of clauses over NumVars variables.
// Built fresh per solve call and discarded after decoding.
type Formula struct {
	NumVars int
	Clauses []Clause
}

func (f *Formula) add(lits ...int) {
	f.Clauses = append(f.Clauses, Clause(lits))
}

// WriteDIMACS serializes the formula in the standard DIMACS CNF text
// form: a "p cnf <vars> <clauses>" header, then one clause per line as
// space-separated signed integers terminated by 0.
func (f Formula) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("p cnf ")
	bw.WriteString(strconv.Itoa(f.NumVars))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(len(f.Clauses)))
	bw.WriteByte('\n')
	for _, cl := range f.Clauses {
		for _, lit := range cl {
			bw.WriteString(strconv.Itoa(lit))
			bw.WriteByte(' ')
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}
