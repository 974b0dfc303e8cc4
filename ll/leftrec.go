package ll

// LeftRecursions lists the left-recursive cycles of the grammar. A cycle is a
// set of non-terminals A1 … An with Ai ⇒ Ai+1 … and An ⇒ A1 …, where a
// non-terminal may be preceded by nullable symbols. Direct left recursion
// (A ➞ Aα) is a cycle of length 1.
//
// Left-recursive grammars are never LL(1), but their FIRST and FOLLOW sets are
// well defined. Cycles are reported with members in order of definition,
// and cycles are ordered by their first member.
func (ga *LLAnalysis) LeftRecursions() [][]*Symbol {
	lc := ga.leftCorners()
	n := len(ga.g.nonterminals)
	// Tarjan's algorithm for strongly connected components
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var stack []int
	var sccs [][]int
	counter := 0
	var connect func(v int)
	connect = func(v int) {
		index[v], low[v] = counter, counter
		counter++
		stack = append(stack, v)
		onStack[v] = true
		for _, w := range lc[v] {
			if index[w] < 0 {
				connect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && index[w] < low[v] {
				low[v] = index[w]
			}
		}
		if low[v] == index[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}
	for _, A := range ga.g.nonterminals {
		if index[A.Value] < 0 {
			connect(A.Value)
		}
	}
	var cycles [][]*Symbol
	inCycle := make([]bool, n)
	for _, scc := range sccs {
		if len(scc) == 1 && !hasEdge(lc, scc[0], scc[0]) {
			continue
		}
		for _, v := range scc {
			inCycle[v] = true
		}
	}
	// emit cycles in definition order of their first member
	seen := make([]bool, n)
	for _, A := range ga.g.nonterminals {
		if !inCycle[A.Value] || seen[A.Value] {
			continue
		}
		for _, scc := range sccs {
			if !containsInt(scc, A.Value) {
				continue
			}
			cycle := make([]*Symbol, 0, len(scc))
			for _, B := range ga.g.nonterminals {
				if containsInt(scc, B.Value) {
					cycle = append(cycle, B)
					seen[B.Value] = true
				}
			}
			cycles = append(cycles, cycle)
			tracer().Infof("%s: left recursion %v", ga.g.Name, cycle)
		}
	}
	return cycles
}

// leftCorners returns, for every non-terminal A (by value), the non-terminals
// B with a rule A ➞ β B γ and β nullable.
func (ga *LLAnalysis) leftCorners() [][]int {
	lc := make([][]int, len(ga.g.nonterminals))
	for _, r := range ga.g.Rules() {
		from := r.LHS.Value
		for _, X := range r.rhs {
			if X.IsTerminal() {
				break
			}
			if !hasEdge(lc, from, X.Value) {
				lc[from] = append(lc[from], X.Value)
			}
			if !ga.first[X.Value].HasEpsilon() {
				break
			}
		}
	}
	return lc
}

func hasEdge(lc [][]int, from, to int) bool {
	return containsInt(lc[from], to)
}

func containsInt(s []int, x int) bool {
	for _, y := range s {
		if y == x {
			return true
		}
	}
	return false
}
