// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

// varinfo describes a propositional variable of the encoding. For an
// indicator, column is -1.
type varinfo struct {
	variable int // position of the network variable
	row      int // state of the network variable
	column   int // parent assignment (CPT column), -1 for indicators
}

// pool allocates the propositional variables of the encoding. We process
// network variables in topological order and, for each of them, allocate its
// indicators (one per state) followed by its parameters (one per CPT entry,
// state major, parent assignment minor). Numbering starts at 1.
type pool struct {
	varnum     int       // number of allocated variables
	indicators [][]Lit   // indicators[v][row]
	params     []int     // params[v] is the first parameter variable of v
	columns    []int     // number of CPT columns of each network variable
	info       []varinfo // info[x-1] describes variable x
}

func newpool(n *Network) *pool {
	p := &pool{
		indicators: make([][]Lit, len(n.vars)),
		params:     make([]int, len(n.vars)),
		columns:    make([]int, len(n.vars)),
	}
	for _, v := range n.order {
		rows := len(n.states[v])
		p.indicators[v] = make([]Lit, rows)
		for row := 0; row < rows; row++ {
			p.indicators[v][row] = Lit(p.alloc(varinfo{variable: v, row: row, column: -1}))
		}
		p.columns[v] = len(n.cpts[v][0])
		p.params[v] = p.varnum + 1
		for row := 0; row < rows; row++ {
			for col := 0; col < p.columns[v]; col++ {
				p.alloc(varinfo{variable: v, row: row, column: col})
			}
		}
	}
	return p
}

func (p *pool) alloc(vi varinfo) int {
	p.varnum++
	p.info = append(p.info, vi)
	return p.varnum
}

// param returns the parameter of network variable v for a state and a column.
func (p *pool) param(v, row, col int) Lit {
	return Lit(p.params[v] + row*p.columns[v] + col)
}

// lookup returns the description of variable x, if it is allocated.
func (p *pool) lookup(x int) (varinfo, bool) {
	if x < 1 || x > p.varnum {
		return varinfo{}, false
	}
	return p.info[x-1], true
}
