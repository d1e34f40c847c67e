package autodiff

// Option configures a Graph created with New.
type Option func(g *Graph)

// defaultCapacity is the number of node slots pre-allocated by New.
const defaultCapacity = 64

// WithCapacity pre-allocates room for n nodes. Graphs grow past it as needed.
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n > cap(g.nodes) {
			g.nodes = make([]nodeRecord, 0, n)
		}
	}
}

// WithName sets the name used in log lines and error messages. Default is "graph".
func WithName(name string) Option {
	return func(g *Graph) {
		g.name = name
	}
}
