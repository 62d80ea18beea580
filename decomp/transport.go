package decomp

import "fmt"

// Transport is the message-passing medium between workers. The halo
// exchange logic is written against this interface only, so the medium
// (goroutines and channels, OS processes and sockets, or an MPI binding)
// is swappable without touching the exchange.
//
// Sendrecv blocks until both the paired send and receive complete; there is
// no timeout or cancellation, consistent with a batch numerical job. All
// workers must call it collectively with a consistent pass ordering or the
// run deadlocks. Gather collects every worker's payload at root; the result
// is indexed by rank and is nil on all other workers.
type Transport interface {
	Sendrecv(me, dest, source, tag int, data []float64) []float64
	Gather(me, root int, data []float64) [][]float64
}

type gatherMsg struct {
	rank int
	data []float64
}

// ChannelTransport implements Transport over buffered Go channels, one per
// (source, dest, tag) triple. Payloads are copied on send, so workers share
// nothing but values. Capacity 1 lets every worker complete its send before
// blocking on the matching receive, which rules out circular wait as long
// as all workers order their passes consistently.
type ChannelTransport struct {
	size   int
	tags   int
	mail   []chan []float64
	gather []chan gatherMsg
}

func NewChannelTransport(size, tags int) (t *ChannelTransport) {
	t = &ChannelTransport{
		size:   size,
		tags:   tags,
		mail:   make([]chan []float64, size*size*tags),
		gather: make([]chan gatherMsg, size),
	}
	for i := range t.mail {
		t.mail[i] = make(chan []float64, 1)
	}
	for i := range t.gather {
		t.gather[i] = make(chan gatherMsg, size)
	}
	return
}

func (t *ChannelTransport) slot(src, dst, tag int) chan []float64 {
	if src < 0 || src >= t.size || dst < 0 || dst >= t.size {
		panic(fmt.Errorf("rank out of range: src %d, dst %d, size %d", src, dst, t.size))
	}
	if tag < 0 || tag >= t.tags {
		panic(fmt.Errorf("tag out of range: %d", tag))
	}
	return t.mail[(src*t.size+dst)*t.tags+tag]
}

func (t *ChannelTransport) Sendrecv(me, dest, source, tag int, data []float64) []float64 {
	cpy := make([]float64, len(data))
	copy(cpy, data)
	t.slot(me, dest, tag) <- cpy
	return <-t.slot(source, me, tag)
}

func (t *ChannelTransport) Gather(me, root int, data []float64) [][]float64 {
	cpy := make([]float64, len(data))
	copy(cpy, data)
	t.gather[root] <- gatherMsg{rank: me, data: cpy}
	if me != root {
		return nil
	}
	out := make([][]float64, t.size)
	for i := 0; i < t.size; i++ {
		msg := <-t.gather[root]
		out[msg.rank] = msg.data
	}
	return out
}
