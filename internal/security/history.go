package security

// MaxHistory caps the number of passwords a Store remembers.
const MaxHistory = 10

// history is a fixed-capacity list of passwords, most recent first.
type history struct {
	entries [MaxHistory]string
	n       int
}

func newHistory(current string) history {
	var h history
	h.push(current)
	return h
}

// push inserts pwd at the front and drops the oldest entry once full.
func (h *history) push(pwd string) {
	if h.n < MaxHistory {
		h.n++
	}
	copy(h.entries[1:h.n], h.entries[:h.n-1])
	h.entries[0] = pwd
}

// recent reports whether pwd is among the newest window entries.
func (h *history) recent(pwd string, window int) bool {
	if window > h.n {
		window = h.n
	}
	for i := 0; i < window; i++ {
		if h.entries[i] == pwd {
			return true
		}
	}
	return false
}

func (h *history) len() int { return h.n }

func (h *history) list() []string {
	out := make([]string, h.n)
	copy(out, h.entries[:h.n])
	return out
}
