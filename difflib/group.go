package difflib

// Hunk is one renderable group of op-codes. A hunk holding a single
// TagOutOfContext op-code marks equal elements skipped between its
// neighbours.
type Hunk struct {
	OpCodes []OpCode
}

// Skipped reports whether h is an out-of-context marker.
func (h Hunk) Skipped() bool {
	return len(h.OpCodes) == 1 && h.OpCodes[0].Tag == TagOutOfContext
}

// Isolate change clusters by eliminating ranges with no changes.
//
// Return groups with up to the configured context of equal elements around
// each change. Each group is in the same format as returned by GetOpCodes().
//
// When the sequences are both empty a single equal op-code over [0,1) is
// used internally; with trimming disabled it is returned as the only group.
// Use IsIdentical on a Diff instead of inspecting this shape.
func (m *SequenceMatcher) GetGroupedOpCodes() [][]OpCode {
	var groups [][]OpCode
	for _, h := range m.group() {
		if !h.Skipped() {
			groups = append(groups, h.OpCodes)
		}
	}
	if groups == nil {
		groups = [][]OpCode{}
	}
	return groups
}

// Hunks is like GetGroupedOpCodes but also returns an out-of-context marker
// between two groups that were split out of one long equal run.
func (m *SequenceMatcher) Hunks() []Hunk {
	return m.group()
}

func (m *SequenceMatcher) group() []Hunk {
	n := m.opts.context
	codes := m.GetOpCodes()
	if len(codes) == 0 {
		codes = []OpCode{{TagEqual, 0, 1, 0, 1}}
	}
	if m.opts.trimEqual {
		// Fixup leading and trailing groups if they show no changes.
		if c := codes[0]; c.Tag == TagEqual {
			codes[0] = OpCode{c.Tag, max(c.I1, c.I2-n), c.I2, max(c.J1, c.J2-n), c.J2}
		}
		if c := codes[len(codes)-1]; c.Tag == TagEqual {
			codes[len(codes)-1] = OpCode{c.Tag, c.I1, min(c.I2, c.I1+n), c.J1, min(c.J2, c.J1+n)}
		}
	}
	nn := n + n
	hunks := []Hunk{}
	group := []OpCode{}
	for _, c := range codes {
		i1, i2, j1, j2 := c.I1, c.I2, c.J1, c.J2
		// End the current group and start a new one whenever
		// there is a large range with no changes.
		if c.Tag == TagEqual && i2-i1 > nn {
			group = append(group, OpCode{c.Tag, i1, min(i2, i1+n), j1, min(j2, j1+n)})
			hunks = append(hunks, Hunk{OpCodes: group})
			group = []OpCode{}
			skipped := OpCode{TagOutOfContext, min(i2, i1+n), max(i1, i2-n), min(j2, j1+n), max(j1, j2-n)}
			hunks = append(hunks, Hunk{OpCodes: []OpCode{skipped}})
			i1, j1 = max(i1, i2-n), max(j1, j2-n)
		}
		group = append(group, OpCode{c.Tag, i1, i2, j1, j2})
	}
	if !m.opts.trimEqual || (len(group) > 0 && !(len(group) == 1 && group[0].Tag == TagEqual)) {
		hunks = append(hunks, Hunk{OpCodes: group})
	} else if len(hunks) > 0 {
		// The marker only separates two groups.
		hunks = hunks[:len(hunks)-1]
	}
	return hunks
}
