package stats

import "testing"

func TestResetAndSnapshot(t *testing.T) {
	var c Counters
	c.Reset(10)
	s := c.Snapshot()
	if s.Total != 10 || s.Nodes != 0 || s.Completed != 0 {
		t.Fatalf("snapshot after Reset = %+v", s)
	}
}

func TestAddNodesAccumulates(t *testing.T) {
	var c Counters
	c.Reset(1)
	c.AddNodes(5)
	c.AddNodes(7)
	if got := c.Snapshot().Nodes; got != 12 {
		t.Fatalf("Nodes = %d, want 12", got)
	}
}

func TestAddNodesZeroIsNoop(t *testing.T) {
	var c Counters
	c.Reset(1)
	c.AddNodes(0)
	if got := c.Snapshot().Nodes; got != 0 {
		t.Fatalf("Nodes = %d, want 0", got)
	}
}

func TestIncCompleted(t *testing.T) {
	var c Counters
	c.Reset(3)
	c.IncCompleted()
	c.IncCompleted()
	if got := c.Snapshot().Completed; got != 2 {
		t.Fatalf("Completed = %d, want 2", got)
	}
}

func TestMonitorStopsAndReportsFinalSnapshot(t *testing.T) {
	var c Counters
	c.Reset(1)
	c.Stop()

	var reports int
	var last Snapshot
	Monitor(&c, func(s Snapshot) {
		reports++
		last = s
	})

	if reports != 1 {
		t.Fatalf("reports = %d, want 1 (the final snapshot only, since Solving was already 0)", reports)
	}
	if last.Total != 1 {
		t.Fatalf("last snapshot = %+v", last)
	}
}
