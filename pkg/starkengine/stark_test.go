package starkengine

import "testing"

// incrBoundaryCS builds the "incr"/"zero@0" constraint system shared by
// several of the accept/reject scenarios below.
func incrBoundaryCS() *ConstraintSystem {
	cs := NewConstraintSystem()
	cs.AddTransition("incr", []string{"x"}, func(cur, next Row) Fe {
		return next.Field("x").Sub(cur.Field("x")).Sub(OneFe())
	})
	cs.AddBoundary("zero@0", 0, []string{"x"}, func(row Row) Fe {
		return row.Field("x")
	})
	return cs
}

func countingTrace(t *testing.T, h int) *Trace {
	t.Helper()
	tr := NewTrace(h, 1)
	for i := 0; i < h; i++ {
		if err := tr.InsertRow(Row{"x": int64(i)}); err != nil {
			t.Fatalf("insert row %d: %v", i, err)
		}
	}
	return tr
}

func proveAndVerify(t *testing.T, trace *Trace, h int, cs *ConstraintSystem) bool {
	t.Helper()
	cfg := DefaultConfig()

	proof, err := Prove(trace, cs, cfg, NewTranscript("e2e-test"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	ok, err := Verify(cs, h, proof, cfg, NewTranscript("e2e-test"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	return ok
}

// E1 (accept, H=4, W=1): T[i].x = i.
func TestE1Accept(t *testing.T) {
	trace := countingTrace(t, 4)
	cs := incrBoundaryCS()
	if !proveAndVerify(t, trace, 4, cs) {
		t.Error("E1: expected verify to accept")
	}
}

// E2 (reject, H=4, W=1): T[i].x = i+1, same CS as E1.
func TestE2Reject(t *testing.T) {
	trace := NewTrace(4, 1)
	for i := 0; i < 4; i++ {
		if err := trace.InsertRow(Row{"x": int64(i + 1)}); err != nil {
			t.Fatalf("insert row %d: %v", i, err)
		}
	}
	cs := incrBoundaryCS()
	if proveAndVerify(t, trace, 4, cs) {
		t.Error("E2: expected verify to reject")
	}
}

// E3 (accept, H=8, W=1): T[i].x = i, CS as E1.
func TestE3Accept(t *testing.T) {
	trace := countingTrace(t, 8)
	cs := incrBoundaryCS()
	if !proveAndVerify(t, trace, 8, cs) {
		t.Error("E3: expected verify to accept")
	}
}

// E4 (accept, H=4, W=2): T[i] = {x=i, y=2i}.
func TestE4Accept(t *testing.T) {
	trace := NewTrace(4, 2)
	for i := 0; i < 4; i++ {
		if err := trace.InsertRow(Row{"x": int64(i), "y": int64(2 * i)}); err != nil {
			t.Fatalf("insert row %d: %v", i, err)
		}
	}

	cs := NewConstraintSystem()
	cs.AddTransition("incr_x", []string{"x"}, func(cur, next Row) Fe {
		return next.Field("x").Sub(cur.Field("x")).Sub(OneFe())
	})
	cs.AddTransition("y=2x", []string{"x", "y"}, func(cur, _ Row) Fe {
		return cur.Field("y").Sub(NewFeFromUint64(2).Mul(cur.Field("x")))
	})
	cs.AddBoundary("zero@0", 0, []string{"x"}, func(row Row) Fe {
		return row.Field("x")
	})

	if !proveAndVerify(t, trace, 4, cs) {
		t.Error("E4: expected verify to accept")
	}
}

// E5 (accept, all zeros, H=4, W=1): T[i].x = 0.
func TestE5Accept(t *testing.T) {
	trace := NewTrace(4, 1)
	for i := 0; i < 4; i++ {
		if err := trace.InsertRow(Row{"x": 0}); err != nil {
			t.Fatalf("insert row %d: %v", i, err)
		}
	}

	cs := NewConstraintSystem()
	cs.AddTransition("hold", []string{"x"}, func(cur, next Row) Fe {
		return next.Field("x").Sub(cur.Field("x"))
	})
	cs.AddBoundary("zero@0", 0, []string{"x"}, func(row Row) Fe {
		return row.Field("x")
	})

	if !proveAndVerify(t, trace, 4, cs) {
		t.Error("E5: expected verify to accept")
	}
}

// E6 (reject, quadratic): T[i] = {x=i, y=i^2+1}.
func TestE6Reject(t *testing.T) {
	trace := NewTrace(4, 2)
	for i := 0; i < 4; i++ {
		y := int64(i*i + 1)
		if err := trace.InsertRow(Row{"x": int64(i), "y": y}); err != nil {
			t.Fatalf("insert row %d: %v", i, err)
		}
	}

	cs := NewConstraintSystem()
	cs.AddTransition("incr_x", []string{"x"}, func(cur, next Row) Fe {
		return next.Field("x").Sub(cur.Field("x")).Sub(OneFe())
	})
	cs.AddTransition("y=x^2", []string{"x", "y"}, func(cur, _ Row) Fe {
		x := cur.Field("x")
		return cur.Field("y").Sub(x.Mul(x))
	})
	cs.AddBoundary("zero@0", 0, []string{"x"}, func(row Row) Fe {
		return row.Field("x")
	})

	if proveAndVerify(t, trace, 4, cs) {
		t.Error("E6: expected verify to reject")
	}
}

func TestProveVerifyErrorsPropagate(t *testing.T) {
	trace := NewTrace(3, 1) // 3 is not a power of two
	trace.InsertRow(Row{"x": 0})
	trace.InsertRow(Row{"x": 1})
	trace.InsertRow(Row{"x": 2})

	cs := incrBoundaryCS()
	cfg := DefaultConfig()

	_, err := Prove(trace, cs, cfg, NewTranscript("bad-size"))
	if err == nil {
		t.Error("expected an error proving over a non-power-of-two trace height")
	}
}
