package engine

import "testing"

func TestPieceValuesRecompute(t *testing.T) {
	sub, _ := testSubsystems()
	om := NewOptions(sub)

	var pv PieceValues
	pv.Recompute(om)
	if pv.MG[Cannon] != 1710 || pv.EG[Cannon] != 2239 {
		t.Fatalf("cannon defaults wrong: mg=%d eg=%d", pv.MG[Cannon], pv.EG[Cannon])
	}
	if pv.MG[Fortress] != 1956 || pv.EG[Fortress] != 2100 {
		t.Fatalf("fortress defaults wrong: mg=%d eg=%d", pv.MG[Fortress], pv.EG[Fortress])
	}

	if o, ok := om.Lookup("DragonValueEg"); ok {
		o.Set("3000")
	}
	pv.Recompute(om)
	if pv.EG[Dragon] != 3000 {
		t.Errorf("expected recomputed dragon eg 3000, got %d", pv.EG[Dragon])
	}
}
