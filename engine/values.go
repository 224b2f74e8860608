package engine

// Musketeer piece types, beyond the orthodox set dragontoothmg knows about.
const (
	Cannon = iota
	Leopard
	Archbishop
	Chancellor
	Spider
	Dragon
	Unicorn
	Hawk
	Elephant
	Fortress
	musketeerPieceCount
)

var musketeerPieceNames = [musketeerPieceCount]string{
	Cannon:     "Cannon",
	Leopard:    "Leopard",
	Archbishop: "Archbishop",
	Chancellor: "Chancellor",
	Spider:     "Spider",
	Dragon:     "Dragon",
	Unicorn:    "Unicorn",
	Hawk:       "Hawk",
	Elephant:   "Elephant",
	Fortress:   "Fortress",
}

// PieceValues is the midgame/endgame value table for the musketeer pieces.
// Recompute pulls the whole table from the registry whenever any single
// piece-value option changes; recomputing all twenty values is cheaper than
// tracking which one moved.
type PieceValues struct {
	MG [musketeerPieceCount]int
	EG [musketeerPieceCount]int
}

// Recompute reads every <Piece>ValueMg / <Piece>ValueEg option back out of
// the registry. Missing options leave the previous value in place, which
// only happens before the catalog is fully declared.
func (pv *PieceValues) Recompute(om *OptionsMap) {
	for piece, name := range musketeerPieceNames {
		if o, ok := om.Lookup(name + "ValueMg"); ok {
			pv.MG[piece] = o.Int()
		}
		if o, ok := om.Lookup(name + "ValueEg"); ok {
			pv.EG[piece] = o.Int()
		}
	}
}
