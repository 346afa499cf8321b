package slider

// Process-wide tables. They are built in init with DefaultStrategy and may
// be replaced once by Setup before lookups start; afterwards they are
// read-only.
var (
	bishopTable *Table
	rookTable   *Table
)

func init() {
	initGeometry()
	if err := Setup(DefaultConfig()); err != nil {
		panic(err)
	}
}

// Setup rebuilds both process-wide tables with cfg and publishes them. It
// must complete before any concurrent call to the attack functions. On
// error the current tables stay in place.
func Setup(cfg Config) error {
	bishops, err := cfg.NewTable(Bishop)
	if err != nil {
		return err
	}
	rooks, err := cfg.NewTable(Rook)
	if err != nil {
		return err
	}
	bishopTable, rookTable = bishops, rooks
	return nil
}

// Tables returns the process-wide bishop and rook tables.
func Tables() (bishops, rooks *Table) {
	return bishopTable, rookTable
}

// BishopAttacks returns the squares a bishop on sq attacks given occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopTable.Attacks(sq, occ)
}

// RookAttacks returns the squares a rook on sq attacks given occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return rookTable.Attacks(sq, occ)
}

// QueenAttacks returns the union of bishop and rook attacks from sq.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopTable.Attacks(sq, occ) | rookTable.Attacks(sq, occ)
}

// Attacks returns the attacks of slider pt on sq given occupancy occ.
func Attacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	if pt == Bishop {
		return bishopTable.Attacks(sq, occ)
	}
	return rookTable.Attacks(sq, occ)
}

// --- Generator names ---
// Bounds-checked entry points for callers of the ray-based generators.
// They answer from the tables.

// GenerateRookAttacks calculates rook attacks from a square, considering blockers.
func GenerateRookAttacks(sq Square, blockers Bitboard) Bitboard {
	if sq < A1 || sq > H8 {
		return EmptyBB
	}
	return RookAttacks(sq, blockers)
}

// GenerateBishopAttacks calculates bishop attacks from a square, considering blockers.
func GenerateBishopAttacks(sq Square, blockers Bitboard) Bitboard {
	if sq < A1 || sq > H8 {
		return EmptyBB
	}
	return BishopAttacks(sq, blockers)
}

// GenerateQueenAttacks calculates queen attacks from a square, considering blockers.
func GenerateQueenAttacks(sq Square, blockers Bitboard) Bitboard {
	if sq < A1 || sq > H8 {
		return EmptyBB
	}
	return QueenAttacks(sq, blockers)
}
