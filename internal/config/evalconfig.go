package config

// evalConfiguration holds every re-tunable evaluator weight named in the
// design (§4.7). Every sub-evaluator reads its coefficients from here
// instead of hard-coding magic numbers, so the weights can be retuned
// without structural change (§9 Open Questions).
type evalConfiguration struct {
	Tempo int16 // item 6

	MobilityBonus int16 // item 4, per attacked-square difference

	PawnIsolatedMalus int16 // item 3
	PawnDoubledMalus  int16
	// PawnPassedBonusByRank is indexed by ranks advanced from home (2nd..7th).
	PawnPassedBonusByRank [6]int16

	KingCastledBonus        int16 // item 5
	KingShieldBonusPerPawn  int16
	KingOpenFileMalus       int16
	KingZoneEnemyMalus      int16
	KingZonePawnAttacker    int16
	KingZoneMinorAttacker   int16
	KingZoneRookAttacker    int16
	KingZoneQueenAttacker   int16

	BishopPairBonus int16 // item 7

	KnightOutpostBonus        int16 // item 8
	KnightOutpostDefendedMore int16

	RookOpenFileBonus     int16 // item 9
	RookSemiOpenFileBonus int16

	CentralSquareBonus int16 // item 10, per attacker of {d4,e4,d5,e5}

	HangingPenaltyPct int16 // item 11, percent of piece value lost if hanging
	PawnAttackKnightBishopBonus int16
	PawnAttackRookBonus         int16
	PawnAttackQueenBonus        int16

	PinMinByPiece [PieceKindCount]int16 // item 12, absolute pin on king, indexed by pinned-piece kind
	PinMax        int16
	XrayBonus     int16
	SkewerBonus   int16
	DiscoveredAttackBonus int16

	ForkBase          int16 // item 13
	ForkTripleBonus   int16
	ForkKnightBonus   int16
	ForkUndefendedBonus int16
}

// PieceKindCount indexes PinMinByPiece by PieceType (0..6 inclusive, index 0 unused).
const PieceKindCount = 7

func init() {
	Settings.Eval.Tempo = 10

	Settings.Eval.MobilityBonus = 6

	Settings.Eval.PawnIsolatedMalus = -20
	Settings.Eval.PawnDoubledMalus = -10
	Settings.Eval.PawnPassedBonusByRank = [6]int16{10, 20, 40, 60, 90, 160}

	Settings.Eval.KingCastledBonus = 10
	Settings.Eval.KingShieldBonusPerPawn = 4
	Settings.Eval.KingOpenFileMalus = 5
	Settings.Eval.KingZoneEnemyMalus = 2
	Settings.Eval.KingZonePawnAttacker = 10
	Settings.Eval.KingZoneMinorAttacker = 30
	Settings.Eval.KingZoneRookAttacker = 50
	Settings.Eval.KingZoneQueenAttacker = 90

	Settings.Eval.BishopPairBonus = 30

	Settings.Eval.KnightOutpostBonus = 20
	Settings.Eval.KnightOutpostDefendedMore = 10

	Settings.Eval.RookOpenFileBonus = 20
	Settings.Eval.RookSemiOpenFileBonus = 10

	Settings.Eval.CentralSquareBonus = 5

	Settings.Eval.HangingPenaltyPct = 60
	Settings.Eval.PawnAttackKnightBishopBonus = 40
	Settings.Eval.PawnAttackRookBonus = 30
	Settings.Eval.PawnAttackQueenBonus = 15

	Settings.Eval.PinMinByPiece = [PieceKindCount]int16{0, 40, 60, 70, 80, 100, 0}
	Settings.Eval.PinMax = 100
	Settings.Eval.XrayBonus = 15
	Settings.Eval.SkewerBonus = 15
	Settings.Eval.DiscoveredAttackBonus = 35

	Settings.Eval.ForkBase = 15
	Settings.Eval.ForkTripleBonus = 10
	Settings.Eval.ForkKnightBonus = 5
	Settings.Eval.ForkUndefendedBonus = 10
}

func setupEval() {}
