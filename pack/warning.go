package pack

// Warning is the call an official makes about the pack.
type Warning int

const (
	WarningNoPack Warning = iota
	WarningSplitPack
	WarningPackIsFront // blockers out of play behind the pack
	WarningPackIsBack  // blockers out of play in front of the pack
	WarningPackIsAll   // blockers out of play on both sides
	WarningPackIsHere  // every applicable blocker is in the pack
)

func (w Warning) String() string {
	switch w {
	case WarningNoPack:
		return "no pack"
	case WarningSplitPack:
		return "split pack"
	case WarningPackIsFront:
		return "pack is front"
	case WarningPackIsBack:
		return "pack is back"
	case WarningPackIsAll:
		return "pack is all"
	case WarningPackIsHere:
		return "pack is here"
	default:
		return "unknown"
	}
}

// Warning derives the call from the active pack and the applicable blockers outside it.
func (s State) Warning() Warning {
	active, ok := s.ActivePack()
	if !ok {
		if s.IsSplit() {
			return WarningSplitPack
		}
		return WarningNoPack
	}

	mid := active.Midpoint()
	var ahead, behind bool
	for i, applicable := range s.applicable {
		if !applicable || active.hasMember(i) {
			continue
		}
		if s.positions[i].IsInFrontOf(mid) {
			ahead = true
		} else {
			behind = true
		}
	}

	switch {
	case ahead && behind:
		return WarningPackIsAll
	case ahead:
		return WarningPackIsBack
	case behind:
		return WarningPackIsFront
	default:
		return WarningPackIsHere
	}
}
