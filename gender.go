package boxen

// ResolveGender computes, for every face and every edge of that face, which
// side of the joint carries protruding fingers (male) versus receding holes
// (female), per §4.2.
//
// Two rules apply depending on what a shared edge connects:
//
//   - Wall-to-wall (neither face is a lid, i.e. neither face's normal runs
//     along cfg.AssemblyAxis): the lower-wallPriority() face is male, the
//     higher is female. Front beats Back beats Left beats Right.
//   - Lid-to-wall (one face's normal runs along cfg.AssemblyAxis): the lid's
//     own TabDirection decides. TabsOut makes the lid male on every edge
//     bordering a wall; TabsIn makes it female, and the bordering wall takes
//     the opposite gender.
//
// The two lid faces never share an edge with each other in faceAdjacency,
// so every entry falls into exactly one of the two cases above.
func ResolveGender(cfg AssemblyConfig) map[FaceId]map[EdgePosition]Gender {
	result := make(map[FaceId]map[EdgePosition]Gender, len(AllFaces))
	for _, f := range AllFaces {
		result[f] = make(map[EdgePosition]Gender, 4)
	}

	edges := [...]EdgePosition{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

	for _, f := range AllFaces {
		fIsLid := f.NormalAxis() == cfg.AssemblyAxis
		for _, e := range edges {
			neighbor, ok := faceAdjacency[f][e]
			if !ok {
				continue
			}
			nIsLid := neighbor.NormalAxis() == cfg.AssemblyAxis

			switch {
			case fIsLid == nIsLid:
				if f.WallPriority() < neighbor.WallPriority() {
					result[f][e] = GenderMale
				} else {
					result[f][e] = GenderFemale
				}
			case fIsLid:
				lidGender := lidTabGender(cfg, f)
				result[f][e] = lidGender
			default: // neighbor is the lid
				lidGender := lidTabGender(cfg, neighbor)
				result[f][e] = opposite(lidGender)
			}
		}
	}
	return result
}

// applyOpenFaceGenders overrides a resolved gender map per §4.2 rule 1: any
// edge whose adjacent face has been opened (not solid) is straight, with no
// tabs or slots on either side of that edge.
func applyOpenFaceGenders(genders map[FaceId]map[EdgePosition]Gender, faceSolid map[FaceId]bool) {
	for _, f := range AllFaces {
		for e, neighbor := range faceAdjacency[f] {
			if !faceSolid[neighbor] {
				genders[f][e] = GenderNone
			}
		}
	}
}

// lidTabGender returns the gender a lid face presents on its own edges,
// derived from its configured TabDirection (default TabsOut if unconfigured).
func lidTabGender(cfg AssemblyConfig, lidFace FaceId) Gender {
	side := lidSideOf(lidFace)
	lc := cfg.Lids[side]
	if lc.TabDirection == TabsIn {
		return GenderFemale
	}
	return GenderMale
}

// lidSideOf maps a lid face to its LidSide, given that face sits on the
// positive or negative end of the assembly axis.
func lidSideOf(f FaceId) LidSide {
	if f.IsPositiveSide() {
		return LidPositive
	}
	return LidNegative
}

func opposite(g Gender) Gender {
	switch g {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	default:
		return GenderNone
	}
}

// DividerGender returns the gender a divider panel presents against the
// face panels it pierces. Dividers always carry protruding tabs that seat
// into slots cut through the face panel, so they are always male at that
// interface (the face panel's slot is the mating "hole", not a genuine
// female edge of its own outline).
func DividerGender() Gender { return GenderMale }
