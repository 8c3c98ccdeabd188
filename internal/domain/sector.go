package domain

// SectorRootCode is the code of the sector tree root ("no sector").
const SectorRootCode = "00"

// Sector is a regulatory/business sector classification. Sectors form a
// tree rooted at code "00".
type Sector struct {
	Code       string
	Name       string
	ParentCode string
}

// SectorEmpty is the root sector, used wherever a balance carries no
// sector attribution.
var SectorEmpty = Sector{Code: SectorRootCode}

// IsRoot reports whether the sector is the tree root.
func (s Sector) IsRoot() bool {
	return s.Code == SectorRootCode || s.Code == ""
}

// SectorTree holds the preloaded sector hierarchy, shared read-only across
// report builds.
type SectorTree struct {
	sectors map[string]Sector
}

// NewSectorTree builds the tree from its sector list.
func NewSectorTree(sectors []Sector) *SectorTree {
	t := &SectorTree{sectors: make(map[string]Sector, len(sectors)+1)}
	t.sectors[SectorRootCode] = SectorEmpty
	for _, s := range sectors {
		t.sectors[s.Code] = s
	}
	return t
}

// Sector looks a sector up by code.
func (t *SectorTree) Sector(code string) (Sector, bool) {
	s, ok := t.sectors[code]
	return s, ok
}

// Parent returns the immediate ancestor of s, or the root when s is the
// root or its parent is unknown.
func (t *SectorTree) Parent(s Sector) Sector {
	if s.IsRoot() {
		return SectorEmpty
	}
	if p, ok := t.sectors[s.ParentCode]; ok {
		return p
	}
	return SectorEmpty
}
