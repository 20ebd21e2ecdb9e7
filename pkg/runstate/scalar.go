package runstate

// Scalar is the single-seed run state carried through filter evaluation and
// scoring for one seed.
type Scalar struct {
	activeVouchers map[string]bool
	ownedJokers    map[string]int
	showman        bool
	cachedBosses   map[int]string
}

// NewScalar returns a fresh scalar run state with nothing activated.
func NewScalar() *Scalar {
	return &Scalar{
		activeVouchers: make(map[string]bool),
		ownedJokers:    make(map[string]int),
		cachedBosses:   make(map[int]string),
	}
}

// ActivateVoucher marks v as active. Idempotent.
func (s *Scalar) ActivateVoucher(v string) {
	s.activeVouchers[v] = true
}

// IsVoucherActive reports whether v has been activated.
func (s *Scalar) IsVoucherActive(v string) bool {
	return s.activeVouchers[v]
}

// AddOwnedJoker records one more copy of j owned.
func (s *Scalar) AddOwnedJoker(j string) {
	s.ownedJokers[j]++
}

// OwnedJokerCount returns how many copies of j have been recorded.
func (s *Scalar) OwnedJokerCount(j string) int {
	return s.ownedJokers[j]
}

// ActivateShowman sets the showman flag. Once set it disables duplicate-joker
// suppression in later generation (spec's glossary entry for "Showman").
func (s *Scalar) ActivateShowman() {
	s.showman = true
}

// ShowmanActive reports whether the showman flag has been set.
func (s *Scalar) ShowmanActive() bool {
	return s.showman
}

// CacheBosses records the given boss draws, keyed by ante; antes absent
// from bosses keep whatever was cached for them before.
func (s *Scalar) CacheBosses(bosses map[int]string) {
	for ante, name := range bosses {
		s.cachedBosses[ante] = name
	}
}

// CacheBoss records the boss draw for a single ante.
func (s *Scalar) CacheBoss(ante int, name string) {
	s.cachedBosses[ante] = name
}

// CachedBoss returns the boss cached for ante, if any.
func (s *Scalar) CachedBoss(ante int) (string, bool) {
	b, ok := s.cachedBosses[ante]
	return b, ok
}
