package pixelgrid

// SeedSet is the ordered collection S subset-of I of seeds that roots an
// IFT run. It keeps seeds in insertion order for deterministic iteration
// (auto-generated labels and border-seed sweeps both depend on this),
// backed by a pixel->index map for O(1) membership — the same shape as a
// general graph library's vertex catalog, specialized to a fixed key type
// instead of a string ID.
//
// Invariants:
//   - every pixel appears at most once; Add on a known pixel updates in place.
//   - Remove is O(1): swap the removed entry with the last one, then truncate.
//   - only active seeds are considered by IsSeed/GetActiveSeeds/activeCount.
type SeedSet struct {
	seeds     []Seed
	index     map[pixelKey]int
	nextLabel int
}

type pixelKey struct {
	x, y int32
}

func key(p Pixel) pixelKey { return pixelKey{p.X, p.Y} }

// NewSeedSet returns an empty SeedSet with auto-labeling starting at 1.
func NewSeedSet() *SeedSet {
	return &SeedSet{
		index:     make(map[pixelKey]int),
		nextLabel: 1,
	}
}

// Add inserts or updates the seed at pixel with the given label and
// handicap, active by default. If the pixel is already a seed, its
// fields are overwritten in place (the seed keeps its position in the
// ordered list).
func (s *SeedSet) Add(pixel Pixel, label int, handicap float64, name string) {
	if idx, ok := s.index[key(pixel)]; ok {
		s.seeds[idx] = Seed{Pixel: pixel, Label: label, Handicap: handicap, Active: true, Name: name}
		return
	}
	s.index[key(pixel)] = len(s.seeds)
	s.seeds = append(s.seeds, Seed{Pixel: pixel, Label: label, Handicap: handicap, Active: true, Name: name})
	if label >= s.nextLabel {
		s.nextLabel = label + 1
	}
}

// AddAuto inserts a seed at (x,y) with a label drawn from the internal
// monotonic counter and handicap zero.
func (s *SeedSet) AddAuto(x, y int32, intensity uint8) Seed {
	label := s.nextLabel
	s.nextLabel++
	seed := Seed{Pixel: Pixel{X: x, Y: y, Intensity: intensity}, Label: label, Handicap: 0, Active: true}
	if idx, ok := s.index[key(seed.Pixel)]; ok {
		s.seeds[idx] = seed
		return seed
	}
	s.index[key(seed.Pixel)] = len(s.seeds)
	s.seeds = append(s.seeds, seed)
	return seed
}

// Remove deletes the seed at pixel, if present, in O(1) via swap-with-last.
// Returns true if a seed was removed.
func (s *SeedSet) Remove(pixel Pixel) bool {
	idx, ok := s.index[key(pixel)]
	if !ok {
		return false
	}
	last := len(s.seeds) - 1
	if idx != last {
		s.seeds[idx] = s.seeds[last]
		s.index[key(s.seeds[idx].Pixel)] = idx
	}
	s.seeds = s.seeds[:last]
	delete(s.index, key(pixel))
	return true
}

// Clear removes every seed and resets the auto-label counter.
func (s *SeedSet) Clear() {
	s.seeds = nil
	s.index = make(map[pixelKey]int)
	s.nextLabel = 1
}

// SetActive toggles the active flag of the seed at pixel. Returns false if
// pixel is not a seed.
func (s *SeedSet) SetActive(pixel Pixel, active bool) bool {
	idx, ok := s.index[key(pixel)]
	if !ok {
		return false
	}
	s.seeds[idx].Active = active
	return true
}

// IsSeed reports whether pixel is a currently active seed.
func (s *SeedSet) IsSeed(pixel Pixel) bool {
	idx, ok := s.index[key(pixel)]
	return ok && s.seeds[idx].Active
}

// HasSeed reports whether pixel is a seed, active or not.
func (s *SeedSet) HasSeed(pixel Pixel) bool {
	_, ok := s.index[key(pixel)]
	return ok
}

// GetLabel returns the label of the seed at pixel, or NoLabel if pixel is
// not a seed. Never fails: unknown pixels are not seeds, not errors.
func (s *SeedSet) GetLabel(pixel Pixel) int {
	idx, ok := s.index[key(pixel)]
	if !ok {
		return NoLabel
	}
	return s.seeds[idx].Label
}

// GetHandicap returns the handicap of the seed at pixel, or +inf if pixel
// is not a seed — the convention a cost function's handicap() relies on.
func (s *SeedSet) GetHandicap(pixel Pixel) float64 {
	idx, ok := s.index[key(pixel)]
	if !ok {
		return InfiniteHandicap
	}
	return s.seeds[idx].Handicap
}

// GetActiveSeeds returns every active seed, in insertion order.
func (s *SeedSet) GetActiveSeeds() []Seed {
	out := make([]Seed, 0, len(s.seeds))
	for _, seed := range s.seeds {
		if seed.Active {
			out = append(out, seed)
		}
	}
	return out
}

// GetActiveLabels returns the distinct labels among active seeds, in
// first-seen order.
func (s *SeedSet) GetActiveLabels() []int {
	seen := make(map[int]bool)
	var out []int
	for _, seed := range s.seeds {
		if seed.Active && !seen[seed.Label] {
			seen[seed.Label] = true
			out = append(out, seed.Label)
		}
	}
	return out
}

// Size returns the total number of seeds, active or not.
func (s *SeedSet) Size() int { return len(s.seeds) }

// ActiveCount returns the number of seeds with Active == true.
func (s *SeedSet) ActiveCount() int {
	n := 0
	for _, seed := range s.seeds {
		if seed.Active {
			n++
		}
	}
	return n
}

// SetHandicapsFromIntensity sets every active seed's handicap to its own
// pixel intensity, useful for cost functions that want seeds to start at
// a cost proportional to brightness rather than zero.
func (s *SeedSet) SetHandicapsFromIntensity() {
	for i := range s.seeds {
		if s.seeds[i].Active {
			s.seeds[i].Handicap = float64(s.seeds[i].Pixel.Intensity)
		}
	}
}

// SetUniformHandicaps sets every active seed's handicap to h.
func (s *SeedSet) SetUniformHandicaps(h float64) {
	for i := range s.seeds {
		if s.seeds[i].Active {
			s.seeds[i].Handicap = h
		}
	}
}

// AddBorderSeeds adds a seed for every pixel on the image's outer border
// (x==0, x==Width-1, y==0 or y==Height-1), all sharing label and handicap.
// Useful for watershed-style setups that root one object at the frame.
func (s *SeedSet) AddBorderSeeds(img *Image, label int, handicap float64) {
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x != 0 && x != w-1 && y != 0 && y != h-1 {
				continue
			}
			p, _ := img.Pixel(x, y)
			s.Add(p, label, handicap, "")
		}
	}
}
