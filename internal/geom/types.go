package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows b to include pt. The first point of an empty box (first == true)
// initialises it.
func (b *BBox) Extend(pt [2]float64, first bool) {
	if first {
		*b = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
		return
	}
	if pt[0] < b.MinX {
		b.MinX = pt[0]
	}
	if pt[1] < b.MinY {
		b.MinY = pt[1]
	}
	if pt[0] > b.MaxX {
		b.MaxX = pt[0]
	}
	if pt[1] > b.MaxY {
		b.MaxY = pt[1]
	}
}

// Feature is one boundary polygon set (a county) with its stable id.
type Feature struct {
	ID         string
	Properties map[string]any
	Polygons   [][][][2]float64 // polygons with rings (first outer, following holes)
}

// FeatureCollection is a minimal geometry container for the minimap.
type FeatureCollection struct {
	List []Feature
	BBox BBox
}

// Boundaries is anything that can yield a named collection of boundary features.
type Boundaries interface {
	Features(object string) (FeatureCollection, error)
}

// Features returns fc itself; a plain collection has a single unnamed object.
func (fc FeatureCollection) Features(string) (FeatureCollection, error) {
	return fc, nil
}

// Find returns the feature with the given id.
func (fc FeatureCollection) Find(id string) (Feature, bool) {
	for _, f := range fc.List {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}

// recomputeBBox sets BBox from every ring vertex of every feature.
func (fc *FeatureCollection) recomputeBBox() {
	n := 0
	for _, f := range fc.List {
		for _, poly := range f.Polygons {
			for _, ring := range poly {
				for _, p := range ring {
					fc.BBox.Extend(p, n == 0)
					n++
				}
			}
		}
	}
}
