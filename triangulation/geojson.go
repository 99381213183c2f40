package triangulation

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToFeatureCollection emits one closed Polygon feature per triangle record,
// carrying the triangle index and area as properties
func ToFeatureCollection(records []Record) (fc *geojson.FeatureCollection) {
	fc = geojson.NewFeatureCollection()
	for _, rec := range records {
		ring := make(orb.Ring, 0, len(rec.Vertices)+1)
		for _, ve := range rec.Vertices {
			ring = append(ring, orb.Point{ve.X[0], ve.X[1]})
		}
		if len(ring) != 0 {
			ring = append(ring, ring[0])
		}
		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["triangle"] = rec.Triangle
		feature.Properties["area"] = rec.Area
		fc.Append(feature)
	}
	return
}

func WriteGeoJSON(path string, records []Record) (err error) {
	var (
		data []byte
	)
	if data, err = ToFeatureCollection(records).MarshalJSON(); err != nil {
		return
	}
	return writeFileAtomic(path, data)
}
