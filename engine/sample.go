package engine

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/maplab/tourkit/geom"
)

//go:embed sample_points.yaml
var samplePointsYAML []byte

// samplePoint is the YAML shape of one fixture entry.
type samplePoint struct {
	ID   string  `yaml:"id"`
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// sampleFixture is the YAML shape of the embedded document.
type sampleFixture struct {
	Points []samplePoint `yaml:"points"`
}

var (
	sampleOnce   sync.Once
	samplePoints []geom.Point
)

// SamplePoints returns the fixed demo set: 8 named points spanning five
// borough-styled clusters, decoded once from the embedded YAML fixture.
// The returned slice is a fresh copy on every call, so callers may reorder
// or truncate it freely.
//
// A malformed fixture is a build defect, not a runtime condition: decoding
// is done once and panics loudly rather than propagating a corrupt set.
func SamplePoints() []geom.Point {
	sampleOnce.Do(func() {
		var doc sampleFixture
		if err := yaml.Unmarshal(samplePointsYAML, &doc); err != nil {
			panic(fmt.Sprintf("engine: embedded sample fixture is corrupt: %v", err))
		}

		samplePoints = make([]geom.Point, len(doc.Points))
		var i int
		for i = 0; i < len(doc.Points); i++ {
			samplePoints[i] = geom.Point{
				ID:   doc.Points[i].ID,
				Name: doc.Points[i].Name,
				X:    doc.Points[i].X,
				Y:    doc.Points[i].Y,
			}
		}
	})

	return append([]geom.Point(nil), samplePoints...)
}
