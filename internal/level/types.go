// internal/level/types.go
package level

// Map is a Tiled-style level description. Tiled JSON exports decode as-is
// since YAML is a superset of JSON.
type Map struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	TileWidth   float64   `yaml:"tilewidth"`
	TileHeight  float64   `yaml:"tileheight"`
	Orientation string    `yaml:"orientation"`
	Infinite    bool      `yaml:"infinite"`
	Tilesets    []Tileset `yaml:"tilesets"`
	Layers      []Layer   `yaml:"layers"`
}

// Tileset maps a range of global tile ids to one texture source.
type Tileset struct {
	FirstGID   uint32 `yaml:"firstgid"`
	Name       string `yaml:"name"`
	Image      string `yaml:"image"`
	TileWidth  int    `yaml:"tilewidth"`
	TileHeight int    `yaml:"tileheight"`
	Spacing    int    `yaml:"spacing"`
}

// Layer types understood by the loader.
const (
	TileLayerType   = "tilelayer"
	ObjectLayerType = "objectgroup"
)

// Layer is either a tile layer or an object layer.
type Layer struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Data     []uint32 `yaml:"data"`
	Encoding string   `yaml:"encoding"`
	OffsetX  float64  `yaml:"offsetx"`
	OffsetY  float64  `yaml:"offsety"`
	Objects  []Object `yaml:"objects"`
}

// Object types understood by the loader.
const (
	WaypointObject = "Waypoint"
	SpawnerObject  = "EnemySpawner"
	FinishObject   = "EnemyFinish"
	BuildZoneObj   = "BuildZone"

	// WaypointProperty holds a waypoint's ordinal index.
	WaypointProperty = "waypoint"
)

// Object is an entry of an object layer. Coordinates are Tiled pixels with
// y pointing down.
type Object struct {
	ID         int        `yaml:"id"`
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Class      string     `yaml:"class"`
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Point      bool       `yaml:"point"`
	Ellipse    bool       `yaml:"ellipse"`
	Polygon    []Point    `yaml:"polygon"`
	Properties []Property `yaml:"properties"`
}

// Point is a polygon vertex.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Property is a free-form key/value attached to an object.
type Property struct {
	Name  string      `yaml:"name"`
	Type  string      `yaml:"type"`
	Value interface{} `yaml:"value"`
}

// UserType returns the object's type, falling back to the Tiled 1.9 class field.
func (o *Object) UserType() string {
	if o.Type != "" {
		return o.Type
	}
	return o.Class
}

// IsRect reports whether the object is a plain rectangle.
func (o *Object) IsRect() bool {
	return !o.Point && !o.Ellipse && len(o.Polygon) == 0
}

// IntProperty returns the named property when it holds an integer.
func (o *Object) IntProperty(name string) (int, bool) {
	for _, p := range o.Properties {
		if p.Name != name {
			continue
		}
		if p.Type != "" && p.Type != "int" {
			return 0, false
		}
		switch v := p.Value.(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		case uint64:
			return int(v), true
		default:
			return 0, false
		}
	}
	return 0, false
}
